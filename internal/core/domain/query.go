package domain

import (
	"fmt"
	"strings"
)

// All is the facet sentinel meaning "no filter applied".
const All = "All"

// SortKey selects the single active ordering of a catalog view.
type SortKey string

// Available sort keys. Every key sorts descending.
const (
	// SortByYear orders by model year, most recent first.
	SortByYear SortKey = "year"

	// SortByTier orders by luxury tier rank, highest first.
	SortByTier SortKey = "tier"

	// SortByPrice orders by parsed price magnitude, highest first.
	SortByPrice SortKey = "price"
)

// SortKeys lists the accepted sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortByYear, SortByTier, SortByPrice}
}

// IsValid returns true if the sort key is recognised.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByYear, SortByTier, SortByPrice:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SortKey) String() string {
	return string(k)
}

// Description returns a human-readable label for the sort key.
func (k SortKey) Description() string {
	switch k {
	case SortByYear:
		return "Year (newest first)"
	case SortByTier:
		return "Luxury tier (highest first)"
	case SortByPrice:
		return "Price (highest first)"
	default:
		return "Catalog order"
	}
}

// Next returns the following sort key, wrapping around.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	for i, key := range keys {
		if key == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return SortByYear
}

// ParseSortKey converts user input into a SortKey.
// "luxuryLevel" is accepted as an alias for "tier".
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "year":
		return SortByYear, nil
	case "tier", "luxurylevel", "luxury":
		return SortByTier, nil
	case "price":
		return SortByPrice, nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q (want year, tier or price)", ErrInvalidInput, s)
	}
}

// Query is the complete set of user-controlled inputs that determine a
// catalog view. It is a plain value: changing a parameter means building a
// new Query and running it again.
//
// An empty facet field is treated the same as All.
type Query struct {
	// Search is a free-text term, matched case-insensitively.
	Search string `json:"search,omitempty"`

	// Market is All or one exact market state.
	Market string `json:"market,omitempty"`

	// Year is All or one exact model year in decimal form.
	Year string `json:"year,omitempty"`

	// Category is All or one exact category.
	Category string `json:"category,omitempty"`

	// Origin is All or one exact origin.
	Origin string `json:"origin,omitempty"`

	// Sort is the active sort key.
	Sort SortKey `json:"sort,omitempty"`
}

// DefaultQuery returns the initial view: no search, no filters, newest first.
func DefaultQuery() Query {
	return Query{
		Market:   All,
		Year:     All,
		Category: All,
		Origin:   All,
		Sort:     SortByYear,
	}
}

// WithSearch returns a copy of the query with a new search term.
func (q Query) WithSearch(term string) Query {
	q.Search = term
	return q
}

// WithMarket returns a copy of the query with a new market filter.
func (q Query) WithMarket(market string) Query {
	q.Market = market
	return q
}

// WithYear returns a copy of the query with a new year filter.
func (q Query) WithYear(year string) Query {
	q.Year = year
	return q
}

// WithCategory returns a copy of the query with a new category filter.
func (q Query) WithCategory(category string) Query {
	q.Category = category
	return q
}

// WithOrigin returns a copy of the query with a new origin filter.
func (q Query) WithOrigin(origin string) Query {
	q.Origin = origin
	return q
}

// WithSort returns a copy of the query with a new sort key.
func (q Query) WithSort(key SortKey) Query {
	q.Sort = key
	return q
}

// IsUnfiltered reports whether the query lets every vehicle through.
func (q Query) IsUnfiltered() bool {
	return q.Search == "" &&
		isAll(q.Market) && isAll(q.Year) && isAll(q.Category) && isAll(q.Origin)
}

// isAll reports whether a facet selection means "no filter".
func isAll(v string) bool {
	return v == "" || v == All
}

// FacetMatches reports whether a facet selection admits the given value.
func FacetMatches(selection, value string) bool {
	return isAll(selection) || selection == value
}
