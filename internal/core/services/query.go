package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/butch-garage/showroom/internal/core/domain"
)

// QueryVehicles returns the vehicles of catalog that satisfy q, ordered by
// q.Sort.
//
// A vehicle is included when every condition holds:
//   - the search term is empty or, lower-cased, is a substring of the
//     lower-cased name, the lower-cased category or the decimal year;
//   - each facet is All (or empty) or equals the vehicle's value exactly.
//
// Sorting is stable and descending. Ties keep catalog order and an unknown
// sort key keeps catalog order entirely. The result holds references into
// catalog, which is never modified. It is never nil.
func QueryVehicles(catalog []*domain.Vehicle, q domain.Query) []*domain.Vehicle {
	term := strings.ToLower(q.Search)

	out := make([]*domain.Vehicle, 0, len(catalog))
	for _, v := range catalog {
		if v == nil {
			continue
		}
		if matchesSearch(v, term) && matchesFacets(v, q) {
			out = append(out, v)
		}
	}

	if less := sortLess(out, q.Sort); less != nil {
		sort.SliceStable(out, less)
	}
	return out
}

func matchesSearch(v *domain.Vehicle, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(string(v.Category)), term) ||
		strings.Contains(v.YearString(), term)
}

func matchesFacets(v *domain.Vehicle, q domain.Query) bool {
	return domain.FacetMatches(q.Market, string(v.MarketState)) &&
		domain.FacetMatches(q.Year, v.YearString()) &&
		domain.FacetMatches(q.Category, string(v.Category)) &&
		domain.FacetMatches(q.Origin, v.Origin)
}

// sortLess returns the descending comparator for key, or nil when key is
// not a known sort key.
func sortLess(vs []*domain.Vehicle, key domain.SortKey) func(i, j int) bool {
	switch key {
	case domain.SortByYear:
		return func(i, j int) bool { return vs[i].Year > vs[j].Year }
	case domain.SortByTier:
		return func(i, j int) bool { return vs[i].Tier.Rank() > vs[j].Tier.Rank() }
	case domain.SortByPrice:
		return func(i, j int) bool { return vs[i].Price() > vs[j].Price() }
	default:
		return nil
	}
}

// DeriveFacets computes the selectable values of each filter control from
// the catalog. Every list starts with domain.All. Years are newest first;
// categories and origins are in ascending byte order.
func DeriveFacets(catalog []*domain.Vehicle) domain.Facets {
	years := make(map[int]struct{})
	categories := make(map[string]struct{})
	origins := make(map[string]struct{})

	for _, v := range catalog {
		if v == nil {
			continue
		}
		years[v.Year] = struct{}{}
		categories[string(v.Category)] = struct{}{}
		origins[v.Origin] = struct{}{}
	}

	yearValues := make([]int, 0, len(years))
	for y := range years {
		yearValues = append(yearValues, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(yearValues)))

	yearFacet := make([]string, 0, len(yearValues)+1)
	yearFacet = append(yearFacet, domain.All)
	for _, y := range yearValues {
		yearFacet = append(yearFacet, strconv.Itoa(y))
	}

	return domain.Facets{
		Years:      yearFacet,
		Categories: sortedFacet(categories),
		Origins:    sortedFacet(origins),
	}
}

func sortedFacet(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{domain.All}, values...)
}
