package domain

import "slices"

// Facets holds the selectable values for each derived filter control.
// Every list starts with the All sentinel.
type Facets struct {
	// Years are distinct model years, newest first.
	Years []string `json:"years"`

	// Categories are distinct categories in ascending order.
	Categories []string `json:"categories"`

	// Origins are distinct origins in ascending order.
	Origins []string `json:"origins"`
}

// Clone returns a copy whose slices can be modified freely.
func (f Facets) Clone() Facets {
	return Facets{
		Years:      slices.Clone(f.Years),
		Categories: slices.Clone(f.Categories),
		Origins:    slices.Clone(f.Origins),
	}
}

// MarketFacet returns the fixed market filter options.
// Market states form a closed set, so they are not derived from the catalog.
func MarketFacet() []string {
	return []string{
		All,
		MarketAvailable.String(),
		MarketVaulted.String(),
		MarketAuctioning.String(),
		MarketPreOrder.String(),
	}
}

// NextValue returns the option after current in options, wrapping around.
// Unknown values restart at the first option.
func NextValue(options []string, current string) string {
	if len(options) == 0 {
		return All
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}
