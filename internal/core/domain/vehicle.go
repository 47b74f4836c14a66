package domain

import "strconv"

// Tier is the luxury rank of a vehicle.
type Tier string

// Known tiers, highest first.
const (
	TierSovereign    Tier = "Sovereign"
	TierElite        Tier = "Elite"
	TierExecutive    Tier = "Executive"
	TierHumanitarian Tier = "Humanitarian"
)

// tierRanks maps each known tier onto the total order used for sorting.
var tierRanks = map[Tier]int{
	TierSovereign:    4,
	TierElite:        3,
	TierExecutive:    2,
	TierHumanitarian: 1,
}

// Rank returns the tier's position in the luxury order.
// Tiers absent from the rank table rank lowest (0).
func (t Tier) Rank() int {
	return tierRanks[t]
}

// String returns the string representation.
func (t Tier) String() string {
	return string(t)
}

// Category is the kind of asset a vehicle is.
type Category string

// Known categories.
const (
	CategoryChainJet       Category = "Chain Jet"
	CategorySupercar       Category = "Supercar"
	CategoryHeavyDuty      Category = "Heavy Duty"
	CategoryHovercraft     Category = "Hovercraft"
	CategoryCorporate      Category = "Corporate"
	CategoryHumanitarian   Category = "Humanitarian"
	CategoryMagLev         Category = "Mag-Lev"
	CategoryCyberBike      Category = "Cyber-Bike"
	CategoryHovercar       Category = "Hovercar"
	CategorySubmersible    Category = "Submersible"
	CategorySpaceFreighter Category = "Space Freighter"
	CategoryTimepiece      Category = "Timepiece"
	CategoryHelicopter     Category = "Helicopter"
)

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// MarketState describes how a vehicle can currently be acquired.
type MarketState string

// Market states. MarketNone is used when a vehicle carries no market state.
const (
	MarketNone       MarketState = ""
	MarketAvailable  MarketState = "Available"
	MarketVaulted    MarketState = "Vaulted"
	MarketAuctioning MarketState = "Auctioning"
	MarketPreOrder   MarketState = "Pre-Order"
)

// IsValid returns true if the market state is recognised.
func (m MarketState) IsValid() bool {
	switch m {
	case MarketNone, MarketAvailable, MarketVaulted, MarketAuctioning, MarketPreOrder:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m MarketState) String() string {
	return string(m)
}

// Specs holds display-only technical details.
type Specs struct {
	Speed  string   `json:"speed" yaml:"speed"`
	Engine string   `json:"engine" yaml:"engine"`
	Tech   []string `json:"tech" yaml:"tech"`
}

// Vehicle is a single catalog item. Vehicles are loaded once at startup
// and never modified afterwards.
type Vehicle struct {
	// ID is unique across the catalog and stable for the session.
	ID string `json:"id" yaml:"id"`

	// Name is the display name. Searchable.
	Name string `json:"name" yaml:"name"`

	// Year is the model year. Searchable as a decimal substring.
	Year int `json:"year" yaml:"year"`

	// Tier is the luxury rank used for tier sorting.
	Tier Tier `json:"luxuryLevel" yaml:"luxuryLevel"`

	// CrewQuarters is the number of crew berths, if known.
	CrewQuarters *int `json:"crewQuarters,omitempty" yaml:"crewQuarters,omitempty"`

	// Category is the asset type. Searchable and filterable.
	Category Category `json:"type" yaml:"type"`

	// Origin is the provenance hub. Filterable but not searched.
	Origin string `json:"origin" yaml:"origin"`

	// Description is display-only marketing copy.
	Description string `json:"description" yaml:"description"`

	// Image is a display-only image reference.
	Image string `json:"image" yaml:"image"`

	// MarketState is the acquisition state, empty when unknown.
	MarketState MarketState `json:"marketStatus,omitempty" yaml:"marketStatus,omitempty"`

	// PriceLabel encodes a magnitude and unit suffix, e.g. "120M BUX".
	// Empty when the vehicle has no price.
	PriceLabel string `json:"price,omitempty" yaml:"price,omitempty"`

	// Specs are display-only technical details.
	Specs Specs `json:"specs" yaml:"specs"`
}

// YearString returns the decimal string form of the model year.
func (v *Vehicle) YearString() string {
	return strconv.Itoa(v.Year)
}

// Price returns the parsed magnitude of the price label.
func (v *Vehicle) Price() float64 {
	return ParsePrice(v.PriceLabel)
}
