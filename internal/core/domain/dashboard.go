package domain

import "math"

// ImpactStat is a headline figure shown on the showroom dashboard.
type ImpactStat struct {
	Label        string  `json:"label"`
	Value        string  `json:"value"`
	NumericValue float64 `json:"numericValue"`
	Sublabel     string  `json:"sublabel"`
}

// CommunityStats returns the fixed dashboard figures.
func CommunityStats() []ImpactStat {
	return []ImpactStat{
		{Label: "Global Billboard Hits", Value: "55", NumericValue: 55, Sublabel: "PH Chart Toppers"},
		{Label: "International Hubs", Value: "12", NumericValue: 12, Sublabel: "Major Cities"},
		{Label: "Market Capital", Value: "1.2B BUX", NumericValue: 1200, Sublabel: "International Growth"},
		{Label: "Philanthropy Fund", Value: "250M BUX", NumericValue: 250, Sublabel: "Global Aid"},
	}
}

// TrendPoint is one day of simulated market activity.
type TrendPoint struct {
	Day    string  `json:"name"`
	Value  float64 `json:"value"`
	Volume int     `json:"volume"`
}

var trendDays = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// TrendSeries returns a deterministic week of market activity for seed,
// usually a vehicle ID. The same seed always yields the same series.
func TrendSeries(seed string) []TrendPoint {
	// Only the shift wraps to 32 bits; the running sum does not.
	var h int64
	for _, u := range utf16Units(seed) {
		h = int64(u) + int64(int32(h)<<5) - h
	}

	points := make([]TrendPoint, len(trendDays))
	for i, day := range trendDays {
		base := absInt64((h+int64(i)*1337)%1000) + 1500
		points[i] = TrendPoint{
			Day:    day,
			Value:  float64(base) + math.Sin(float64(i))*300,
			Volume: int(absInt64((h+int64(i)*42)%50)) + 10,
		}
	}
	return points
}

// utf16Units mirrors per-code-unit hashing so non-ASCII seeds hash stably.
func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// GenerationStage is a progress step displayed while a dossier is generated.
type GenerationStage struct {
	ID    string
	Label string
	Logs  []string
}

// GenerationStages returns the dossier progress stages in order.
func GenerationStages() []GenerationStage {
	return []GenerationStage{
		{ID: "auth", Label: "Security Clearance", Logs: []string{"Bypassing Firewall 12-B...", "Auth Level 7 Verified"}},
		{ID: "data", Label: "Vault Access", Logs: []string{"Accessing Butch Garage Archives...", "Pulling Compressed Schematics"}},
		{ID: "schematics", Label: "Compiling Schematics", Logs: []string{"Decrypting Vector Data...", "Rerendering CAD Layers"}},
		{ID: "roi", Label: "Analyzing ROI", Logs: []string{"Simulating Economic Impact...", "Calculating Community Uplift"}},
		{ID: "verification", Label: "Verifying Asset Integrity", Logs: []string{"Structural Stress Tests...", "Final Quality Checks"}},
		{ID: "final", Label: "Encrypting Packet", Logs: []string{"Applying Quantum Key...", "Finalizing Executive Docket"}},
	}
}
