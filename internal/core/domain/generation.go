package domain

import "encoding/base64"

// GenerationKind identifies a type of generated content.
type GenerationKind string

// Available generation kinds.
const (
	GenerationBlueprint        GenerationKind = "blueprint"
	GenerationAssetPackage     GenerationKind = "package"
	GenerationVisual           GenerationKind = "visual"
	GenerationSocialCampaign   GenerationKind = "social"
	GenerationPerformancePatch GenerationKind = "tune"
	GenerationFinancialSynergy GenerationKind = "finance"
	GenerationProjectProposal  GenerationKind = "propose"
	GenerationGlobalPattern    GenerationKind = "pattern"
)

// GenerationKinds lists every generation kind.
func GenerationKinds() []GenerationKind {
	return []GenerationKind{
		GenerationBlueprint,
		GenerationAssetPackage,
		GenerationVisual,
		GenerationSocialCampaign,
		GenerationPerformancePatch,
		GenerationFinancialSynergy,
		GenerationProjectProposal,
		GenerationGlobalPattern,
	}
}

// IsValid returns true if the generation kind is recognised.
func (k GenerationKind) IsValid() bool {
	for _, kind := range GenerationKinds() {
		if kind == k {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (k GenerationKind) String() string {
	return string(k)
}

// DefaultBlueprintOrigin is used when a blueprint request names no origin hub.
const DefaultBlueprintOrigin = "Global HQ"

// BlueprintRequest describes the asset a technical dossier is generated for.
type BlueprintRequest struct {
	Name     string
	Category string
	Origin   string
}

// BlueprintStage is one build stage of a blueprint.
type BlueprintStage struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Blueprint is a generated technical dossier with a social ROI analysis.
type Blueprint struct {
	Title            string           `json:"title"`
	TechnicalDetails string           `json:"technicalDetails"`
	Materials        []string         `json:"materials"`
	Stages           []BlueprintStage `json:"stages"`
	AIRecommendation string           `json:"aiRecommendation"`
}

// AssetPackage is a generated sales package for a new asset concept.
type AssetPackage struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Specs          Specs  `json:"specs"`
	SalesScript    string `json:"salesScript"`
	SuggestedPrice string `json:"suggestedPrice"`
}

// Visual is a generated image.
type Visual struct {
	Data     []byte `json:"-"`
	MIMEType string `json:"mimeType"`
}

// DataURI encodes the image for inline display.
func (v *Visual) DataURI() string {
	mime := v.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(v.Data)
}

// SocialCampaign is generated omni-channel marketing copy.
type SocialCampaign struct {
	CampaignName        string   `json:"campaignName"`
	XThread             []string `json:"xThread"`
	InstaCaption        string   `json:"instaCaption"`
	LinkedInPost        string   `json:"linkedInPost"`
	TiktokScript        string   `json:"tiktokScript"`
	HolographicHashtags []string `json:"holographicHashtags"`
	ReachProjection     string   `json:"reachProjection"`
}

// PerformancePatch is a generated tuning patch for a vehicle.
type PerformancePatch struct {
	PatchID             string `json:"patchId"`
	ObjectiveName       string `json:"objectiveName"`
	OptimizationSummary string `json:"optimizationSummary"`
	EngineTuning        string `json:"engineTuning"`
	AILogicUpgrade      string `json:"aiLogicUpgrade"`
	ResonanceBonus      string `json:"resonanceBonus"`
	StabilityRating     string `json:"stabilityRating"`
}

// FinancialSynergy is a generated philanthropy funding roadmap.
type FinancialSynergy struct {
	SectorName            string   `json:"sectorName"`
	FinancialGoal         string   `json:"financialGoal"`
	AllocatedBudget       string   `json:"allocatedBudget"`
	FundingStrategy       string   `json:"fundingStrategy"`
	AssetSynergy          string   `json:"assetSynergy"`
	PovertyReductionIndex string   `json:"povertyReductionIndex"`
	NextSteps             []string `json:"nextSteps"`
}

// ProjectProposal is a generated community impact project.
type ProjectProposal struct {
	Title                string   `json:"title"`
	Concept              string   `json:"concept"`
	TechStack            []string `json:"techStack"`
	SocialROI            string   `json:"socialROI"`
	ImplementationStages []string `json:"implementationStages"`
}

// PatternNode is an intermediate hub on a connectivity pattern.
type PatternNode struct {
	Name       string  `json:"name"`
	Coordinate string  `json:"coordinate"`
	Strength   float64 `json:"strength"`
}

// GlobalPattern is a generated connectivity pattern between two hubs.
type GlobalPattern struct {
	PatternID            string        `json:"patternId"`
	OriginHub            string        `json:"originHub"`
	DestinationHub       string        `json:"destinationHub"`
	ConnectionType       string        `json:"connectionType"`
	LogisticsRoute       string        `json:"logisticsRoute"`
	EnergyRequirement    string        `json:"energyRequirement"`
	CulturalSyncProtocol string        `json:"culturalSyncProtocol"`
	Status               string        `json:"status"`
	Nodes                []PatternNode `json:"nodes"`
}

// TuningObjectives are the suggested performance patch objectives.
func TuningObjectives() []string {
	return []string{
		"Tactical Executive Extraction",
		"Billboard PH Cultural Resonance",
		"Hyper-Sonic Warp Stability",
		"Infiltration & Ghost Presence",
		"Interstellar Humanitarian Logistics",
	}
}

// HypeGoals are the suggested social campaign goals.
func HypeGoals() []string {
	return []string{
		"Global Product Launch",
		"Humanitarian Mission Announcement",
		"Interstellar Hub Expansion",
		"Billboard PH Nexus Event",
		"Executive Fleet Showcase",
	}
}

// NetworkHubs are the hubs offered for connectivity patterns.
func NetworkHubs() []string {
	return []string{"NEO-MANILA", "MARANELLO", "GENEVA", "LONDON", "NEW-NEW YORK", "TOKYO-CITADEL", "SYDNEY-GATE"}
}
