package gemini

import (
	"sort"

	"google.golang.org/genai"
)

// Response schemas constrain structured replies to the domain record shapes.

func str() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func strList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: str()}
}

func object(props map[string]*genai.Schema) *genai.Schema {
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	sort.Strings(required)
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

func blueprintSchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"title":            str(),
		"technicalDetails": str(),
		"materials":        strList(),
		"stages": {
			Type: genai.TypeArray,
			Items: object(map[string]*genai.Schema{
				"name":        str(),
				"description": str(),
			}),
		},
		"aiRecommendation": str(),
	})
}

func assetPackageSchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"name":        str(),
		"description": str(),
		"specs": object(map[string]*genai.Schema{
			"speed":  str(),
			"engine": str(),
			"tech":   strList(),
		}),
		"salesScript":    str(),
		"suggestedPrice": str(),
	})
}

func socialCampaignSchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"campaignName":        str(),
		"xThread":             strList(),
		"instaCaption":        str(),
		"linkedInPost":        str(),
		"tiktokScript":        str(),
		"holographicHashtags": strList(),
		"reachProjection":     str(),
	})
}

func performancePatchSchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"patchId":             str(),
		"objectiveName":       str(),
		"optimizationSummary": str(),
		"engineTuning":        str(),
		"aiLogicUpgrade":      str(),
		"resonanceBonus":      str(),
		"stabilityRating":     str(),
	})
}

func financialSynergySchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"sectorName":            str(),
		"financialGoal":         str(),
		"allocatedBudget":       str(),
		"fundingStrategy":       str(),
		"assetSynergy":          str(),
		"povertyReductionIndex": str(),
		"nextSteps":             strList(),
	})
}

func projectProposalSchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"title":                str(),
		"concept":              str(),
		"techStack":            strList(),
		"socialROI":            str(),
		"implementationStages": strList(),
	})
}

func globalPatternSchema() *genai.Schema {
	return object(map[string]*genai.Schema{
		"patternId":            str(),
		"originHub":            str(),
		"destinationHub":       str(),
		"connectionType":       str(),
		"logisticsRoute":       str(),
		"energyRequirement":    str(),
		"culturalSyncProtocol": str(),
		"status":               str(),
		"nodes": {
			Type: genai.TypeArray,
			Items: object(map[string]*genai.Schema{
				"name":       str(),
				"coordinate": str(),
				"strength":   {Type: genai.TypeNumber},
			}),
		},
	})
}
