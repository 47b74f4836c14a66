package driven

// PromptStore provides access to generation prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Unknown names return an error.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names. Every template is a fmt format string; the
// placeholders each one expects are listed below.
const (
	// PromptBlueprint expects %s name, %s category, %s origin.
	PromptBlueprint = "blueprint"

	// PromptAssetPackage expects %s concept.
	PromptAssetPackage = "asset_package"

	// PromptVisual expects %s description.
	PromptVisual = "visual"

	// PromptSocialCampaign expects %s asset name, %s goal.
	PromptSocialCampaign = "social_campaign"

	// PromptPerformancePatch expects %s vehicle name, %s objective.
	PromptPerformancePatch = "performance_patch"

	// PromptFinancialSynergy expects %s sector, %s goal.
	PromptFinancialSynergy = "financial_synergy"

	// PromptProjectProposal expects %s location, %s challenge.
	PromptProjectProposal = "project_proposal"

	// PromptGlobalPattern expects %s origin, %s destination.
	PromptGlobalPattern = "global_pattern"
)

// PromptNames lists every well-known prompt.
func PromptNames() []string {
	return []string{
		PromptBlueprint,
		PromptAssetPackage,
		PromptVisual,
		PromptSocialCampaign,
		PromptPerformancePatch,
		PromptFinancialSynergy,
		PromptProjectProposal,
		PromptGlobalPattern,
	}
}

// PromptStoreAware is an optional interface for adapters that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the adapter should use built-in default prompts.
	SetPromptStore(store PromptStore)
}
