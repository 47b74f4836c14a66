package driven

import "maps"

// defaultPrompts are the built-in templates. Prompt stores fall back to
// them and seed new prompt files with them.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	PromptBlueprint: `Generate a detailed technical dossier and Social ROI (Return on Impact) analysis for an asset named "%s" of type "%s" from the "%s" hub.

COMMUNITY & ROI CONTEXT:
- For luxury items such as timepieces, focus on precision engineering and economic stability features.
- For Humanitarian or Mag-Lev assets, focus on community-saving features.
- Keep the Butch Garage professional tone with elite Taglish engineering jargon.

OUTPUT STRUCTURE:
Provide a title, technical details, materials, build stages, and an AI recommendation for maximising the asset's value and utility.`,

	PromptAssetPackage: `Synthesize a "Butch Garage Sovereign Sales Package" for the request: "%s".

TONE: Executive, luxury, high-tech, elite Taglish. Use "Sovereign Acquisition" terminology.

REQUIREMENTS:
- A futuristic name for the asset.
- A detailed technical description.
- High-end specs: speed, engine and 4 tech features.
- A three-paragraph sales script for a trillionaire client explaining why this asset is the ultimate status symbol.
- A suggested price label in BUX.`,

	PromptVisual: `A hyper-realistic, professional cinematic wide shot (16:9) of a futuristic ultra-luxury vehicle.
DESCRIPTION: %s.
STYLE: Butch Garage aesthetics, obsidian black plating, polished chrome, cyan neon underglow, 8k resolution, volumetric lighting, sleek aerodynamic design, depth of field, studio lighting, hyper-detailed.`,

	PromptSocialCampaign: `Synthesize a high-tech "Omni-Channel Social Dispatch" for the Butch Garage asset "%s".
Mission: "%s".

TONE: Cyber-executive, elite Taglish, bold, futuristic. Use words like Nexus, Uplink, Protocol, Sovereign.

OUTPUT: Content for X (a thread), Instagram (neon aesthetic caption), LinkedIn (executive update) and TikTok (futuristic visual script), 5 holographic hashtags and a reach projection.`,

	PromptPerformancePatch: `Synthesize a "Neural Performance Patch" for the asset "%s" targeting the mission objective "%s".

TONE: Executive cyber-engineering with elite Taglish jargon.

OUTPUT: An optimisation summary, specific engine tuning, AI logic upgrades, a resonance (Social ROI) bonus and a stability rating.`,

	PromptFinancialSynergy: `Design a "Butch Sovereign Philanthropy" financial roadmap to help more poor people in the "%s" sector with the goal "%s".

CONTEXT:
- Combine high-tech infrastructure such as chain-jets and drones with micro-financing and direct aid.
- Use an executive Taglish tone.
- Provide budget allocation, funding strategy, asset synergy, a poverty reduction index and next steps.`,

	PromptProjectProposal: `Propose a high-tech "Butch Global" impact project for "%s" to solve the challenge of "%s".
Tone: executive luxury meets high-stakes humanitarian engineering, with some elite Taglish.
Focus on scalable, futuristic solutions that help people.`,

	PromptGlobalPattern: `Design an "HQ Connectivity Pattern" for the Butch Garage International Network.
Origin Hub: %s
Destination Hub: %s

TONE: Executive, zero-latency, elite Taglish. Focus on sovereign logistics and cultural synchronisation for the international market.

OUTPUT: A detailed logistics route, energy requirements (quantum or fusion), a cultural sync protocol in elite Taglish, and 3 intermediate nodes with coordinates formatted like "LAT:45.0, LON:120.2" and a signal strength from 0 to 100.`,
}

// DefaultPrompt returns the built-in template for name.
func DefaultPrompt(name string) (string, bool) {
	p, ok := defaultPrompts[name]
	return p, ok
}

// DefaultPrompts returns a copy of every built-in template keyed by name.
func DefaultPrompts() map[string]string {
	return maps.Clone(defaultPrompts)
}
