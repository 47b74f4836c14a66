package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/butch-garage/showroom/internal/core/domain"
)

var (
	genJSON      bool
	genOut       string
	genName      string
	genCategory  string
	genOrigin    string
	genDescribe  string
	genGoal      string
	genObjective string
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate content with Gemini",
	Long: `Generate dossiers, sales packages, visuals and campaigns.

Every subcommand needs an API key. Set GEMINI_API_KEY or run
'showroom settings set-key'.`,
}

var genBlueprintCmd = &cobra.Command{
	Use:   "blueprint [vehicle-id]",
	Short: "Generate a technical dossier and social ROI analysis",
	Long: `Generate a technical dossier for a catalog vehicle, or for any asset
described with --name, --category and --origin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenBlueprint,
}

var genPackageCmd = &cobra.Command{
	Use:   "package [concept]",
	Short: "Synthesize a sovereign sales package for a concept",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenPackage,
}

var genSynthesizeCmd = &cobra.Command{
	Use:   "synthesize [concept]",
	Short: "Synthesize a sales package and render it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenSynthesize,
}

var genVisualCmd = &cobra.Command{
	Use:   "visual [vehicle-id]",
	Short: "Render a vehicle or a description",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenVisual,
}

var genSocialCmd = &cobra.Command{
	Use:   "social [vehicle-id]",
	Short: "Write an omni-channel social dispatch",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenSocial,
}

var genTuneCmd = &cobra.Command{
	Use:   "tune [vehicle-id]",
	Short: "Synthesize a neural performance patch",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenTune,
}

var genFinanceCmd = &cobra.Command{
	Use:   "finance [sector] [goal]",
	Short: "Design a philanthropy funding roadmap",
	Args:  cobra.ExactArgs(2),
	RunE:  runGenFinance,
}

var genProposeCmd = &cobra.Command{
	Use:   "propose [location] [challenge]",
	Short: "Propose a community impact project",
	Args:  cobra.ExactArgs(2),
	RunE:  runGenPropose,
}

var genPatternCmd = &cobra.Command{
	Use:   "pattern [origin] [destination]",
	Short: "Design an HQ connectivity pattern between two hubs",
	Long: "Design an HQ connectivity pattern between two hubs.\n\nHubs: " +
		strings.Join(domain.NetworkHubs(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: runGenPattern,
}

func init() {
	generateCmd.PersistentFlags().BoolVar(&genJSON, "json", false, "output as JSON")

	genBlueprintCmd.Flags().StringVar(&genName, "name", "", "asset name for a custom blueprint")
	genBlueprintCmd.Flags().StringVar(&genCategory, "category", "", "asset category for a custom blueprint")
	genBlueprintCmd.Flags().StringVar(&genOrigin, "origin", "", "origin hub for a custom blueprint")

	genVisualCmd.Flags().StringVarP(&genDescribe, "describe", "d", "", "render this description instead of a vehicle")
	genVisualCmd.Flags().StringVarP(&genOut, "out", "o", "", "write the image to this file")
	genSynthesizeCmd.Flags().StringVarP(&genOut, "out", "o", "", "write the image to this file")

	genSocialCmd.Flags().StringVarP(&genGoal, "goal", "g", domain.HypeGoals()[0],
		"campaign goal, e.g. "+quoteList(domain.HypeGoals()))
	genTuneCmd.Flags().StringVar(&genObjective, "objective", domain.TuningObjectives()[0],
		"tuning objective, e.g. "+quoteList(domain.TuningObjectives()))

	generateCmd.AddCommand(
		genBlueprintCmd,
		genPackageCmd,
		genSynthesizeCmd,
		genVisualCmd,
		genSocialCmd,
		genTuneCmd,
		genFinanceCmd,
		genProposeCmd,
		genPatternCmd,
	)
	rootCmd.AddCommand(generateCmd)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}

// requireGenerator returns a helpful error when no API key is configured.
func requireGenerator() error {
	if generationService == nil {
		return errors.New("generation service not configured")
	}
	if !generationService.Available() {
		return fmt.Errorf("%w: set GEMINI_API_KEY or run 'showroom settings set-key'",
			domain.ErrGeneratorUnavailable)
	}
	return nil
}

// runGeneration wraps a generation call with a progress spinner.
func runGeneration[T any](cmd *cobra.Command, fn func() (T, error)) (T, error) {
	p := startProgress(cmd.ErrOrStderr())
	defer p.Stop()
	return fn()
}

func runGenBlueprint(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	var req *domain.BlueprintRequest
	if len(args) == 0 {
		if genName == "" || genCategory == "" {
			return errors.New("provide a vehicle id or --name and --category")
		}
		req = &domain.BlueprintRequest{Name: genName, Category: genCategory, Origin: genOrigin}
	}

	bp, err := runGeneration(cmd, func() (*domain.Blueprint, error) {
		if req != nil {
			return generationService.CustomBlueprint(cmd.Context(), *req)
		}
		return generationService.Blueprint(cmd.Context(), args[0])
	})
	if err != nil {
		return err
	}
	if genJSON {
		return writeJSON(cmd, bp)
	}

	heading(cmd, bp.Title)
	cmd.Println(bp.TechnicalDetails)
	cmd.Println()
	cmd.Println("Materials")
	for _, m := range bp.Materials {
		cmd.Printf("  - %s\n", m)
	}
	cmd.Println()
	cmd.Println("Build stages")
	for i, s := range bp.Stages {
		cmd.Printf("  %d. %s: %s\n", i+1, s.Name, s.Description)
	}
	cmd.Println()
	cmd.Println("AI recommendation")
	cmd.Printf("  %s\n", bp.AIRecommendation)
	return nil
}

func printPackage(cmd *cobra.Command, pkg *domain.AssetPackage) {
	heading(cmd, pkg.Name)
	cmd.Println(pkg.Description)
	cmd.Println()
	cmd.Printf("Speed:    %s\n", pkg.Specs.Speed)
	cmd.Printf("Engine:   %s\n", pkg.Specs.Engine)
	cmd.Printf("Tech:     %s\n", strings.Join(pkg.Specs.Tech, ", "))
	cmd.Printf("Price:    %s\n", pkg.SuggestedPrice)
	cmd.Println()
	cmd.Println(pkg.SalesScript)
}

func runGenPackage(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	concept := strings.Join(args, " ")
	pkg, err := runGeneration(cmd, func() (*domain.AssetPackage, error) {
		return generationService.AssetPackage(cmd.Context(), concept)
	})
	if err != nil {
		return err
	}
	if genJSON {
		return writeJSON(cmd, pkg)
	}
	printPackage(cmd, pkg)
	return nil
}

type synthesized struct {
	pkg    *domain.AssetPackage
	visual *domain.Visual
}

func runGenSynthesize(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	concept := strings.Join(args, " ")
	res, err := runGeneration(cmd, func() (synthesized, error) {
		pkg, visual, err := generationService.SynthesizeAsset(cmd.Context(), concept)
		return synthesized{pkg, visual}, err
	})
	if err != nil {
		return err
	}

	if genJSON {
		return writeJSON(cmd, struct {
			Package *domain.AssetPackage `json:"package"`
			Image   string               `json:"image"`
		}{res.pkg, res.visual.DataURI()})
	}
	printPackage(cmd, res.pkg)
	cmd.Println()
	return writeVisual(cmd, res.visual)
}

func runGenVisual(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}
	if len(args) == 0 && genDescribe == "" {
		return errors.New("provide a vehicle id or --describe")
	}

	visual, err := runGeneration(cmd, func() (*domain.Visual, error) {
		if genDescribe != "" {
			return generationService.VisualFromDescription(cmd.Context(), genDescribe)
		}
		return generationService.Visual(cmd.Context(), args[0])
	})
	if err != nil {
		return err
	}

	if genJSON {
		return writeJSON(cmd, map[string]string{"mimeType": visual.MIMEType, "image": visual.DataURI()})
	}
	return writeVisual(cmd, visual)
}

// writeVisual saves the image to --out, or reports its size when no path is given.
func writeVisual(cmd *cobra.Command, visual *domain.Visual) error {
	if genOut == "" {
		cmd.Printf("Rendered %s (%d bytes). Use --out to save it.\n", visual.MIMEType, len(visual.Data))
		return nil
	}
	if err := os.WriteFile(genOut, visual.Data, 0o600); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	okColor.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", visual.MIMEType, genOut)
	return nil
}

func runGenSocial(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	campaign, err := runGeneration(cmd, func() (*domain.SocialCampaign, error) {
		return generationService.SocialCampaign(cmd.Context(), args[0], genGoal)
	})
	if err != nil {
		return err
	}
	if genJSON {
		return writeJSON(cmd, campaign)
	}

	heading(cmd, campaign.CampaignName)
	cmd.Println("X thread")
	for i, post := range campaign.XThread {
		cmd.Printf("  %d/ %s\n", i+1, post)
	}
	cmd.Println()
	cmd.Printf("Instagram: %s\n\n", campaign.InstaCaption)
	cmd.Printf("LinkedIn:  %s\n\n", campaign.LinkedInPost)
	cmd.Printf("TikTok:    %s\n\n", campaign.TiktokScript)
	cmd.Printf("Hashtags:  %s\n", strings.Join(campaign.HolographicHashtags, " "))
	cmd.Printf("Reach:     %s\n", campaign.ReachProjection)
	return nil
}

func runGenTune(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	patch, err := runGeneration(cmd, func() (*domain.PerformancePatch, error) {
		return generationService.PerformancePatch(cmd.Context(), args[0], genObjective)
	})
	if err != nil {
		return err
	}
	if genJSON {
		return writeJSON(cmd, patch)
	}

	heading(cmd, patch.PatchID+" · "+patch.ObjectiveName)
	cmd.Println(patch.OptimizationSummary)
	cmd.Println()
	cmd.Printf("Engine tuning:    %s\n", patch.EngineTuning)
	cmd.Printf("AI logic upgrade: %s\n", patch.AILogicUpgrade)
	cmd.Printf("Resonance bonus:  %s\n", patch.ResonanceBonus)
	cmd.Printf("Stability:        %s\n", patch.StabilityRating)
	return nil
}

func runGenFinance(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	plan, err := runGeneration(cmd, func() (*domain.FinancialSynergy, error) {
		return generationService.FinancialSynergy(cmd.Context(), args[0], args[1])
	})
	if err != nil {
		return err
	}
	if genJSON {
		return writeJSON(cmd, plan)
	}

	heading(cmd, plan.SectorName)
	cmd.Printf("Goal:      %s\n", plan.FinancialGoal)
	cmd.Printf("Budget:    %s\n", plan.AllocatedBudget)
	cmd.Printf("Poverty reduction index: %s\n\n", plan.PovertyReductionIndex)
	cmd.Println(plan.FundingStrategy)
	cmd.Println()
	cmd.Println(plan.AssetSynergy)
	cmd.Println()
	cmd.Println("Next steps")
	for i, s := range plan.NextSteps {
		cmd.Printf("  %d. %s\n", i+1, s)
	}
	return nil
}

func runGenPropose(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	proposal, err := runGeneration(cmd, func() (*domain.ProjectProposal, error) {
		return generationService.ProjectProposal(cmd.Context(), args[0], args[1])
	})
	if err != nil {
		return err
	}
	if genJSON {
		return writeJSON(cmd, proposal)
	}

	heading(cmd, proposal.Title)
	cmd.Println(proposal.Concept)
	cmd.Println()
	cmd.Printf("Tech stack: %s\n", strings.Join(proposal.TechStack, ", "))
	cmd.Printf("Social ROI: %s\n\n", proposal.SocialROI)
	cmd.Println("Implementation")
	for i, s := range proposal.ImplementationStages {
		cmd.Printf("  %d. %s\n", i+1, s)
	}
	return nil
}

func runGenPattern(cmd *cobra.Command, args []string) error {
	if err := requireGenerator(); err != nil {
		return err
	}

	pattern, err := runGeneration(cmd, func() (*domain.GlobalPattern, error) {
		return generationService.GlobalPattern(cmd.Context(), args[0], args[1])
	})
	if err != nil {
		return err
	}
	if genJSON {
		return writeJSON(cmd, pattern)
	}

	heading(cmd, fmt.Sprintf("%s  %s → %s", pattern.PatternID, pattern.OriginHub, pattern.DestinationHub))
	cmd.Printf("Connection: %s (%s)\n", pattern.ConnectionType, pattern.Status)
	cmd.Printf("Route:      %s\n", pattern.LogisticsRoute)
	cmd.Printf("Energy:     %s\n", pattern.EnergyRequirement)
	cmd.Printf("Sync:       %s\n\n", pattern.CulturalSyncProtocol)
	cmd.Println("Nodes")
	for _, n := range pattern.Nodes {
		cmd.Printf("  %-20s %-22s %5.1f%%\n", n.Name, n.Coordinate, n.Strength)
	}
	return nil
}
