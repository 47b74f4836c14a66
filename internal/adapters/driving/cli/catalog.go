package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/butch-garage/showroom/internal/core/domain"
)

var (
	listSearch   string
	listMarket   string
	listYear     string
	listCategory string
	listOrigin   string
	listSort     string
	listJSON     bool
	showJSON     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog vehicles",
	Long: `List vehicles, optionally filtered and sorted.

The search term matches name, category and model year. Every filter
takes an exact value or "All". Run 'showroom facets' for the values.

Sort keys:
  year   - newest first
  tier   - Sovereign, Elite, Executive, Humanitarian
  price  - most expensive first`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a vehicle with its market trend",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List filter values derived from the catalog",
	Args:  cobra.NoArgs,
	RunE:  runFacets,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show community impact figures",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "free-text search term")
	listCmd.Flags().StringVar(&listMarket, "market", domain.All, "market state filter")
	listCmd.Flags().StringVar(&listYear, "year", domain.All, "model year filter")
	listCmd.Flags().StringVar(&listCategory, "category", domain.All, "category filter")
	listCmd.Flags().StringVar(&listOrigin, "origin", domain.All, "origin filter")
	listCmd.Flags().StringVar(&listSort, "sort", string(domain.SortByYear), "sort key: year, tier or price")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(facetsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	sortKey, err := domain.ParseSortKey(listSort)
	if err != nil {
		return err
	}

	q := domain.DefaultQuery().
		WithSearch(listSearch).
		WithMarket(listMarket).
		WithYear(listYear).
		WithCategory(listCategory).
		WithOrigin(listOrigin).
		WithSort(sortKey)

	vehicles, err := catalogService.Query(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if listJSON {
		return writeJSON(cmd, vehicles)
	}

	if len(vehicles) == 0 {
		cmd.Println("No vehicles match.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, v := range vehicles {
		fmt.Fprintf(out, "  %-4s %s  %s\n", v.ID, accentColor.Sprint(v.Name), dimColor.Sprintf("(%d)", v.Year))
		fmt.Fprintf(out, "       %s · %s · %s", v.Category, v.Tier, v.Origin)
		if v.PriceLabel != "" {
			fmt.Fprintf(out, " · %s", v.PriceLabel)
		}
		if v.MarketState != domain.MarketNone {
			fmt.Fprintf(out, " · %s", v.MarketState)
		}
		fmt.Fprintln(out)
	}
	cmd.Println()
	cmd.Printf("%d of %d vehicles (sorted by %s)\n", len(vehicles), catalogSize(cmd), sortKey.Description())
	return nil
}

func catalogSize(cmd *cobra.Command) int {
	all, err := catalogService.List(cmd.Context())
	if err != nil {
		return 0
	}
	return len(all)
}

func runShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	v, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	trend, err := catalogService.Trend(cmd.Context(), v.ID)
	if err != nil {
		return err
	}

	if showJSON {
		return writeJSON(cmd, struct {
			*domain.Vehicle
			Trend []domain.TrendPoint `json:"trend"`
		}{v, trend})
	}

	heading(cmd, v.Name)
	cmd.Printf("ID:       %s\n", v.ID)
	cmd.Printf("Year:     %d\n", v.Year)
	cmd.Printf("Tier:     %s\n", v.Tier)
	cmd.Printf("Type:     %s\n", v.Category)
	cmd.Printf("Origin:   %s\n", v.Origin)
	if v.CrewQuarters != nil {
		cmd.Printf("Crew:     %d\n", *v.CrewQuarters)
	}
	if v.PriceLabel != "" {
		cmd.Printf("Price:    %s\n", v.PriceLabel)
	}
	if v.MarketState != domain.MarketNone {
		cmd.Printf("Market:   %s\n", v.MarketState)
	}
	cmd.Println()
	cmd.Println(v.Description)
	cmd.Println()
	cmd.Printf("Speed:    %s\n", v.Specs.Speed)
	cmd.Printf("Engine:   %s\n", v.Specs.Engine)
	if len(v.Specs.Tech) > 0 {
		cmd.Printf("Tech:     %s\n", strings.Join(v.Specs.Tech, ", "))
	}
	cmd.Println()

	cmd.Println("Market trend")
	for _, p := range trend {
		cmd.Printf("  %s  %7.1f  vol %d\n", p.Day, p.Value, p.Volume)
	}
	return nil
}

func runFacets(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	facets, err := catalogService.Facets(cmd.Context())
	if err != nil {
		return err
	}

	printFacet(cmd, "Years", facets.Years)
	printFacet(cmd, "Categories", facets.Categories)
	printFacet(cmd, "Origins", facets.Origins)
	printFacet(cmd, "Market", domain.MarketFacet())
	sortKeys := make([]string, 0, len(domain.SortKeys()))
	for _, k := range domain.SortKeys() {
		sortKeys = append(sortKeys, k.String())
	}
	printFacet(cmd, "Sort", sortKeys)
	return nil
}

func printFacet(cmd *cobra.Command, name string, values []string) {
	headingColor.Fprintf(cmd.OutOrStdout(), "%s\n", name)
	cmd.Printf("  %s\n\n", strings.Join(values, ", "))
}

func runStats(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	stats, err := catalogService.Stats(cmd.Context())
	if err != nil {
		return err
	}

	heading(cmd, "Community Impact")
	for _, s := range stats {
		cmd.Printf("  %-24s %s\n", s.Label, accentColor.Sprint(s.Value))
		cmd.Printf("  %-24s %s\n", "", dimColor.Sprint(s.Sublabel))
	}
	return nil
}
