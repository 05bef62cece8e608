package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maelcorre/gridcap/config"
	"github.com/maelcorre/gridcap/core/limits"
	"github.com/maelcorre/gridcap/infra/logger"
)

var (
	resolveCarrier    string
	resolveCategory   string
	resolveMultiplier float64
	resolveLimitsPath string
	resolveExtension  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the technical bound for a carrier",
	RunE:  resolveBound,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveCarrier, "carrier", "", "technology carrier name")
	resolveCmd.Flags().StringVar(&resolveCategory, "category", "generator", "component category")
	resolveCmd.Flags().Float64Var(&resolveMultiplier, "multiplier", 1, "multiplier applied to the bound")
	resolveCmd.Flags().StringVar(&resolveLimitsPath, "limits", "", "technical limits file (defaults when empty)")
	resolveCmd.Flags().BoolVar(&resolveExtension, "extension", false, "resolve the reinforcement bound for lines and links")
	rootCmd.AddCommand(resolveCmd)
}

func resolveBound(cmd *cobra.Command, args []string) error {
	cat, err := limits.ParseCategory(resolveCategory)
	if err != nil {
		return err
	}
	logg := logger.New("resolve-command")
	table := config.LoadLimits(resolveLimitsPath, logg)
	resolver := limits.NewResolver(table, logg)

	bound := resolver.Bound(resolveCarrier, cat, resolveMultiplier)
	if resolveExtension {
		bound = resolver.ExtensionBound(cat, resolveMultiplier)
	}
	out := fmt.Sprintf("%s %s: %g", cat, resolveCarrier, bound)
	switch cat {
	case limits.StorageEnergy:
		out += " MWh"
	case limits.System:
		// Aggregate ceilings mix units (MW, MWh, hours, years).
	default:
		out += " MW"
	}
	fmt.Println(out)
	return nil
}
