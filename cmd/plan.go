package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"factory-planner/core/format"
	"factory-planner/core/rational"
	"factory-planner/core/reconcile"
	"factory-planner/feature/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	planBuildings string
	planRate      string
	planUnit      string
	planExact     bool
)

// planCmd reconciles a single target from the command line.
var planCmd = &cobra.Command{
	Use:   "plan <item>",
	Short: "Reconcile building count and rate for one item",
	Long: `Computes the production rate of a number of buildings, or the buildings
needed for a rate. Values may be integers, decimals or fractions.

Examples:
  # Rate of 5 iron plate furnaces
  factory-planner plan ironPlate --buildings 5

  # Furnaces needed for 90 plates a minute
  factory-planner plan ironPlate --rate 90 --unit m`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if planBuildings != "" && planRate != "" {
			return errors.New("use either --buildings or --rate, not both")
		}

		e, err := setupEnv(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		f := e.format
		if planUnit != "" {
			cfg := e.cfg.Format
			cfg.RateUnit = planUnit
			if f, err = format.NewFormatter(cfg); err != nil {
				return err
			}
		}

		c, err := e.loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		return runPlan(os.Stdout, c, f, args[0], planBuildings, planRate, planExact)
	},
}

// runPlan builds a target for item, applies the edit and renders the result.
func runPlan(w io.Writer, c *catalog.Catalog, f *format.Formatter, item, buildings, rate string, exact bool) error {
	if !c.HasItem(item) {
		return fmt.Errorf("%w: %s", catalog.ErrUnknownItem, item)
	}

	r := reconcile.NewReconciler(c, f)
	t := reconcile.NewTarget(1, item)

	switch {
	case rate != "":
		if err := r.SwitchToRate(t, rate, f.RateFactor()); err != nil {
			return err
		}
	case buildings != "":
		if err := r.SwitchToBuildings(t, buildings); err != nil {
			return err
		}
	}

	rec, err := r.Recompute(t)
	if err != nil {
		return err
	}

	recipe, err := c.RecipeFor(item)
	if err != nil {
		return err
	}
	building := "-"
	if b := c.Building(recipe); b != nil {
		building = b.Name
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("ITEM"),
		text.FgHiCyan.Sprint("RECIPE"),
		text.FgHiCyan.Sprint("BUILDING"),
		text.FgHiCyan.Sprint("MODE"),
		text.FgHiCyan.Sprint("BUILDINGS"),
		text.FgHiCyan.Sprint(f.RateLabel()),
	})

	rateText := rec.RateDisplay
	if !rec.RateDefined && rateText == "" {
		rateText = text.FgYellow.Sprint("-")
	}
	tw.AppendRow(table.Row{item, recipe.Key(), building, rec.Mode.String(), rec.BuildingsDisplay, rateText})

	if exact {
		tw.AppendFooter(table.Row{"", "", "", "exact", exactText(rec.Buildings), exactText(rec.Rate) + " /s"})
	}

	tw.Render()
	return nil
}

func exactText(v *rational.Rational) string {
	if v == nil {
		return reconcile.NotAvailable
	}
	return v.String()
}

func init() {
	RootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planBuildings, "buildings", "", "Number of buildings (authoritative)")
	planCmd.Flags().StringVar(&planRate, "rate", "", "Production rate in the display unit (authoritative)")
	planCmd.Flags().StringVar(&planUnit, "unit", "", "Rate unit: s, m or h (defaults to format.rate_unit)")
	planCmd.Flags().BoolVar(&planExact, "exact", false, "Also print exact fractions")
}
