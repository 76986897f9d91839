package cmd

import (
	"context"
	"fmt"
	"os"

	"factory-planner/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag  bool
	syncFlag bool
)

// integrityCmd runs every integrity check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the bucket layout, recipe data and catalog tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Check the recipe data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Compare the data file with the database catalog",
	Long: `Lists items, buildings and recipes that differ between the bucket data
file and the database mirror. With --sync the mirror is rewritten from the
data file after confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrift(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, dataCmd, schemaCmd, driftCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
	driftCmd.Flags().BoolVar(&syncFlag, "sync", false, "Rewrite the database catalog from the data file")
	driftCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Sync without asking")
}

func runDrift(ctx context.Context) error {
	e, err := setupEnv(true)
	if err != nil {
		return err
	}
	logg := e.log
	defer logg.Sync()

	svc := integrity.NewService(e.store, e.cfg.Storage.Bucket, e.cfg.Catalog.Object, e.db, logg)
	report, err := svc.CheckDrift(ctx, false)
	if err != nil {
		return err
	}

	if report.InSync {
		logg.Info("Database catalog matches the data file.", zap.Int("entries", report.Summary.Total))
		return nil
	}

	for _, r := range report.Results {
		logg.Warn("Drift",
			zap.String("kind", r.Kind),
			zap.String("key", r.Key),
			zap.Bool("in_data", r.InData),
			zap.Bool("in_database", r.InDatabase),
			zap.Strings("mismatch", r.Mismatch))
	}
	logg.Info("Drift summary",
		zap.Int("missing_database", report.Summary.MissingDatabase),
		zap.Int("missing_data", report.Summary.MissingData),
		zap.Int("mismatches", report.Summary.Mismatches))

	if !syncFlag {
		return fmt.Errorf("database catalog differs from the data file in %d entries", len(report.Results))
	}
	if !yesConfirm && !confirm(os.Stdin, os.Stdout, "Rewrite the database catalog from the data file?") {
		logg.Info("Sync cancelled")
		return nil
	}

	if _, err := svc.CheckDrift(ctx, true); err != nil {
		return err
	}
	return nil
}

func runIntegrityChecks(ctx context.Context, structure, data, schema bool) error {
	e, err := setupEnv(schema && !structure && !data)
	if err != nil {
		return err
	}
	logg := e.log
	defer logg.Sync()

	svc := integrity.NewService(e.store, e.cfg.Storage.Bucket, e.cfg.Catalog.Object, e.db, logg)
	failed := false

	if structure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fixFlag:
			if err := svc.FixStructure(ctx, missing); err != nil {
				return err
			}
			logg.Info("Structure fixed successfully.", zap.Strings("created", missing))
		default:
			failed = true
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run 'integrity structure --fix' to create missing folders.")
		}
	}

	if data {
		logg.Info("Checking recipe data...", zap.String("object", e.cfg.Catalog.Object))
		report, err := svc.CheckCatalogData(ctx)
		if err != nil {
			return fmt.Errorf("data check failed: %w", err)
		}

		switch {
		case !report.Present:
			failed = true
			logg.Warn("Recipe data file is missing", zap.String("object", report.Object))
		case !report.Valid:
			failed = true
			logg.Warn("Recipe data file is invalid", zap.String("error", report.Error))
		default:
			logg.Info("Recipe data is valid.",
				zap.Int("items", report.Items),
				zap.Int("buildings", report.Buildings),
				zap.Int("recipes", report.Recipes))
		}
	}

	if schema {
		logg.Info("Checking catalog tables...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Warn("Schema check skipped", zap.Error(err))
		} else if report.Matched {
			logg.Info("Catalog tables match their models.", zap.String("driver", report.Driver))
		} else {
			failed = true
			for table, tr := range report.Tables {
				if tr.Status == "ok" {
					continue
				}
				logg.Warn("Table mismatch",
					zap.String("table", table),
					zap.String("status", tr.Status),
					zap.Strings("missing_columns", tr.MissingColumns),
					zap.Strings("type_mismatches", tr.TypeMismatches))
			}
			for _, msg := range report.Errors {
				logg.Error("Inspection error", zap.String("error", msg))
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
