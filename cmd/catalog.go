package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"factory-planner/core/format"
	"factory-planner/core/reconcile"
	"factory-planner/core/storage"
	"factory-planner/feature/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFile string
	yesConfirm bool
)

// catalogCmd is the parent command for recipe catalog operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and move recipe data",
}

// catalogListCmd prints every item with the rate of one building.
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items and their per-building rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		c, err := e.loadCatalog(cmd.Context())
		if err != nil {
			return err
		}
		return renderCatalog(os.Stdout, c, e.format)
	},
}

// catalogImportCmd mirrors the catalog into the database.
var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the database catalog with the configured source or a file",
	Long: `Loads recipe data and replaces the catalog tables in one transaction.

Examples:
  # Mirror the bucket's data file into the database
  factory-planner catalog import

  # Import a local file without prompting
  factory-planner catalog import --file recipes.yaml --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setupEnv(true)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		var c *catalog.Catalog
		if importFile != "" {
			c, err = (&catalog.FileSource{Path: importFile}).Load(ctx)
		} else if e.cfg.Catalog.Source == catalog.SourceDatabase {
			return errors.New("catalog.source is database; pass --file to import from a file")
		} else {
			c, err = e.loadCatalog(ctx)
		}
		if err != nil {
			return err
		}

		if !yesConfirm {
			msg := fmt.Sprintf("Replace the database catalog with %d items, %d recipes?", len(c.Items()), len(c.Recipes()))
			if !confirm(os.Stdin, os.Stdout, msg) {
				e.log.Info("Import cancelled")
				return nil
			}
		}

		store := catalog.NewStore(e.db)
		if err := store.Migrate(ctx); err != nil {
			return err
		}
		if err := store.Save(ctx, c); err != nil {
			return err
		}
		e.log.Info("Catalog imported",
			zap.Int("items", len(c.Items())),
			zap.Int("buildings", len(c.Buildings())),
			zap.Int("recipes", len(c.Recipes())))
		return nil
	},
}

// catalogUploadCmd validates a local data file and stores it in the bucket.
var catalogUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Validate a data file and upload it to the bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setupEnv(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		c, err := catalog.Parse(args[0], bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("refusing to upload invalid data: %w", err)
		}

		// Re-encode in the object key's format, which may differ from the local file
		var buf bytes.Buffer
		if err := catalog.Encode(e.cfg.Catalog.Object, &buf, c.Data()); err != nil {
			return err
		}

		if created, err := storage.EnsureBucket(ctx, e.store, e.cfg.Storage.Bucket, e.cfg.Storage.Region); err != nil {
			return err
		} else if created {
			e.log.Info("Created bucket", zap.String("bucket", e.cfg.Storage.Bucket))
		}

		if err := storage.PutBytes(ctx, e.store, e.cfg.Storage.Bucket, e.cfg.Catalog.Object, buf.Bytes(), contentType(e.cfg.Catalog.Object)); err != nil {
			return err
		}
		e.log.Info("Catalog uploaded",
			zap.String("object", e.cfg.Catalog.Object),
			zap.Int("items", len(c.Items())))
		return nil
	},
}

// catalogExportCmd writes the current catalog to a file.
var catalogExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the current catalog to a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setupEnv(false)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		c, err := e.loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		if err := catalog.Encode(args[0], f, c.Data()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

// renderCatalog prints one row per item with its recipe and base rate.
func renderCatalog(w io.Writer, c *catalog.Catalog, f *format.Formatter) error {
	r := reconcile.NewReconciler(c, f)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("TIER"),
		text.FgHiCyan.Sprint("ITEM"),
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("RECIPE"),
		text.FgHiCyan.Sprint("BUILDING"),
		text.FgHiCyan.Sprint(f.RateLabel() + " / BUILDING"),
	})

	for _, it := range c.Items() {
		recipe, building, rate := "-", "-", reconcile.NotAvailable

		rec, err := c.RecipeFor(it.Key)
		var nre *reconcile.NoRecipeError
		switch {
		case errors.As(err, &nre):
			rate = text.FgYellow.Sprint("no recipe")
		case err != nil:
			return err
		default:
			recipe = rec.Key()
			if b := c.Building(rec); b != nil {
				building = b.Key
			}
			base, err := r.BaseRate(it.Key)
			switch {
			case err == nil:
				rate = f.Rate(base)
			case !errors.Is(err, reconcile.ErrRateUndefined):
				return err
			}
		}

		tw.AppendRow(table.Row{it.Tier, it.Key, it.Name, recipe, building, rate})
	}

	tw.AppendFooter(table.Row{"", "Total", len(c.Items()), "", "", ""})
	tw.Render()
	return nil
}

// confirm asks a yes/no question on out and reads the answer from in.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/json"
	}
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogImportCmd, catalogUploadCmd, catalogExportCmd)

	catalogImportCmd.Flags().StringVar(&importFile, "file", "", "Import from this JSON or YAML file instead of the configured source")
	catalogImportCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Replace without asking")
}
