// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"pvdb-cli/internal/config"
	"pvdb-cli/internal/store"
	"pvdb-cli/pkg/pvdb"

	"github.com/spf13/cobra"
)

func newImportCommand(app *App) *cobra.Command {
	var (
		schema string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Store decoded entries in a SQLite catalogue",
		Long: `Decode a pv_db file and upsert every entry into a SQLite catalogue.

Entries already stored under the same identifier are replaced. The whole
file is written in one transaction, so a failed import leaves the store
unchanged. The database defaults to store.path from the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.resolveSchema(schema)
			if err != nil {
				return app.fail(cmd, err)
			}
			if dbPath == "" {
				dbPath = string(app.cfg.Store.Path)
			}

			var n int
			if s == config.SchemaMdata {
				n, err = runImport[pvdb.MdataEntry](cmd.Context(), app, args[0], dbPath)
			} else {
				n, err = runImport[pvdb.Entry](cmd.Context(), app, args[0], dbPath)
			}
			if err != nil {
				return app.fail(cmd, err)
			}

			fmt.Fprintf(app.stdout, "%s Imported %d entries into %s\n", SuccessStyle.Render("✓"), n, dbPath)
			return nil
		},
	}

	addSchemaFlag(cmd, &schema)
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite catalogue path (default from config)")

	return cmd
}

func runImport[T record](ctx context.Context, app *App, path, dbPath string) (int, error) {
	cat, err := loadCatalogue[T](app, path)
	if err != nil {
		return 0, err
	}

	st, err := store.Open(ctx, dbPath, store.WithClock(app.Clock))
	if err != nil {
		return 0, storeError("open catalogue store", dbPath, err)
	}
	defer func() { _ = st.Close() }()

	n, err := store.PutCatalogue(ctx, st, path, cat)
	if err != nil {
		return 0, storeError("import entries", dbPath, err)
	}
	app.logger.Info("imported entries", "source", path, "db", dbPath, "entries", n)
	return n, nil
}
