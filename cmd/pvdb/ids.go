// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"pvdb-cli/internal/config"
	"pvdb-cli/internal/store"
	"pvdb-cli/pkg/pvdb"

	"github.com/spf13/cobra"
)

// errSourceRequired is returned when a command gets neither a file nor --db.
var errSourceRequired = errors.New("pass a pv_db file or --db, not both or neither")

func newIDsCommand(app *App) *cobra.Command {
	var (
		schema string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "ids [file]",
		Short: "List decoded identifiers in ascending order",
		Long: `List the identifiers of a pv_db file, one per line, in ascending order.

With --db the identifiers stored in a SQLite catalogue are listed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (dbPath != "") {
				return app.fail(cmd, errSourceRequired)
			}

			var (
				ids []uint32
				err error
			)
			if dbPath != "" {
				ids, err = storedIDs(cmd.Context(), app, dbPath)
			} else {
				ids, err = decodedIDs(app, args[0], schema)
			}
			if err != nil {
				return app.fail(cmd, err)
			}

			for _, id := range ids {
				fmt.Fprintln(app.stdout, id)
			}
			return nil
		},
	}

	addSchemaFlag(cmd, &schema)
	cmd.Flags().StringVar(&dbPath, "db", "", "read identifiers from a SQLite catalogue")

	return cmd
}

func decodedIDs(app *App, path, schemaFlag string) ([]uint32, error) {
	schema, err := app.resolveSchema(schemaFlag)
	if err != nil {
		return nil, err
	}
	if schema == config.SchemaMdata {
		cat, err := loadCatalogue[pvdb.MdataEntry](app, path)
		if err != nil {
			return nil, err
		}
		return cat.IDs(), nil
	}
	cat, err := loadCatalogue[pvdb.Entry](app, path)
	if err != nil {
		return nil, err
	}
	return cat.IDs(), nil
}

func storedIDs(ctx context.Context, app *App, dbPath string) ([]uint32, error) {
	st, err := store.Open(ctx, dbPath, store.WithClock(app.Clock))
	if err != nil {
		return nil, storeError("open catalogue store", dbPath, err)
	}
	defer func() { _ = st.Close() }()

	ids, err := st.ListIDs(ctx)
	if err != nil {
		return nil, storeError("list stored identifiers", dbPath, err)
	}
	return ids, nil
}
