// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"pvdb-cli/internal/config"
	"pvdb-cli/internal/issue"
	"pvdb-cli/pkg/pvdb"

	"github.com/spf13/cobra"
)

// record is the constraint shared by the two record schemas.
type record interface {
	pvdb.Entry | pvdb.MdataEntry
	pvdb.Summarizer
}

// addSchemaFlag registers --schema on cmd.
func addSchemaFlag(cmd *cobra.Command, schema *string) {
	cmd.Flags().StringVarP(schema, "schema", "s", "", "record schema: entry or mdata (default from config)")
}

// resolveSchema returns the schema named by flag, falling back to the
// configured schema when flag is empty.
func (a *App) resolveSchema(flag string) (config.Schema, error) {
	schema := a.cfg.Decode.Schema
	if flag != "" {
		schema = config.Schema(flag)
	}
	if valid, errs := schema.IsValid(); !valid {
		return "", errs[0]
	}
	return schema, nil
}

// loadCatalogue decodes the file at path into a catalogue of T.
func loadCatalogue[T record](a *App, path string, opts ...pvdb.Option) (*pvdb.Catalogue[T], error) {
	cat, err := pvdb.ParseFile[T](path, a.decodeOptions(opts...)...)
	if err != nil {
		return nil, inputError(path, err)
	}
	a.logger.Debug("decoded file", "path", path, "entries", cat.Len())
	return cat, nil
}

// parseIdentifier accepts a bare decimal identifier such as 1 or 001, or a
// full record key such as pv_001.
func (a *App) parseIdentifier(arg string) (uint32, error) {
	if id, ok := pvdb.ExtractIdentifier(string(a.cfg.Decode.Prefix), arg); ok {
		return id, nil
	}
	if id, ok := pvdb.ExtractIdentifier("", arg); ok {
		return id, nil
	}
	return 0, issue.NewErrorContext().
		WithOperation("parse identifier").
		WithResource(arg).
		WithIssue(issue.InvalidIdentifierId).
		WithSuggestion(fmt.Sprintf("Pass a number such as 1, or a key such as %s001", a.cfg.Decode.Prefix)).
		Wrap(fmt.Errorf("%q is not an identifier", arg)).
		BuildError()
}
