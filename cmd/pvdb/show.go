// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pvdb-cli/internal/config"
	"pvdb-cli/internal/store"
	"pvdb-cli/pkg/pvdb"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newShowCommand(app *App) *cobra.Command {
	var (
		schema string
		dbPath string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "show [file] <id>",
		Short: "Render one entry as Markdown",
		Long: `Render one entry of a pv_db file as Markdown.

The identifier is a number such as 1 or 001, or a full key such as pv_001.
With --db the entry is read from a SQLite catalogue and no file is given.`,
		Example: `  pvdb show pv_db.txt 1
  pvdb show pv_db.txt pv_001 --raw
  pvdb show --db songs.db 1`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 2) == (dbPath != "") {
				return app.fail(cmd, errSourceRequired)
			}
			id, err := app.parseIdentifier(args[len(args)-1])
			if err != nil {
				return app.fail(cmd, err)
			}
			s, err := app.resolveSchema(schema)
			if err != nil {
				return app.fail(cmd, err)
			}

			var summary pvdb.Summary
			switch {
			case dbPath != "" && s == config.SchemaMdata:
				summary, err = storedSummary[pvdb.MdataEntry](cmd.Context(), app, dbPath, id)
			case dbPath != "":
				summary, err = storedSummary[pvdb.Entry](cmd.Context(), app, dbPath, id)
			case s == config.SchemaMdata:
				summary, err = decodedSummary[pvdb.MdataEntry](app, args[0], id)
			default:
				summary, err = decodedSummary[pvdb.Entry](app, args[0], id)
			}
			if err != nil {
				return app.fail(cmd, err)
			}

			md := entryMarkdown(string(app.cfg.Decode.Prefix), id, summary)
			if raw {
				fmt.Fprint(app.stdout, md)
				return nil
			}
			rendered, err := glamour.Render(md, app.glamourStyle())
			if err != nil {
				return app.fail(cmd, fmt.Errorf("render markdown: %w", err))
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}

	addSchemaFlag(cmd, &schema)
	cmd.Flags().StringVar(&dbPath, "db", "", "read the entry from a SQLite catalogue")
	cmd.Flags().BoolVar(&raw, "raw", false, "print Markdown without rendering it")

	return cmd
}

func decodedSummary[T record](app *App, path string, id uint32) (pvdb.Summary, error) {
	cat, err := loadCatalogue[T](app, path)
	if err != nil {
		return pvdb.Summary{}, err
	}
	rec, ok := cat.Get(id)
	if !ok {
		return pvdb.Summary{}, entryNotFoundError(path, id)
	}
	return rec.Summary(), nil
}

func storedSummary[T record](ctx context.Context, app *App, dbPath string, id uint32) (pvdb.Summary, error) {
	st, err := store.Open(ctx, dbPath, store.WithClock(app.Clock))
	if err != nil {
		return pvdb.Summary{}, storeError("open catalogue store", dbPath, err)
	}
	defer func() { _ = st.Close() }()

	row, err := st.GetEntry(ctx, id)
	if err != nil {
		return pvdb.Summary{}, storeError(fmt.Sprintf("read entry %d", id), dbPath, err)
	}
	rec, err := store.Payload[T](row)
	if err != nil {
		return pvdb.Summary{}, storeError(fmt.Sprintf("read entry %d", id), dbPath, err)
	}
	return rec.Summary(), nil
}

// entryMarkdown renders a summary as a Markdown document.
func entryMarkdown(prefix string, id uint32, s pvdb.Summary) string {
	key := fmt.Sprintf("%s%03d", prefix, id)
	title := s.SongName
	if title == "" {
		title = key
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(title))
	b.WriteString("| Field | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Key | `%s` |\n", key)
	fmt.Fprintf(&b, "| ID | %d |\n", id)
	if s.SongNameEn != "" {
		fmt.Fprintf(&b, "| English name | %s |\n", escapeMarkdown(s.SongNameEn))
	}
	if s.SongFileName != "" {
		fmt.Fprintf(&b, "| Song file | `%s` |\n", s.SongFileName)
	}
	if s.BPM != nil {
		fmt.Fprintf(&b, "| BPM | %d |\n", *s.BPM)
	}
	if s.Date != nil {
		fmt.Fprintf(&b, "| Date | %d |\n", *s.Date)
	}

	writeCharts(&b, s.Difficulty)
	return b.String()
}

func writeCharts(b *strings.Builder, d *pvdb.Difficulties) {
	if len(d.Charts()) == 0 {
		return
	}

	b.WriteString("\n## Charts\n\n")
	b.WriteString("| Difficulty | # | Level | Script |\n")
	b.WriteString("|---|---|---|---|\n")
	groups := []struct {
		name   string
		charts []pvdb.Difficulty
	}{
		{"Easy", d.Easy},
		{"Normal", d.Normal},
		{"Hard", d.Hard},
		{"Extreme", d.Extreme},
		{"Encore", d.Encore},
	}
	for _, g := range groups {
		for i, c := range g.charts {
			level := "-"
			if c.Level != nil && *c.Level != pvdb.LevelNone {
				level = strconv.FormatFloat(c.Level.Stars(), 'f', 1, 64) + "★"
			}
			fmt.Fprintf(b, "| %s | %d | %s | `%s` |\n", g.name, i, level, c.ScriptFileName)
		}
	}
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
