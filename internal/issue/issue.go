// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InputNotFoundId Id = iota + 1
	DecodeFailedId
	ConfigLoadFailedId
	EntryNotFoundId
	InvalidIdentifierId
	StoreFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to look up the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // format references for the issue
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Markdown returns the message followed by a "See also" list of links.
func (i *Issue) Markdown() string {
	if len(i.docLinks) == 0 {
		return string(i.mdMsg)
	}
	var b strings.Builder
	b.WriteString(string(i.mdMsg))
	b.WriteString("\n\n## See also\n")
	for _, link := range i.docLinks {
		b.WriteString("- <" + string(link) + ">\n")
	}
	return b.String()
}

// Render renders the issue for a terminal using a glamour style such as
// "dark", "light" or "notty".
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	inputNotFoundIssue = &Issue{
		id: InputNotFoundId,
		mdMsg: `
# Input file not found!

The pv_db file you asked for could not be opened.

## Things you can try:
- Check the path, relative paths are resolved from the current directory
- Base game databases are usually named ` + "`pv_db.txt`" + `
- Patch databases are usually named ` + "`mdata_pv_db.txt`" + ` or ` + "`mod_pv_db.txt`",
	}

	decodeFailedIssue = &Issue{
		id: DecodeFailedId,
		mdMsg: `
# The pv_db file could not be decoded!

Single broken entries are skipped, so this error means the file as a whole
does not have the ` + "`key=value`" + ` tree shape.

## Common causes:
- A key is used both as a value and as a parent, for example
~~~
pv_001.bpm=120
pv_001.bpm.extra=1
~~~
- A key contains an empty segment such as ` + "`pv_001..song_name`" + `
- The file is not UTF-8 text

## Things you can try:
- Fix the line reported in the error and run the command again
- Run ` + "`pvdb normalize <file>`" + ` to see the lines the decoder receives`,
		docLinks: []HttpLink{"https://github.com/blueskythlikesclouds/DivaModLoader"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

pvdb reads ` + "`config.cue`" + ` from its configuration directory.

## Things you can try:
- Print the resolved location:
~~~
$ pvdb config path
~~~
- Write a fresh default file:
~~~
$ pvdb config init
~~~
- Check values against the schema, for example
~~~cue
decode: schema: "entry" // or "mdata"
output: format: "table" // json, yaml, toml, dump
~~~`,
		docLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	entryNotFoundIssue = &Issue{
		id: EntryNotFoundId,
		mdMsg: `
# Entry not found!

The file was decoded but holds no entry with that identifier.

## Things you can try:
- List the identifiers that were decoded:
~~~
$ pvdb ids <file>
~~~
- Run ` + "`pvdb decode --report <file>`" + ` to see entries that were skipped
- If the file is a patch database, use ` + "`--schema mdata`",
	}

	invalidIdentifierIssue = &Issue{
		id: InvalidIdentifierId,
		mdMsg: `
# Invalid identifier!

Identifiers are unsigned decimal numbers, such as ` + "`1`" + ` or ` + "`001`" + `
for ` + "`pv_001`" + `.`,
	}

	storeFailedIssue = &Issue{
		id: StoreFailedId,
		mdMsg: `
# Store operation failed!

The SQLite catalogue store could not be opened or written.

## Things you can try:
- Check that the directory holding the database exists and is writable
- Pick another location with ` + "`--db <path>`" + ` or ` + "`store.path`" + ` in the config
- Remove a corrupted database file and import again`,
		docLinks: []HttpLink{"https://www.sqlite.org/wal.html"},
	}

	issues = map[Id]*Issue{
		inputNotFoundIssue.Id():     inputNotFoundIssue,
		decodeFailedIssue.Id():      decodeFailedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		entryNotFoundIssue.Id():     entryNotFoundIssue,
		invalidIdentifierIssue.Id(): invalidIdentifierIssue,
		storeFailedIssue.Id():       storeFailedIssue,
	}
)

// Values returns every issue ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, is)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
