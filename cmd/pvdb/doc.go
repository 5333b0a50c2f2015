// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands of pvdb.
//
// The root command loads configuration once per invocation and hands the
// resolved settings to each subcommand through App. Subcommands decode
// pv_db files with pkg/pvdb and print the result as a table, an exported
// document, Markdown, or SQLite rows.
package cmd
