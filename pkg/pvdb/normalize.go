// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"slices"
	"strings"
)

const (
	// Separator splits a line into its key and value.
	Separator = "="
	// DefaultCommentMarker starts a line that normalization discards.
	DefaultCommentMarker = "#"
)

// Normalize prepares raw pv_db text for the tree decoder.
//
// Lines without a separator and lines starting with the comment marker are
// dropped. The remaining lines are sorted bytewise and, for each run of lines
// sharing the same key, only the first (smallest) line is kept. Lines are
// joined with "\n" without a trailing newline.
//
// Only WithCommentMarker affects normalization; other options are ignored.
func Normalize(text string, opts ...Option) string {
	return normalize(text, newSettings(opts).commentMarker)
}

func normalize(text, commentMarker string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if !strings.Contains(line, Separator) {
			continue
		}
		if commentMarker != "" && strings.HasPrefix(line, commentMarker) {
			continue
		}
		kept = append(kept, line)
	}

	slices.Sort(kept)

	out := kept[:0]
	for i, line := range kept {
		if i > 0 && KeyPrefix(line) == KeyPrefix(out[len(out)-1]) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// KeyPrefix returns the part of a line before the first separator.
// A line without a separator is returned unchanged.
func KeyPrefix(line string) string {
	key, _, _ := strings.Cut(line, Separator)
	return key
}
