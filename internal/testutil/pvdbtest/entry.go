// SPDX-License-Identifier: MPL-2.0

package pvdbtest

import (
	"slices"
	"strconv"
	"strings"
)

type (
	// Option configures a fixture record.
	Option func(*record)

	record struct {
		key    string
		fields []field
	}

	field struct {
		path  string
		value string
	}
)

// Entry returns the lines of a base record stored under key. By default the
// record carries every field a base entry requires:
//   - song_name "Song <key>" and song_name_en "Song <key> EN"
//   - song_name_reading, bpm 120, date 20100101
//   - song_file_name rom/sound/song/<key>.ogg
//
// Each line ends with a newline, so results can be concatenated.
func Entry(key string, opts ...Option) string {
	r := &record{key: key}
	r.set("song_name", "Song "+key)
	r.set("song_name_en", "Song "+key+" EN")
	r.set("song_name_reading", "reading")
	r.set("bpm", "120")
	r.set("song_file_name", "rom/sound/song/"+key+".ogg")
	r.set("date", "20100101")
	for _, opt := range opts {
		opt(r)
	}
	return r.text()
}

// Mdata returns the lines of a patch record, which only requires song_name.
func Mdata(key string, opts ...Option) string {
	r := &record{key: key}
	r.set("song_name", "Song "+key)
	for _, opt := range opts {
		opt(r)
	}
	return r.text()
}

// Text concatenates records into one document.
func Text(records ...string) string {
	return strings.Join(records, "")
}

// --- Options ---

// With appends raw "path=value" lines below the record key.
func With(lines ...string) Option {
	return func(r *record) {
		for _, line := range lines {
			path, value, _ := strings.Cut(line, "=")
			r.fields = append(r.fields, field{path: path, value: value})
		}
	}
}

// WithField sets path to value, replacing an existing line for path.
func WithField(path, value string) Option {
	return func(r *record) { r.set(path, value) }
}

// Without removes the line for path.
func Without(path string) Option {
	return func(r *record) {
		r.fields = slices.DeleteFunc(r.fields, func(f field) bool { return f.path == path })
	}
}

// WithSongName sets song_name.
func WithSongName(name string) Option {
	return WithField("song_name", name)
}

// WithBPM sets bpm.
func WithBPM(bpm int) Option {
	return WithField("bpm", strconv.Itoa(bpm))
}

// WithChart adds one difficulty chart. kind is easy, normal, hard, extreme
// or encore; level is a value such as "PV_LV_07_5", or "" for none.
func WithChart(kind string, index int, level string) Option {
	return func(r *record) {
		base := "difficulty." + kind + "." + strconv.Itoa(index) + "."
		r.set(base+"script_file_name", "rom/script/"+r.key+"_"+kind+"_"+strconv.Itoa(index)+".dsc")
		if level != "" {
			r.set(base+"level", level)
		}
	}
}

func (r *record) set(path, value string) {
	for i := range r.fields {
		if r.fields[i].path == path {
			r.fields[i].value = value
			return
		}
	}
	r.fields = append(r.fields, field{path: path, value: value})
}

func (r *record) text() string {
	var b strings.Builder
	for _, f := range r.fields {
		b.WriteString(r.key)
		b.WriteString(".")
		b.WriteString(f.path)
		b.WriteString("=")
		b.WriteString(f.value)
		b.WriteString("\n")
	}
	return b.String()
}
