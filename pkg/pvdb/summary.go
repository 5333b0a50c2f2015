// SPDX-License-Identifier: MPL-2.0

package pvdb

// Summary holds the headline fields of a record, used for listings and
// indexed storage. Fields a schema leaves optional are nil when absent.
type Summary struct {
	SongName     string
	SongNameEn   string
	SongFileName string
	BPM          *int32
	Date         *int32
	Charts       int

	// Difficulty is the chart set of the record, nil when it has none.
	Difficulty *Difficulties
}

// Summarizer is implemented by record types that can describe themselves
// with a Summary.
type Summarizer interface {
	Summary() Summary
}

// Summary implements Summarizer.
func (e Entry) Summary() Summary {
	return Summary{
		SongName:     e.SongName,
		SongNameEn:   e.SongNameEn,
		SongFileName: e.SongFileName,
		BPM:          &e.BPM,
		Date:         &e.Date,
		Charts:       len(e.Difficulty.Charts()),
		Difficulty:   e.Difficulty,
	}
}

// Summary implements Summarizer.
func (e MdataEntry) Summary() Summary {
	return Summary{
		SongName:     e.SongName,
		SongNameEn:   deref(e.SongNameEn),
		SongFileName: deref(e.SongFileName),
		BPM:          e.BPM,
		Date:         e.Date,
		Charts:       len(e.Difficulty.Charts()),
		Difficulty:   e.Difficulty,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
