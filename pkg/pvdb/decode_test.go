// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pvdb-cli/internal/testutil/pvdbtest"
	"pvdb-cli/pkg/divatree"
)

func TestFromString_EndToEndOrdering(t *testing.T) {
	t.Parallel()

	cat, err := FromString(pvdbtest.Entry("pv_010") + pvdbtest.Entry("pv_001"))
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 10}, cat.IDs())
	e, ok := cat.Get(10)
	require.True(t, ok)
	assert.Equal(t, "Song pv_010", e.SongName)
	assert.Equal(t, int32(120), e.BPM)
}

func TestFromString_DuplicateKeyTieBreak(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Entry("pv_001") + "pv_001.bpm=150\n"
	cat, err := FromString(text)
	require.NoError(t, err)

	e, ok := cat.Get(1)
	require.True(t, ok)
	assert.Equal(t, int32(120), e.BPM, "lexicographically smallest line wins")
}

func TestFromString_CommentsAndMalformedLinesAreIgnored(t *testing.T) {
	t.Parallel()

	text := "# pv_db\n" + "#pv_002.song_name=hidden\n" + "this line has no separator\n" + pvdbtest.Entry("pv_001")
	cat, err := FromString(text)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1}, cat.IDs())
}

func TestFromString_BooleanCoercion(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Entry("pv_001", pvdbtest.With("is_old_pv=1", "pre_play_script=0")) +
		pvdbtest.Entry("pv_002", pvdbtest.With("is_old_pv=2")) +
		pvdbtest.Entry("pv_003")
	cat, err := FromString(text)
	require.NoError(t, err)

	e1, _ := cat.Get(1)
	e2, _ := cat.Get(2)
	e3, _ := cat.Get(3)
	assert.True(t, e1.IsOldPV.Bool())
	assert.False(t, e1.PrePlayScript.Bool())
	assert.False(t, e2.IsOldPV.Bool())
	assert.False(t, e3.IsOldPV.Bool())
	assert.Nil(t, e3.DisableCalcMotfrmLimit)
}

func TestFromString_OptionalFlagKeepsPresence(t *testing.T) {
	t.Parallel()

	cat, err := FromString(pvdbtest.Entry("pv_001", pvdbtest.With("disable_calc_motfrm_limit=0")))
	require.NoError(t, err)

	e, _ := cat.Get(1)
	require.NotNil(t, e.DisableCalcMotfrmLimit)
	assert.False(t, e.DisableCalcMotfrmLimit.Bool())
}

func TestFromString_PerEntryResilience(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Entry("pv_001") +
		"pv_002.song_name=missing everything else\n" +
		pvdbtest.Entry("pv_003", pvdbtest.With("bpm_extra=ignored")) +
		pvdbtest.Entry("pv_004", pvdbtest.With("is_old_pv=yes")) +
		pvdbtest.Entry("pv_005", pvdbtest.With("difficulty.easy.0.level=PV_LV_99_0", "difficulty.easy.0.script_file_name=x.dsc")) +
		pvdbtest.Entry("pv_abc") +
		pvdbtest.Entry("pv_4294967296")

	diags := &Diagnostics{}
	cat, err := FromString(text, WithSkipSink(diags.Collect()))
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 3}, cat.IDs())
	assert.Equal(t, 3, diags.Count(SkipDecodeError))
	assert.Equal(t, 2, diags.Count(SkipKeyPattern))
	assert.Zero(t, diags.Count(SkipOverwritten))
	assert.Equal(t, 5, diags.Len())

	for _, sk := range diags.Skips() {
		if sk.Reason != SkipDecodeError {
			assert.NoError(t, sk.Err)
			continue
		}
		var entryErr *divatree.EntryError
		assert.ErrorAs(t, sk.Err, &entryErr)
		assert.NotZero(t, sk.ID, "decode errors keep the identifier when the key has one")
	}
}

func TestFromString_UnknownKeysAndMissingOptionals(t *testing.T) {
	t.Parallel()

	cat, err := FromString(pvdbtest.Entry("pv_001", pvdbtest.With("brand_new_field=1", "another.nested.key=x")))
	require.NoError(t, err)

	e, ok := cat.Get(1)
	require.True(t, ok)
	assert.Nil(t, e.Difficulty)
	assert.Nil(t, e.Lyric)
	assert.Nil(t, e.SongInfo)
}

func TestFromString_NestedRecord(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Entry("pv_001", pvdbtest.With(
		"difficulty.easy.0.script_file_name=rom/script/pv_001_easy.dsc",
		"difficulty.easy.0.level=PV_LV_03_0",
		"difficulty.easy.0.is_ps4dlc=1",
		"difficulty.easy.length=1",
		"difficulty.extreme.1.script_file_name=rom/script/pv_001_extreme_1.dsc",
		"difficulty.extreme.1.attribute.extra=1",
		"difficulty.extreme.0.script_file_name=rom/script/pv_001_extreme.dsc",
		"difficulty.extreme.0.attribute.original=1",
		"difficulty.extreme.length=2",
		"lyric.000=first",
		"lyric.002=third",
		"performer.0.type=VOCAL",
		"performer.0.chara=MIK",
		"performer.num=1",
		"songinfo.music=composer",
		"songinfo.ex_info.0.key=Guitar",
		"songinfo.ex_info.0.val=someone",
		"sabi.start_time=30.5",
		"movie_surface=FRONT",
		"motion2P.0=mot_a",
	))
	cat, err := FromString(text)
	require.NoError(t, err)

	e, ok := cat.Get(1)
	require.True(t, ok)
	require.NotNil(t, e.Difficulty)
	require.Len(t, e.Difficulty.Easy, 1)
	require.NotNil(t, e.Difficulty.Easy[0].Level)
	assert.Equal(t, Level03_0, *e.Difficulty.Easy[0].Level)
	assert.True(t, e.Difficulty.Easy[0].IsPS4DLC.Bool())

	require.Len(t, e.Difficulty.Extreme, 2)
	assert.Equal(t, "rom/script/pv_001_extreme.dsc", e.Difficulty.Extreme[0].ScriptFileName)
	assert.True(t, e.Difficulty.Extreme[0].Attribute.Original.Bool())
	assert.True(t, e.Difficulty.Extreme[1].Attribute.Extra.Bool())
	assert.Len(t, e.Difficulty.Charts(), 3)

	assert.Equal(t, []string{"first", "", "third"}, e.Lyric)

	require.Len(t, e.Performers, 1)
	assert.Equal(t, PerformerVocal, *e.Performers[0].Type)
	assert.Equal(t, CharaMiku, *e.Performers[0].Chara)

	require.NotNil(t, e.SongInfo)
	assert.Equal(t, "composer", *e.SongInfo.Music)
	require.Len(t, e.SongInfo.ExInfo, 1)
	assert.Equal(t, "Guitar", e.SongInfo.ExInfo[0].Key)

	require.NotNil(t, e.Sabi)
	assert.InDelta(t, 30.5, *e.Sabi.StartTime, 1e-6)
	assert.Equal(t, MovieSurfaceFront, *e.MovieSurface)
	assert.Equal(t, []string{"mot_a"}, e.Motion2P)
}

func TestFromString_ArrayLengthTruncates(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Entry("pv_001", pvdbtest.With("lyric.0=a", "lyric.1=b", "lyric.2=c", "lyric.length=2"))
	cat, err := FromString(text)
	require.NoError(t, err)

	e, _ := cat.Get(1)
	assert.Equal(t, []string{"a", "b"}, e.Lyric)
}

func TestFromString_TreeConflictSkipsOnlyItsEntry(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Entry("pv_001") +
		pvdbtest.Entry("pv_002") + "pv_002.bpm.extra=1\n" +
		"pv_005..bpm=1\n" +
		pvdbtest.Entry("pv_007")

	diags := &Diagnostics{}
	cat, err := FromString(text, WithSkipSink(diags.Collect()))
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 7}, cat.IDs())
	skips := diags.Skips()
	require.Len(t, skips, 2)
	for i, wantID := range []uint32{2, 5} {
		assert.Equal(t, wantID, skips[i].ID)
		assert.Equal(t, SkipDecodeError, skips[i].Reason)
		assert.ErrorIs(t, skips[i].Err, divatree.ErrSyntax)
	}
}

func TestFromString_RootConflictIsFatal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "key is both a value and an entry", text: pvdbtest.Entry("pv_001") + "pv_001=1\n"},
		{name: "empty first segment", text: pvdbtest.Entry("pv_001") + ".bpm=1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, err := FromString(tt.text)
			assert.Nil(t, cat)
			assert.ErrorIs(t, err, ErrOpenDecoder)
			assert.ErrorIs(t, err, divatree.ErrSyntax)
		})
	}
}

func TestFromString_Idempotent(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Text(
		pvdbtest.Entry("pv_003", pvdbtest.With(
			"difficulty.easy.0.level=PV_LV_03_0",
			"difficulty.easy.0.script_file_name=e.dsc",
			"difficulty.extreme.0.level=PV_LV_09_5",
			"difficulty.extreme.0.script_file_name=x.dsc",
			"difficulty.extreme.length=1",
			"is_old_pv=1",
			"lyric.0=first",
			"lyric.2=third",
		)),
		pvdbtest.Entry("pv_001", pvdbtest.With("performer.0.chara=MIK", "performer.0.type=VOCAL", "eyes_xrot_adjust=0")),
		"pv_002.song_name=incomplete\n",
	)

	first, err := FromString(text)
	require.NoError(t, err)
	second, err := FromString(text)
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 3}, first.IDs())
	assert.Equal(t, first.IDs(), second.IDs())
	assert.Equal(t, first.Entries(), second.Entries())
}

func TestFromString_EmptyInput(t *testing.T) {
	t.Parallel()

	cat, err := FromString("")
	require.NoError(t, err)
	assert.Zero(t, cat.Len())
	assert.Empty(t, cat.IDs())
}

func TestDecode_SchemaVariants(t *testing.T) {
	t.Parallel()

	text := "pv_001.song_name=Patched\npv_001.difficulty.hard.0.script_file_name=h.dsc\n" +
		pvdbtest.Entry("pv_002")

	base, err := Decode[Entry](text)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2}, base.IDs(), "base schema requires bpm and friends")

	patch, err := Decode[MdataEntry](text)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, patch.IDs())

	p1, _ := patch.Get(1)
	assert.Equal(t, "Patched", p1.SongName)
	assert.Nil(t, p1.BPM)
	assert.Equal(t, 1, p1.Summary().Charts)

	p2, _ := patch.Get(2)
	require.NotNil(t, p2.BPM)
	assert.Equal(t, int32(120), *p2.BPM)
}

func TestDecode_CustomPrefix(t *testing.T) {
	t.Parallel()

	text := pvdbtest.Entry("song7") + pvdbtest.Entry("pv_001")
	cat, err := Decode[Entry](text, WithPrefix("song"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{7}, cat.IDs())
}

type fakeItem struct {
	key string
	rec string
	err error
}

type fakeSource struct {
	items []fakeItem
	pos   int
}

func (s *fakeSource) Next() (string, string, error) {
	if s.pos >= len(s.items) {
		return "", "", io.EOF
	}
	it := s.items[s.pos]
	s.pos++
	return it.key, it.rec, it.err
}

func TestBuild_ToleratesItemErrorsAndOverwrites(t *testing.T) {
	t.Parallel()

	src := &fakeSource{items: []fakeItem{
		{key: "pv_002", rec: "two"},
		{key: "pv_003", err: errors.New("bad record")},
		{key: "pv_001", rec: "one"},
		{key: "pv_002", rec: "two again"},
		{key: "other", rec: "ignored"},
		{err: errors.New("no key at all")},
	}}

	diags := &Diagnostics{}
	cat := Build[string](src, WithSkipSink(diags.Collect()))

	assert.Equal(t, []uint32{1, 2}, cat.IDs())
	two, _ := cat.Get(2)
	assert.Equal(t, "two again", two, "last write wins")

	skips := diags.Skips()
	require.Len(t, skips, 4)
	assert.Equal(t, Skip{Key: "pv_003", ID: 3, Reason: SkipDecodeError, Err: skips[0].Err}, skips[0])
	assert.Equal(t, SkipOverwritten, skips[1].Reason)
	assert.Equal(t, uint32(2), skips[1].ID)
	assert.Equal(t, SkipKeyPattern, skips[2].Reason)
	assert.Equal(t, SkipDecodeError, skips[3].Reason)
}

func TestBuild_ItemErrorWrappingEOFIsSkipped(t *testing.T) {
	t.Parallel()

	src := &fakeSource{items: []fakeItem{
		{key: "pv_001", err: fmt.Errorf("read chart: %w", io.EOF)},
		{key: "pv_002", rec: "two"},
	}}

	diags := &Diagnostics{}
	cat := Build[string](src, WithSkipSink(diags.Collect()))

	assert.Equal(t, []uint32{2}, cat.IDs())
	assert.Equal(t, 1, diags.Count(SkipDecodeError))
}

func TestBuild_MultipleSinksAreAllCalled(t *testing.T) {
	t.Parallel()

	src := &fakeSource{items: []fakeItem{{key: "x", rec: "r"}}}
	var a, b Diagnostics
	Build[string](src, WithSkipSink(a.Collect()), WithSkipSink(nil), WithSkipSink(b.Collect()))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestDecodeWith_OpenerCalledOnceWithNormalizedText(t *testing.T) {
	t.Parallel()

	calls := 0
	var seen string
	open := func(normalized string) (EntrySource[string], error) {
		calls++
		seen = normalized
		return &fakeSource{}, nil
	}

	cat, err := DecodeWith[string]("b=1\n# c\na=2\na=1", open)
	require.NoError(t, err)
	assert.Zero(t, cat.Len())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "a=1\nb=1", seen)
}

func TestDecodeWith_OpenerFailureIsFatal(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	open := func(string) (EntrySource[string], error) { return nil, boom }

	cat, err := DecodeWith[string]("a=1", open)
	assert.Nil(t, cat)
	assert.ErrorIs(t, err, ErrOpenDecoder)
	assert.ErrorIs(t, err, boom)
}

func TestParse_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pv_db.txt")
	require.NoError(t, os.WriteFile(path, []byte(pvdbtest.Entry("pv_003")+pvdbtest.Entry("pv_002")), 0o600))

	cat, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 3}, cat.IDs())
}

func TestParseFile_ReadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Parse(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrReadInput)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(bad, []byte("pv_001.song_name=caf\xe9\n"), 0o600))
	cat, err := ParseFile[MdataEntry](bad)
	assert.Nil(t, cat)
	assert.ErrorIs(t, err, ErrReadInput)
}
