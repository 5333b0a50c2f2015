// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// Difficulty levels from 0 to 10 stars. LevelNone is an unset level.
	LevelNone Level = ""
	Level00_0 Level = "PV_LV_00_0"
	Level00_5 Level = "PV_LV_00_5"
	Level01_0 Level = "PV_LV_01_0"
	Level01_5 Level = "PV_LV_01_5"
	Level02_0 Level = "PV_LV_02_0"
	Level02_5 Level = "PV_LV_02_5"
	Level03_0 Level = "PV_LV_03_0"
	Level03_5 Level = "PV_LV_03_5"
	Level04_0 Level = "PV_LV_04_0"
	Level04_5 Level = "PV_LV_04_5"
	Level05_0 Level = "PV_LV_05_0"
	Level05_5 Level = "PV_LV_05_5"
	Level06_0 Level = "PV_LV_06_0"
	Level06_5 Level = "PV_LV_06_5"
	Level07_0 Level = "PV_LV_07_0"
	Level07_5 Level = "PV_LV_07_5"
	Level08_0 Level = "PV_LV_08_0"
	Level08_5 Level = "PV_LV_08_5"
	Level09_0 Level = "PV_LV_09_0"
	Level09_5 Level = "PV_LV_09_5"
	Level10_0 Level = "PV_LV_10_0"

	// Playable characters.
	CharaMiku   Chara = "MIK"
	CharaRin    Chara = "RIN"
	CharaLen    Chara = "LEN"
	CharaLuka   Chara = "LUK"
	CharaNeru   Chara = "NER"
	CharaHaku   Chara = "HAK"
	CharaKaito  Chara = "KAI"
	CharaMeiko  Chara = "MEI"
	CharaSakine Chara = "SAK"
	CharaTeto   Chara = "TET"
	CharaExtra  Chara = "EXT"

	// Performer slot types.
	PerformerVocal         PerformerType = "VOCAL"
	PerformerPseudoDefault PerformerType = "PSEUDO_DEFAULT"
	PerformerPseudoSame    PerformerType = "PSEUDO_SAME"
	PerformerPseudoSwim    PerformerType = "PSEUDO_SWIM"
	PerformerPseudoSwimS   PerformerType = "PSEUDO_SWIM_S"
	PerformerPseudoMyChara PerformerType = "PSEUDO_MY_CHARA"
	PerformerGuest         PerformerType = "GUEST"

	// Performer body scales.
	SizeNormal    PerformerSize = "NORMAL"
	SizePlayChara PerformerSize = "PLAY_CHARA"
	SizePvChara   PerformerSize = "PV_CHARA"
	SizeShort     PerformerSize = "SHORT"
	SizeTall      PerformerSize = "TALL"

	// Movie placements.
	MovieSurfaceBack  MovieSurface = "BACK"
	MovieSurfaceFront MovieSurface = "FRONT"

	// Movie and PV combinations.
	MoviePvOnly        MoviePvType = "ONLY"
	MoviePvAlternately MoviePvType = "ALTERNATELY"
	MoviePvParallel    MoviePvType = "PARALLEL"
	MoviePvEffect      MoviePvType = "EFFECT"

	// Character effect asset kinds.
	ChrEffAuth3D    ChrEffType = "AUTH3D"
	ChrEffAuth3DObj ChrEffType = "AUTH3D_OBJ"

	// Eye adjustment modes.
	EyesAdjustDirection EyesAdjust = "DIRECTION"
	EyesAdjustClearance EyesAdjust = "CLEARANCE"
	EyesAdjustOff       EyesAdjust = "OFF"

	// Frame texture capture stages.
	FrameTexturePrePP  FrameTextureType = "PRE_PP"
	FrameTexturePostPP FrameTextureType = "POST_PP"
	FrameTextureFB     FrameTextureType = "FB"
)

var (
	levels = []Level{
		Level00_0, Level00_5, Level01_0, Level01_5, Level02_0, Level02_5, Level03_0,
		Level03_5, Level04_0, Level04_5, Level05_0, Level05_5, Level06_0, Level06_5,
		Level07_0, Level07_5, Level08_0, Level08_5, Level09_0, Level09_5, Level10_0,
	}
	charas = []Chara{
		CharaMiku, CharaRin, CharaLen, CharaLuka, CharaNeru, CharaHaku,
		CharaKaito, CharaMeiko, CharaSakine, CharaTeto, CharaExtra,
	}
	performerTypes = []PerformerType{
		PerformerVocal, PerformerPseudoDefault, PerformerPseudoSame, PerformerPseudoSwim,
		PerformerPseudoSwimS, PerformerPseudoMyChara, PerformerGuest,
	}
	performerSizes    = []PerformerSize{SizeNormal, SizePlayChara, SizePvChara, SizeShort, SizeTall}
	movieSurfaces     = []MovieSurface{MovieSurfaceBack, MovieSurfaceFront}
	moviePvTypes      = []MoviePvType{MoviePvOnly, MoviePvAlternately, MoviePvParallel, MoviePvEffect}
	chrEffTypes       = []ChrEffType{ChrEffAuth3D, ChrEffAuth3DObj}
	eyesAdjusts       = []EyesAdjust{EyesAdjustDirection, EyesAdjustClearance, EyesAdjustOff}
	frameTextureTypes = []FrameTextureType{FrameTexturePrePP, FrameTexturePostPP, FrameTextureFB}
)

type (
	// Level is a chart difficulty rating in half-star steps.
	Level string

	// Chara names a playable character.
	Chara string

	// PerformerType describes how a performer slot is filled.
	PerformerType string

	// PerformerSize selects the body scale of a performer.
	PerformerSize string

	// MovieSurface places a background movie behind or in front of the stage.
	MovieSurface string

	// MoviePvType selects how a movie is combined with the 3D PV.
	MoviePvType string

	// ChrEffType is the kind of asset a character effect refers to.
	ChrEffType string

	// EyesAdjust selects the eye adjustment mode.
	EyesAdjust string

	// FrameTextureType selects the render stage a frame texture is captured at.
	FrameTextureType string
)

// parseEnum sets *dst to text when it is one of valid.
func parseEnum[E ~string](kind string, valid []E, text []byte, dst *E) error {
	v := E(text)
	if !slices.Contains(valid, v) {
		return &InvalidEnumError{Kind: kind, Value: string(text)}
	}
	*dst = v
	return nil
}

// Stars returns the rating as a number of stars, such as 7.5 for PV_LV_07_5.
// It returns 0 for an unknown level.
func (l Level) Stars() float64 {
	rest, ok := strings.CutPrefix(string(l), "PV_LV_")
	if !ok {
		return 0
	}
	stars, err := strconv.ParseFloat(strings.Replace(rest, "_", ".", 1), 64)
	if err != nil {
		return 0
	}
	return stars
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error { return parseEnum("level", levels, text, l) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Chara) UnmarshalText(text []byte) error { return parseEnum("chara", charas, text, c) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *PerformerType) UnmarshalText(text []byte) error {
	return parseEnum("performer type", performerTypes, text, t)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PerformerSize) UnmarshalText(text []byte) error {
	return parseEnum("performer size", performerSizes, text, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MovieSurface) UnmarshalText(text []byte) error {
	return parseEnum("movie surface", movieSurfaces, text, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *MoviePvType) UnmarshalText(text []byte) error {
	return parseEnum("movie pv type", moviePvTypes, text, t)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ChrEffType) UnmarshalText(text []byte) error {
	return parseEnum("chreff type", chrEffTypes, text, t)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *EyesAdjust) UnmarshalText(text []byte) error {
	return parseEnum("eyes adjust", eyesAdjusts, text, a)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FrameTextureType) UnmarshalText(text []byte) error {
	return parseEnum("frame texture type", frameTextureTypes, text, t)
}
