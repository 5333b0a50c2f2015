// SPDX-License-Identifier: MPL-2.0

package pvdb

type (
	// Entry is one song record of a base pv_db.txt file.
	Entry struct {
		EntryCommon `mapstructure:",squash"`

		SongNameEn      string `json:"song_name_en" mapstructure:"song_name_en" divatree:"required"`
		SongNameReading string `json:"song_name_reading" mapstructure:"song_name_reading" divatree:"required"`
		BPM             int32  `json:"bpm" mapstructure:"bpm" divatree:"required"`
		SongFileName    string `json:"song_file_name" mapstructure:"song_file_name" divatree:"required"`
		Date            int32  `json:"date" mapstructure:"date" divatree:"required"`
	}

	// MdataEntry is one song record of an mdata patch file. Patch files only
	// override what they change, so everything except the song name is optional.
	MdataEntry struct {
		EntryCommon `mapstructure:",squash"`

		SongNameEn      *string `json:"song_name_en,omitempty" mapstructure:"song_name_en"`
		SongNameReading *string `json:"song_name_reading,omitempty" mapstructure:"song_name_reading"`
		BPM             *int32  `json:"bpm,omitempty" mapstructure:"bpm"`
		SongFileName    *string `json:"song_file_name,omitempty" mapstructure:"song_file_name"`
		Date            *int32  `json:"date,omitempty" mapstructure:"date"`
	}

	// EntryCommon holds the fields both record schemas share.
	EntryCommon struct {
		Presentation `mapstructure:",squash"`

		SongName               string                `json:"song_name" mapstructure:"song_name" divatree:"required"`
		SongNameReadingEn      *string               `json:"song_name_reading_en,omitempty" mapstructure:"song_name_reading_en"`
		Difficulty             *Difficulties         `json:"difficulty,omitempty" mapstructure:"difficulty"`
		RemixParent            *int32                `json:"remix_parent,omitempty" mapstructure:"remix_parent"`
		Mdata                  *Mdata                `json:"mdata,omitempty" mapstructure:"mdata"`
		Lyric                  []string              `json:"lyric,omitempty" mapstructure:"lyric"`
		LyricEn                []string              `json:"lyric_en,omitempty" mapstructure:"lyric_en"`
		Sabi                   *Sabi                 `json:"sabi,omitempty" mapstructure:"sabi"`
		Edit                   *int32                `json:"edit,omitempty" mapstructure:"edit"`
		DisableCalcMotfrmLimit *Flag                 `json:"disable_calc_motfrm_limit,omitempty" mapstructure:"disable_calc_motfrm_limit"`
		Performers             []Performer           `json:"performer,omitempty" mapstructure:"performer"`
		ChrCam                 []ChrCam              `json:"chrcam,omitempty" mapstructure:"chrcam"`
		ChrMot                 []ChrMot              `json:"chrmot,omitempty" mapstructure:"chrmot"`
		ChrEff                 []ChrEff              `json:"chreff,omitempty" mapstructure:"chreff"`
		EyesXRotAdjust         Flag                  `json:"eyes_xrot_adjust,omitempty" mapstructure:"eyes_xrot_adjust"`
		IsOldPV                Flag                  `json:"is_old_pv,omitempty" mapstructure:"is_old_pv"`
		EyesBaseAdjustType     *EyesAdjust           `json:"eyes_base_adjust_type,omitempty" mapstructure:"eyes_base_adjust_type"`
		EyesRotRate            []EyesRotRate         `json:"eyes_rot_rate,omitempty" mapstructure:"eyes_rot_rate"`
		MovieList              []MovieList           `json:"movie_list,omitempty" mapstructure:"movie_list"`
		EffectSENameList       []string              `json:"effect_se_name_list,omitempty" mapstructure:"effect_se_name_list"`
		ExSong                 []ExSong              `json:"ex_song,omitempty" mapstructure:"ex_song"`
		OsageInit              []OsageInit           `json:"osage_init,omitempty" mapstructure:"osage_init"`
		StageParam             []StageParam          `json:"stage_param,omitempty" mapstructure:"stage_param"`
		Disp2D                 *Disp2D               `json:"disp2d,omitempty" mapstructure:"disp2d"`
		UseOsagePlayData       Flag                  `json:"use_osage_play_data,omitempty" mapstructure:"use_osage_play_data"`
		PVExpression           *PVExpression         `json:"pv_expression,omitempty" mapstructure:"pv_expression"`
		AnotherSong            []AnotherSong         `json:"another_song,omitempty" mapstructure:"another_song"`
		PrePlayScript          Flag                  `json:"pre_play_script,omitempty" mapstructure:"pre_play_script"`
		FrameTexture           *string               `json:"frame_texture,omitempty" mapstructure:"frame_texture"`
		FrameTextureA          *string               `json:"frame_texture_a,omitempty" mapstructure:"frame_texture_a"`
		FrameTextureB          *string               `json:"frame_texture_b,omitempty" mapstructure:"frame_texture_b"`
		FrameTextureC          *string               `json:"frame_texture_c,omitempty" mapstructure:"frame_texture_c"`
		FrameTextureD          *string               `json:"frame_texture_d,omitempty" mapstructure:"frame_texture_d"`
		FrameTextureE          *string               `json:"frame_texture_e,omitempty" mapstructure:"frame_texture_e"`
		FrameTextureType       *FrameTextureType     `json:"frame_texture_type,omitempty" mapstructure:"frame_texture_type"`
		FrameTextureAType      *FrameTextureType     `json:"frame_texture_a_type,omitempty" mapstructure:"frame_texture_a_type"`
		FrameTextureBType      *FrameTextureType     `json:"frame_texture_b_type,omitempty" mapstructure:"frame_texture_b_type"`
		FrameTextureCType      *FrameTextureType     `json:"frame_texture_c_type,omitempty" mapstructure:"frame_texture_c_type"`
		FrameTextureDType      *FrameTextureType     `json:"frame_texture_d_type,omitempty" mapstructure:"frame_texture_d_type"`
		FrameTextureEType      *FrameTextureType     `json:"frame_texture_e_type,omitempty" mapstructure:"frame_texture_e_type"`
		AuthReplaceByModule    []AuthReplaceByModule `json:"auth_replace_by_module,omitempty" mapstructure:"auth_replace_by_module"`
		Pack                   *int32                `json:"pack,omitempty" mapstructure:"pack"`
		RankBoardID            *int32                `json:"rank_board_id,omitempty" mapstructure:"rank_board_id"`
		ResolutionScale        *float32              `json:"resolution_scale,omitempty" mapstructure:"resolution_scale"`
		ResolutionScaleNeo     *float32              `json:"resolution_scale_neo,omitempty" mapstructure:"resolution_scale_neo"`
	}

	// Presentation holds the sound, motion and movie settings that can be set
	// both on a song and on each of its difficulty charts.
	Presentation struct {
		SEName                *string       `json:"se_name,omitempty" mapstructure:"se_name"`
		PVBranchSuccessSEName *string       `json:"pvbranch_success_se_name,omitempty" mapstructure:"pvbranch_success_se_name"`
		SlideName             *string       `json:"slide_name,omitempty" mapstructure:"slide_name"`
		ChainslideFirstName   *string       `json:"chainslide_first_name,omitempty" mapstructure:"chainslide_first_name"`
		ChainslideSubName     *string       `json:"chainslide_sub_name,omitempty" mapstructure:"chainslide_sub_name"`
		ChainslideSuccessName *string       `json:"chainslide_success_name,omitempty" mapstructure:"chainslide_success_name"`
		ChainslideFailureName *string       `json:"chainslide_failure_name,omitempty" mapstructure:"chainslide_failure_name"`
		SlidertouchName       *string       `json:"slidertouch_name,omitempty" mapstructure:"slidertouch_name"`
		Motion                []string      `json:"motion,omitempty" mapstructure:"motion"`
		Motion2P              []string      `json:"motion2P,omitempty" mapstructure:"motion2P"`
		Motion3P              []string      `json:"motion3P,omitempty" mapstructure:"motion3P"`
		Motion4P              []string      `json:"motion4P,omitempty" mapstructure:"motion4P"`
		Motion5P              []string      `json:"motion5P,omitempty" mapstructure:"motion5P"`
		Motion6P              []string      `json:"motion6P,omitempty" mapstructure:"motion6P"`
		NPR                   *NPR          `json:"npr,omitempty" mapstructure:"npr"`
		PVItem                []string      `json:"pv_item,omitempty" mapstructure:"pv_item"`
		HandItem              []string      `json:"hand_item,omitempty" mapstructure:"hand_item"`
		EditEffect            []string      `json:"edit_effect,omitempty" mapstructure:"edit_effect"`
		EditEffectLowField    []int32       `json:"edit_effect_low_field,omitempty" mapstructure:"edit_effect_low_field"`
		TitleImage            *TitleImage   `json:"title_image,omitempty" mapstructure:"title_image"`
		SongInfo              *SongInfo     `json:"songinfo,omitempty" mapstructure:"songinfo"`
		SongInfoEn            *SongInfo     `json:"songinfo_en,omitempty" mapstructure:"songinfo_en"`
		MovieFileName         *string       `json:"movie_file_name,omitempty" mapstructure:"movie_file_name"`
		MovieSurface          *MovieSurface `json:"movie_surface,omitempty" mapstructure:"movie_surface"`
		MoviePVType           *MoviePvType  `json:"movie_pv_type,omitempty" mapstructure:"movie_pv_type"`
		EffectSEFileName      *string       `json:"effect_se_file_name,omitempty" mapstructure:"effect_se_file_name"`
		HighSpeedRate         *float32      `json:"high_speed_rate,omitempty" mapstructure:"high_speed_rate"`
		HiddenTiming          *float32      `json:"hidden_timing,omitempty" mapstructure:"hidden_timing"`
		SuddenTiming          *float32      `json:"sudden_timing,omitempty" mapstructure:"sudden_timing"`
		EditCharaScale        Flag          `json:"edit_chara_scale,omitempty" mapstructure:"edit_chara_scale"`
	}

	// Mdata marks where a song's data was patched from.
	Mdata struct {
		Flag *int32  `json:"flag,omitempty" mapstructure:"flag"`
		Dir  *string `json:"dir,omitempty" mapstructure:"dir"`
	}

	// Sabi is the preview section of a song, in seconds.
	Sabi struct {
		StartTime *float32 `json:"start_time,omitempty" mapstructure:"start_time"`
		PlayTime  *float32 `json:"play_time,omitempty" mapstructure:"play_time"`
	}

	// NPR configures non-photorealistic rendering.
	NPR struct {
		CharaLightness float32 `json:"chara_lightness" mapstructure:"chara_lightness" divatree:"required"`
	}

	// TitleImage times the song title overlay.
	TitleImage struct {
		Time    *float32 `json:"time,omitempty" mapstructure:"time"`
		EndTime *float32 `json:"end_time,omitempty" mapstructure:"end_time"`
		AetName *string  `json:"aet_name,omitempty" mapstructure:"aet_name"`
	}

	// SongInfo lists the credits shown for a song.
	SongInfo struct {
		Music        *string  `json:"music,omitempty" mapstructure:"music"`
		Lyrics       *string  `json:"lyrics,omitempty" mapstructure:"lyrics"`
		Arranger     *string  `json:"arranger,omitempty" mapstructure:"arranger"`
		Manipulator  *string  `json:"manipulator,omitempty" mapstructure:"manipulator"`
		PVEditor     *string  `json:"pv_editor,omitempty" mapstructure:"pv_editor"`
		GuitarPlayer *string  `json:"guitar_player,omitempty" mapstructure:"guitar_player"`
		ExInfo       []ExInfo `json:"ex_info,omitempty" mapstructure:"ex_info"`
	}

	// ExInfo is an extra credit line.
	ExInfo struct {
		Key string `json:"key" mapstructure:"key" divatree:"required"`
		Val string `json:"val" mapstructure:"val" divatree:"required"`
	}

	// MovieList names one background movie file.
	MovieList struct {
		Name string `json:"name" mapstructure:"name" divatree:"required"`
	}
)
