// SPDX-License-Identifier: MPL-2.0

package pvdb

type (
	// Performer is one character slot of a PV.
	Performer struct {
		Type         *PerformerType `json:"type,omitempty" mapstructure:"type"`
		Chara        *Chara         `json:"chara,omitempty" mapstructure:"chara"`
		Costume      *int32         `json:"costume,omitempty" mapstructure:"costume"`
		PVCostume    *int32         `json:"pv_costume,omitempty" mapstructure:"pv_costume"`
		Fixed        Flag           `json:"fixed,omitempty" mapstructure:"fixed"`
		PseudoSameID *int32         `json:"pseudo_same_id,omitempty" mapstructure:"pseudo_same_id"`
		Exclude      *int32         `json:"exclude,omitempty" mapstructure:"exclude"`
		Size         *PerformerSize `json:"size,omitempty" mapstructure:"size"`
		ItemZujo     *int32         `json:"item_zujo,omitempty" mapstructure:"item_zujo"`
		ItemFace     *int32         `json:"item_face,omitempty" mapstructure:"item_face"`
		ItemNeck     *int32         `json:"item_neck,omitempty" mapstructure:"item_neck"`
		ItemBack     *int32         `json:"item_back,omitempty" mapstructure:"item_back"`
	}

	// ChrCam replaces a character's camera animation.
	ChrCam struct {
		ID      *int32  `json:"id,omitempty" mapstructure:"id"`
		Chara   *Chara  `json:"chara,omitempty" mapstructure:"chara"`
		OrgName *string `json:"org_name,omitempty" mapstructure:"org_name"`
		Name    *string `json:"name,omitempty" mapstructure:"name"`
	}

	// ChrMot replaces a character's motion.
	ChrMot struct {
		ID      *int32  `json:"id,omitempty" mapstructure:"id"`
		Chara   *Chara  `json:"chara,omitempty" mapstructure:"chara"`
		OrgName *string `json:"org_name,omitempty" mapstructure:"org_name"`
		Name    *string `json:"name,omitempty" mapstructure:"name"`
	}

	// ChrEff attaches effects to a character.
	ChrEff struct {
		ID   *int32       `json:"id,omitempty" mapstructure:"id"`
		Name *Chara       `json:"name,omitempty" mapstructure:"name"`
		Data []ChrEffData `json:"data,omitempty" mapstructure:"data"`
	}

	ChrEffData struct {
		Type *ChrEffType `json:"type,omitempty" mapstructure:"type"`
		Name *string     `json:"name,omitempty" mapstructure:"name"`
	}

	// EyesRotRate scales the eye rotation of a character.
	EyesRotRate struct {
		Chara  Chara   `json:"chara" mapstructure:"chara" divatree:"required"`
		XPRate float32 `json:"xp_rate" mapstructure:"xp_rate" divatree:"required"`
		XNRate float32 `json:"xn_rate" mapstructure:"xn_rate" divatree:"required"`
	}

	// ExSong is an alternative vocal track selected by the performing characters.
	ExSong struct {
		Chara  Chara    `json:"chara" mapstructure:"chara" divatree:"required"`
		Chara2 *Chara   `json:"chara2,omitempty" mapstructure:"chara2"`
		Chara3 *Chara   `json:"chara3,omitempty" mapstructure:"chara3"`
		Chara4 *Chara   `json:"chara4,omitempty" mapstructure:"chara4"`
		Chara5 *Chara   `json:"chara5,omitempty" mapstructure:"chara5"`
		Chara6 *Chara   `json:"chara6,omitempty" mapstructure:"chara6"`
		File   string   `json:"file" mapstructure:"file" divatree:"required"`
		Name   *string  `json:"name,omitempty" mapstructure:"name"`
		NameEn *string  `json:"name_en,omitempty" mapstructure:"name_en"`
		ExAuth []ExAuth `json:"ex_auth,omitempty" mapstructure:"ex_auth"`
	}

	ExAuth struct {
		OrgName string `json:"org_name" mapstructure:"org_name" divatree:"required"`
		Name    string `json:"name" mapstructure:"name" divatree:"required"`
	}

	// AnotherSong is an alternative song file the player can switch to.
	AnotherSong struct {
		Name            *string `json:"name,omitempty" mapstructure:"name"`
		NameEn          *string `json:"name_en,omitempty" mapstructure:"name_en"`
		SongFileName    *string `json:"song_file_name,omitempty" mapstructure:"song_file_name"`
		VocalDispName   *string `json:"vocal_disp_name,omitempty" mapstructure:"vocal_disp_name"`
		VocalDispNameEn *string `json:"vocal_disp_name_en,omitempty" mapstructure:"vocal_disp_name_en"`
		VocalCharaNum   *int32  `json:"vocal_chara_num,omitempty" mapstructure:"vocal_chara_num"`
	}

	// AuthReplaceByModule swaps an animation when a given module is worn.
	AuthReplaceByModule struct {
		ID       *int32  `json:"id,omitempty" mapstructure:"id"`
		ModuleID *int32  `json:"module_id,omitempty" mapstructure:"module_id"`
		OrgName  *string `json:"org_name,omitempty" mapstructure:"org_name"`
		Name     *string `json:"name,omitempty" mapstructure:"name"`
	}
)
