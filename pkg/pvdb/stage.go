// SPDX-License-Identifier: MPL-2.0

package pvdb

type (
	// OsageInit seeds cloth and hair physics from a motion frame.
	OsageInit struct {
		Motion string `json:"motion" mapstructure:"motion" divatree:"required"`
		Frame  int32  `json:"frame" mapstructure:"frame" divatree:"required"`
		Stage  string `json:"stage" mapstructure:"stage" divatree:"required"`
	}

	StageParam struct {
		Stage         *string `json:"stage,omitempty" mapstructure:"stage"`
		MhdID         *int32  `json:"mhd_id,omitempty" mapstructure:"mhd_id"`
		CollisionFile *string `json:"collision_file,omitempty" mapstructure:"collision_file"`
		WindFile      *string `json:"wind_file,omitempty" mapstructure:"wind_file"`
	}

	// Disp2D configures the 2D layers drawn over the PV.
	Disp2D struct {
		SetName              *string `json:"set_name,omitempty" mapstructure:"set_name"`
		TargetShadowType     *int32  `json:"target_shadow_type,omitempty" mapstructure:"target_shadow_type"`
		TitleStart2DField    *int32  `json:"title_start_2d_field,omitempty" mapstructure:"title_start_2d_field"`
		TitleEnd2DField      *int32  `json:"title_end_2d_field,omitempty" mapstructure:"title_end_2d_field"`
		TitleStart2DLowField *int32  `json:"title_start_2d_low_field,omitempty" mapstructure:"title_start_2d_low_field"`
		TitleEnd2DLowField   *int32  `json:"title_end_2d_low_field,omitempty" mapstructure:"title_end_2d_low_field"`
		TitleStart3DField    *int32  `json:"title_start_3d_field,omitempty" mapstructure:"title_start_3d_field"`
		TitleEnd3DField      *int32  `json:"title_end_3d_field,omitempty" mapstructure:"title_end_3d_field"`
		Title2DLayer         *string `json:"title_2d_layer,omitempty" mapstructure:"title_2d_layer"`
	}

	PVExpression struct {
		FileName *string `json:"file_name,omitempty" mapstructure:"file_name"`
	}
)
