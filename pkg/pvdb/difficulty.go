// SPDX-License-Identifier: MPL-2.0

package pvdb

type (
	// Difficulties groups the charts of a song by difficulty. Each difficulty
	// can carry several charts, such as the normal and extra extreme charts.
	Difficulties struct {
		Attribute *DifficultyAttribute `json:"attribute,omitempty" mapstructure:"attribute"`
		Easy      []Difficulty         `json:"easy,omitempty" mapstructure:"easy"`
		Normal    []Difficulty         `json:"normal,omitempty" mapstructure:"normal"`
		Hard      []Difficulty         `json:"hard,omitempty" mapstructure:"hard"`
		Extreme   []Difficulty         `json:"extreme,omitempty" mapstructure:"extreme"`
		Encore    []Difficulty         `json:"encore,omitempty" mapstructure:"encore"`
	}

	// Difficulty is a single chart.
	Difficulty struct {
		Presentation `mapstructure:",squash"`

		ScriptFileName string               `json:"script_file_name" mapstructure:"script_file_name" divatree:"required"`
		Attribute      *DifficultyAttribute `json:"attribute,omitempty" mapstructure:"attribute"`
		Edition        *int32               `json:"edition,omitempty" mapstructure:"edition"`
		IsPS4DLC       Flag                 `json:"is_ps4dlc,omitempty" mapstructure:"is_ps4dlc"`
		Level          *Level               `json:"level,omitempty" mapstructure:"level"`
		LevelSortIndex *int32               `json:"level_sort_index,omitempty" mapstructure:"level_sort_index"`
		Version        *int32               `json:"version,omitempty" mapstructure:"version"`
	}

	// DifficultyAttribute marks which variants of a chart exist.
	DifficultyAttribute struct {
		Original Flag `json:"original,omitempty" mapstructure:"original"`
		Extra    Flag `json:"extra,omitempty" mapstructure:"extra"`
		Slide    Flag `json:"slide,omitempty" mapstructure:"slide"`
	}
)

// Charts returns every chart of every difficulty in easy, normal, hard,
// extreme, encore order.
func (d *Difficulties) Charts() []Difficulty {
	if d == nil {
		return nil
	}
	var out []Difficulty
	for _, group := range [][]Difficulty{d.Easy, d.Normal, d.Hard, d.Extreme, d.Encore} {
		out = append(out, group...)
	}
	return out
}
