// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlag_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Flag
		wantErr bool
	}{
		{input: "1", want: true},
		{input: "0", want: false},
		{input: "2", want: false},
		{input: "-1", want: false},
		{input: "01", want: true},
		{input: "true", wantErr: true},
		{input: "", wantErr: true},
		{input: " 1", wantErr: true},
		{input: "1.0", wantErr: true},
		{input: "4294967297", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			var f Flag
			err := f.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFlag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
			assert.Equal(t, bool(tt.want), f.Bool())
		})
	}
}

func TestFlag_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	type holder struct {
		On  Flag  `json:"on"`
		Opt *Flag `json:"opt"`
	}
	on := Flag(true)
	data, err := json.Marshal(holder{On: true, Opt: &on})
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":true,"opt":true}`, string(data))

	var back holder
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Flag(true), back.On)
	require.NotNil(t, back.Opt)
	assert.Equal(t, Flag(true), *back.Opt)

	assert.Error(t, json.Unmarshal([]byte(`{"on":"yes"}`), &back))
}
