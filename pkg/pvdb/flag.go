// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Flag is a boolean stored as an integer. Only the value 1 is true; any
// other integer is false, and an absent field keeps the zero value false.
// A value that is not a 32-bit integer is rejected, which fails the
// record it belongs to.
//
// Use *Flag where absence must be told apart from an explicit 0.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	n, err := strconv.ParseInt(string(text), 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrInvalidFlag, text)
	}
	*f = n == 1
	return nil
}

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool { return bool(f) }

// UnmarshalJSON reads the JSON boolean a Flag is exported as.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	}
	*f = Flag(b)
	return nil
}
