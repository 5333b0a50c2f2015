// SPDX-License-Identifier: MPL-2.0

package pvdb

import (
	"strconv"
	"strings"
)

// DefaultPrefix is the literal that precedes the identifier in a record key.
const DefaultPrefix = "pv_"

// ExtractIdentifier returns the identifier encoded in key. The key must be
// prefix followed by one or more decimal digits whose value fits in a
// uint32. Signs, whitespace and any other characters are rejected.
func ExtractIdentifier(prefix, key string) (uint32, bool) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseUint(rest, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}
