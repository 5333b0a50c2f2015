// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetConfigHome points the platform's home and config directory variables
// at dir and returns a cleanup function restoring them. Afterwards
// config.ConfigDir resolves below dir on every platform except macOS, which
// derives it from the home directory alone.
//
//	t.Cleanup(testutil.SetConfigHome(t, t.TempDir()))
func SetConfigHome(t testing.TB, dir string) func() {
	t.Helper()

	var cleanups []func()
	switch runtime.GOOS {
	case "windows":
		cleanups = append(cleanups,
			MustSetenv(t, "USERPROFILE", dir),
			MustSetenv(t, "APPDATA", dir),
		)
	default:
		cleanups = append(cleanups,
			MustSetenv(t, "HOME", dir),
			MustSetenv(t, "XDG_CONFIG_HOME", dir),
		)
	}

	return func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
}
