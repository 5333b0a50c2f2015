// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover environment variables (MustSetenv, SetConfigHome), files and
// directories (MustChdir, MustWriteFile, MustMkdirAll), resource cleanup
// (MustClose, DeferClose) and a controllable clock (FakeClock). Fixture
// builders for pv_db text live in the pvdbtest subpackage.
package testutil
