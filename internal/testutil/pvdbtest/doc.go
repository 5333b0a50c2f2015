// SPDX-License-Identifier: MPL-2.0

// Package pvdbtest builds pv_db fixture text for tests.
//
// Usage:
//
//	import "pvdb-cli/internal/testutil/pvdbtest"
//
//	text := pvdbtest.Text(
//	    pvdbtest.Entry("pv_001", pvdbtest.WithBPM(150)),
//	    pvdbtest.Entry("pv_002", pvdbtest.Without("date")),
//	)
package pvdbtest
