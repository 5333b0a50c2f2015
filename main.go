// SPDX-License-Identifier: MPL-2.0

// Command pvdb decodes Project DIVA pv_db song databases.
package main

import cmd "pvdb-cli/cmd/pvdb"

func main() {
	cmd.Execute()
}
