// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"go.mondoo.com/cnrestore/apps/cnrestore/cmd"
)

func main() {
	cmd.Execute()
}
