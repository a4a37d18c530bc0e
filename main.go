/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"github.com/rill-lang/rill/cmd/rill"
)

func main() {
	rill.Execute()
}
