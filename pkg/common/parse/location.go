/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// Location is a half-open byte span [Start, End) into the scanned source.
type Location struct {
	Start int
	End   int
}
