/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// ScanError is one malformed-input report from a scan. Reports never stop
// the scan; they are collected and surfaced after the pass completes.
// Location spans the offending input when the sink captured it.
type ScanError struct {
	Line     int
	Location Location
	Message  string
}

func (e ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// FormatError renders the source line containing the error with a caret
// under the offending span. input must be the same source text the scan
// ran over.
func (e ScanError) FormatError(input string) string {
	start := e.Location.Start
	if start > len(input) {
		start = len(input)
	}

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[lineStart:], '\n')
	if lineEnd == -1 {
		lineEnd = len(input)
	} else {
		lineEnd += lineStart
	}

	// A span may run past the offending line (an unterminated multiline
	// string); the marker stops at the line boundary.
	end := e.Location.End
	if end > lineEnd {
		end = lineEnd
	}

	repeat := end - start - 1
	if repeat < 0 {
		repeat = 0
	}

	errorString := fmt.Sprintf("Scan error found on line %d:\n", e.Line)
	errorString += input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", start-lineStart), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", e.Message)
	return errorString
}
