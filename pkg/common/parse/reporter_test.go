/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorListRecordsInOrder(t *testing.T) {
	l := &ErrorList{}
	require.True(t, l.Empty())

	l.Report(1, "Unexpected character.")
	l.Report(3, "Unterminated string.")

	require.Equal(t, 2, l.Len())
	assert.False(t, l.Empty())
	assert.Equal(t, ScanError{Line: 1, Message: "Unexpected character."}, l.Errors()[0])
	assert.Equal(t, ScanError{Line: 3, Message: "Unterminated string."}, l.Errors()[1])
}

func TestReporterFunc(t *testing.T) {
	var gotLine int
	var gotMessage string

	var r Reporter = ReporterFunc(func(line int, message string) {
		gotLine = line
		gotMessage = message
	})
	r.Report(7, "Unexpected character.")

	assert.Equal(t, 7, gotLine)
	assert.Equal(t, "Unexpected character.", gotMessage)
}

func TestErrorListRecordsSpans(t *testing.T) {
	l := &ErrorList{}

	l.ReportAt(1, Location{Start: 4, End: 5}, "Unexpected character.")
	l.Report(2, "Unterminated string.")

	require.Equal(t, 2, l.Len())
	assert.Equal(t, Location{Start: 4, End: 5}, l.Errors()[0].Location)
	assert.Equal(t, Location{}, l.Errors()[1].Location)
}

func TestScanErrorFormat(t *testing.T) {
	e := ScanError{Line: 2, Message: "Unterminated string."}

	assert.Equal(t, "[line 2] Error: Unterminated string.", e.Error())
}

func TestScanErrorCaret(t *testing.T) {
	input := "var x = 1;\nvar @ = 2;"
	e := ScanError{Line: 2, Location: Location{Start: 15, End: 16}, Message: "Unexpected character."}

	want := "Scan error found on line 2:\nvar @ = 2;\n    ^ Unexpected character.\n"
	assert.Equal(t, want, e.FormatError(input))
}

func TestScanErrorCaretClampsToLine(t *testing.T) {
	// An unterminated string spans past its opening line; the marker must
	// stop at the line boundary.
	input := "\"ab\ncd"
	e := ScanError{Line: 2, Location: Location{Start: 0, End: 6}, Message: "Unterminated string."}

	want := "Scan error found on line 2:\n\"ab\n^~~ Unterminated string.\n"
	assert.Equal(t, want, e.FormatError(input))
}
