/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

// Reporter receives malformed-input reports during a scan. A report is an
// observation only: the scanner keeps going, and whether accumulated
// reports should block later stages is the caller's decision.
type Reporter interface {
	Report(line int, message string)
}

// LocationReporter is an optional extension of Reporter for sinks that
// also want the byte span of the offending input, so diagnostics can be
// rendered with a caret.
type LocationReporter interface {
	Reporter
	ReportAt(line int, loc Location, message string)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(line int, message string)

func (f ReporterFunc) Report(line int, message string) {
	f(line, message)
}

// ErrorList is a Reporter that records every report in arrival order.
// An ErrorList belongs to a single scan; it is not safe for concurrent use.
type ErrorList struct {
	errors []ScanError
}

func (l *ErrorList) Report(line int, message string) {
	l.errors = append(l.errors, ScanError{Line: line, Message: message})
}

func (l *ErrorList) ReportAt(line int, loc Location, message string) {
	l.errors = append(l.errors, ScanError{Line: line, Location: loc, Message: message})
}

// Errors returns the recorded reports in source order.
func (l *ErrorList) Errors() []ScanError {
	return l.errors
}

func (l *ErrorList) Len() int {
	return len(l.errors)
}

func (l *ErrorList) Empty() bool {
	return len(l.errors) == 0
}
