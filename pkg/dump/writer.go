/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package dump

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/rill-lang/rill/pkg/scanner"
)

// OutputWriter renders a scanned token sequence for human or machine
// consumption.
type OutputWriter interface {
	Write(tokens []scanner.Token)
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

// ValidFormat reports whether t names one of the output formats exactly.
func ValidFormat(t string) bool {
	switch t {
	case "csv", "json", "text":
		return true
	}
	return false
}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

type row struct {
	Line    int    `json:"line"`
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme"`
	Literal any    `json:"literal,omitempty"`
}

func headers() []string {
	return []string{"line", "type", "lexeme", "literal"}
}

func values(tokens []scanner.Token) [][]string {
	vals := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		literal := ""
		if tok.Literal != nil {
			literal = fmt.Sprintf("%v", tok.Literal)
		}
		vals = append(vals, []string{
			strconv.Itoa(tok.Line), tok.Type.ToString(), tok.Lexeme, literal,
		})
	}
	return vals
}

func (w CSVWriter) Write(tokens []scanner.Token) {
	wtr := csv.NewWriter(w.w)
	wtr.Write(headers())
	wtr.WriteAll(values(tokens))
}

func (w TextWriter) Write(tokens []scanner.Token) {
	table := tablewriter.NewWriter(w.w)
	table.SetHeader(headers())
	table.AppendBulk(values(tokens))
	table.Render()
}

func (w JSONWriter) Write(tokens []scanner.Token) {
	rows := make([]row, 0, len(tokens))
	for _, tok := range tokens {
		rows = append(rows, row{
			Line:    tok.Line,
			Type:    tok.Type.ToString(),
			Lexeme:  tok.Lexeme,
			Literal: tok.Literal,
		})
	}

	enc := json.NewEncoder(w.w)
	enc.Encode(rows)
}
