/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"sort"

	"github.com/rill-lang/rill/pkg/common/parse"
)

type TokenType int

const (
	TOK_EOF TokenType = iota

	// Single-character punctuation
	TOK_PAREN_L
	TOK_PAREN_R
	TOK_BRACE_L
	TOK_BRACE_R
	TOK_COMMA
	TOK_DOT
	TOK_MINUS
	TOK_PLUS
	TOK_SEMICOLON
	TOK_SLASH
	TOK_STAR

	// One or two character operators
	TOK_BANG
	TOK_BANG_EQ
	TOK_EQ
	TOK_EQ_EQ
	TOK_GREATER
	TOK_GREATER_EQ
	TOK_LESS
	TOK_LESS_EQ

	// Literals
	TOK_IDENTIFIER
	TOK_STRING
	TOK_NUMBER

	// Keywords
	TOK_AND
	TOK_CLASS
	TOK_ELSE
	TOK_FALSE
	TOK_FOR
	TOK_FUN
	TOK_IF
	TOK_NIL
	TOK_OR
	TOK_PRINT
	TOK_RETURN
	TOK_SUPER
	TOK_THIS
	TOK_TRUE
	TOK_VAR
	TOK_WHILE
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	case TOK_BRACE_L:
		return "TOK_BRACE_L"
	case TOK_BRACE_R:
		return "TOK_BRACE_R"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_DOT:
		return "TOK_DOT"
	case TOK_MINUS:
		return "TOK_MINUS"
	case TOK_PLUS:
		return "TOK_PLUS"
	case TOK_SEMICOLON:
		return "TOK_SEMICOLON"
	case TOK_SLASH:
		return "TOK_SLASH"
	case TOK_STAR:
		return "TOK_STAR"
	case TOK_BANG:
		return "TOK_BANG"
	case TOK_BANG_EQ:
		return "TOK_BANG_EQ"
	case TOK_EQ:
		return "TOK_EQ"
	case TOK_EQ_EQ:
		return "TOK_EQ_EQ"
	case TOK_GREATER:
		return "TOK_GREATER"
	case TOK_GREATER_EQ:
		return "TOK_GREATER_EQ"
	case TOK_LESS:
		return "TOK_LESS"
	case TOK_LESS_EQ:
		return "TOK_LESS_EQ"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_AND:
		return "TOK_AND"
	case TOK_CLASS:
		return "TOK_CLASS"
	case TOK_ELSE:
		return "TOK_ELSE"
	case TOK_FALSE:
		return "TOK_FALSE"
	case TOK_FOR:
		return "TOK_FOR"
	case TOK_FUN:
		return "TOK_FUN"
	case TOK_IF:
		return "TOK_IF"
	case TOK_NIL:
		return "TOK_NIL"
	case TOK_OR:
		return "TOK_OR"
	case TOK_PRINT:
		return "TOK_PRINT"
	case TOK_RETURN:
		return "TOK_RETURN"
	case TOK_SUPER:
		return "TOK_SUPER"
	case TOK_THIS:
		return "TOK_THIS"
	case TOK_TRUE:
		return "TOK_TRUE"
	case TOK_VAR:
		return "TOK_VAR"
	case TOK_WHILE:
		return "TOK_WHILE"
	}
	return "TOK_UNKNOWN"
}

// Token is one scanned unit of rill source. Lexeme is the source substring
// exactly as written. Literal carries the decoded payload for TOK_NUMBER
// (float64) and TOK_STRING (string) and is nil for every other type.
// Tokens are created by the scanner and never mutated.
type Token struct {
	Type     TokenType
	Lexeme   string
	Literal  any
	Line     int
	Location parse.Location
}

func (t Token) String() string {
	s := fmt.Sprintf("%d %s %q", t.Line, t.Type.ToString(), t.Lexeme)
	if t.Literal != nil {
		s += fmt.Sprintf(" %v", t.Literal)
	}
	return s
}

// keywords maps each reserved word to its token type. It is fixed at
// process start and only ever read, so any number of concurrent scans may
// consult it.
var keywords = map[string]TokenType{
	"and":    TOK_AND,
	"class":  TOK_CLASS,
	"else":   TOK_ELSE,
	"false":  TOK_FALSE,
	"for":    TOK_FOR,
	"fun":    TOK_FUN,
	"if":     TOK_IF,
	"nil":    TOK_NIL,
	"or":     TOK_OR,
	"print":  TOK_PRINT,
	"return": TOK_RETURN,
	"super":  TOK_SUPER,
	"this":   TOK_THIS,
	"true":   TOK_TRUE,
	"var":    TOK_VAR,
	"while":  TOK_WHILE,
}

// LookupKeyword classifies a fully-consumed identifier lexeme, defaulting
// to TOK_IDENTIFIER for anything that is not a reserved word.
func LookupKeyword(lexeme string) TokenType {
	if t, ok := keywords[lexeme]; ok {
		return t
	}
	return TOK_IDENTIFIER
}

// Keywords returns the reserved words of the language in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
