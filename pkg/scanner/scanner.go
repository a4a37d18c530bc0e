/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strconv"

	"github.com/rill-lang/rill/pkg/common/parse"
)

// Scanner turns rill source text into a flat, EOF-terminated token
// sequence in one synchronous pass.
//
// The cursor is byte-indexed: classification only recognizes 7-bit ASCII,
// and every byte of a multi-byte UTF-8 sequence falls through to the
// unexpected-character report. Malformed input is reported through the
// Reporter and skipped, never fatal.
//
// A Scanner binds to one immutable input and is single-use: construct,
// call ScanTokens once, discard.
type Scanner struct {
	source   string
	reporter parse.Reporter

	tokens  []Token
	start   int
	current int
	line    int
}

func NewScanner(source string, reporter parse.Reporter) *Scanner {
	return &Scanner{source: source, reporter: reporter, line: 1}
}

// ScanTokens consumes the entire input and returns the token sequence.
// The result always covers the whole source and ends with exactly one
// TOK_EOF, no matter how many errors were reported along the way.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{
		Type:     TOK_EOF,
		Line:     s.line,
		Location: parse.Location{Start: len(s.source), End: len(s.source)},
	})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.emit(TOK_PAREN_L)
	case ')':
		s.emit(TOK_PAREN_R)
	case '{':
		s.emit(TOK_BRACE_L)
	case '}':
		s.emit(TOK_BRACE_R)
	case ',':
		s.emit(TOK_COMMA)
	case '.':
		s.emit(TOK_DOT)
	case '-':
		s.emit(TOK_MINUS)
	case '+':
		s.emit(TOK_PLUS)
	case ';':
		s.emit(TOK_SEMICOLON)
	case '*':
		s.emit(TOK_STAR)

	case '!':
		if s.match('=') {
			s.emit(TOK_BANG_EQ)
		} else {
			s.emit(TOK_BANG)
		}
	case '=':
		if s.match('=') {
			s.emit(TOK_EQ_EQ)
		} else {
			s.emit(TOK_EQ)
		}
	case '<':
		if s.match('=') {
			s.emit(TOK_LESS_EQ)
		} else {
			s.emit(TOK_LESS)
		}
	case '>':
		if s.match('=') {
			s.emit(TOK_GREATER_EQ)
		} else {
			s.emit(TOK_GREATER)
		}

	case '/':
		if s.match('/') {
			// A comment runs up to the newline, which is left unconsumed
			// so the line counter stays correct.
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.emit(TOK_SLASH)
		}

	case ' ', '\r', '\t':

	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.report("Unexpected character.")
		}
	}
}

// scanString consumes a string literal, the opening quote already read.
//
// Grammar:
//
//	string = DQUOTE *(any byte except DQUOTE) DQUOTE
//
// Strings may span lines; embedded newlines count toward the line number.
// There is no escape processing: the literal is the raw text between the
// quotes.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.report("Unterminated string.")
		return
	}

	// Closing quote
	s.advance()

	s.emitLiteral(TOK_STRING, s.source[s.start+1:s.current-1])
}

// scanNumber consumes a number literal, the first digit already read.
//
// Grammar:
//
//	number = 1*DIGIT ["." 1*DIGIT]
//
// A trailing '.' with no digit after it is not part of the number; it is
// left for the next token.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.emitLiteral(TOK_NUMBER, value)
}

// scanIdentifier consumes an identifier or keyword, the first byte already
// read.
//
// Grammar:
//
//	identifier = (ALPHA / "_") *(ALPHA / DIGIT / "_")
//
// Keyword lookup happens only after the maximal run is consumed, so an
// identifier that merely starts with a reserved word stays an identifier.
func (s *Scanner) scanIdentifier() {
	for isAlphanumeric(s.peek()) {
		s.advance()
	}

	s.emit(LookupKeyword(s.source[s.start:s.current]))
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// advance consumes and returns the next byte. Only called when not at end
// of input.
func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// peek looks at the next unread byte without consuming it, returning NUL
// past the end of input.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// match consumes the next byte only if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) emit(t TokenType) {
	s.emitLiteral(t, nil)
}

// emitLiteral appends a token whose lexeme is the substring between the
// start and current cursor offsets, stamped with the current line.
func (s *Scanner) emitLiteral(t TokenType, literal any) {
	s.tokens = append(s.tokens, Token{
		Type:     t,
		Lexeme:   s.source[s.start:s.current],
		Literal:  literal,
		Line:     s.line,
		Location: parse.Location{Start: s.start, End: s.current},
	})
}

// report hands a malformed span to the reporter and keeps scanning. Sinks
// that understand locations get the byte span for caret rendering.
func (s *Scanner) report(message string) {
	loc := parse.Location{Start: s.start, End: s.current}
	switch r := s.reporter.(type) {
	case nil:
	case parse.LocationReporter:
		r.ReportAt(s.line, loc, message)
	default:
		s.reporter.Report(s.line, message)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
