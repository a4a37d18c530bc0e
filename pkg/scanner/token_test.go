/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import "testing"

func TestTokenTypeToString(t *testing.T) {
	for tok := TOK_EOF; tok <= TOK_WHILE; tok++ {
		if tok.ToString() == "TOK_UNKNOWN" {
			t.Errorf("token type %d has no name", tok)
		}
	}

	if TokenType(255).ToString() != "TOK_UNKNOWN" {
		t.Error("out-of-range types should stringify to TOK_UNKNOWN")
	}
}

func TestLookupKeyword(t *testing.T) {
	if LookupKeyword("or") != TOK_OR {
		t.Error("'or' should be a keyword")
	}
	if LookupKeyword("orchid") != TOK_IDENTIFIER {
		t.Error("'orchid' should fall back to TOK_IDENTIFIER")
	}
	if LookupKeyword("Or") != TOK_IDENTIFIER {
		t.Error("keyword lookup is case sensitive")
	}
}

func TestKeywords(t *testing.T) {
	words := Keywords()

	if len(words) != 16 {
		t.Errorf("wanted 16 reserved words, got %d", len(words))
	}
	for i := 1; i < len(words); i++ {
		if words[i-1] >= words[i] {
			t.Error("Keywords() should be sorted and free of duplicates")
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TOK_NUMBER, Lexeme: "2.5", Literal: 2.5, Line: 3}
	if tok.String() != `3 TOK_NUMBER "2.5" 2.5` {
		t.Error("unexpected token rendering:", tok.String())
	}

	tok = Token{Type: TOK_EOF, Line: 1}
	if tok.String() != `1 TOK_EOF ""` {
		t.Error("unexpected token rendering:", tok.String())
	}
}
