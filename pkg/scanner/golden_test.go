/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/rill-lang/rill/pkg/common/parse"
)

// TestScanFiles scans every source file under test/scanning/input and
// compares the token stream (plus any reports) against its expectation
// file. Set SHOULD_REBASE to rewrite the expectations.
func TestScanFiles(t *testing.T) {
	testDirectory, err := filepath.Abs("../../test/scanning")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.rill", inputDirectory))
	if err != nil {
		t.Fatal(err)
	}
	if len(tests) == 0 {
		t.Fatal("no scanning fixtures found")
	}

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			source, err := os.ReadFile(test)
			if err != nil {
				t.Fatal(err)
			}

			errs := &parse.ErrorList{}
			tokens := NewScanner(string(source), errs).ScanTokens()

			var actual string
			for _, tok := range tokens {
				actual += tok.String() + "\n"
			}
			for _, e := range errs.Errors() {
				actual += e.Error() + "\n"
			}

			name := strings.TrimSuffix(filepath.Base(test), ".rill")
			expectation := path.Join(expectationDirectory, name+".txt")

			var expected string
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}
