/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/rill-lang/rill/pkg/common/parse"
	"github.com/rill-lang/rill/pkg/scanner"
)

var (
	Command = &cobra.Command{
		Use:   "repl",
		Short: "Interactive prompt that tokenizes each entered line",

		Run: func(cmd *cobra.Command, args []string) {
			readlinePrompt()
		},
	}
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func keywordItems() []readline.PrefixCompleterInterface {
	items := []readline.PrefixCompleterInterface{}
	for _, word := range scanner.Keywords() {
		items = append(items, readline.PcItem(word))
	}
	return items
}

func readlinePrompt() {
	completer := readline.NewPrefixCompleter(keywordItems()...)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		// A scanner binds to a single input and is discarded after one
		// pass, so every line gets a fresh one.
		errs := &parse.ErrorList{}
		tokens := scanner.NewScanner(line, errs).ScanTokens()

		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
		for _, e := range errs.Errors() {
			fmt.Fprint(os.Stderr, e.FormatError(line))
		}
	}
}
