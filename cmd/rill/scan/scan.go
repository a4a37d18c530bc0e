/*
 * Copyright (c) 2024, The Rill Authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scan

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rill-lang/rill/pkg/common/parse"
	"github.com/rill-lang/rill/pkg/dump"
	"github.com/rill-lang/rill/pkg/scanner"
)

var (
	Command = &cobra.Command{
		Use:   "scan FILE",
		Short: "Tokenize a rill source file",
		Long: `Scan reads one rill source file and prints its token stream in the
chosen output format. Malformed input never stops the scan; every error is
printed to stderr and the process exits with status 65 so callers can
decide whether to run later stages.`,
		Args: cobra.ExactArgs(1),

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			format := viper.GetString("scan.format")
			if !dump.ValidFormat(format) {
				log.Fatal().Msg("unsupported output format")
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				log.Fatal().Err(errors.Wrap(err, "unable to read source file")).Send()
			}

			errs := &parse.ErrorList{}
			tokens := scanner.NewScanner(string(source), errs).ScanTokens()

			writer := dump.NewOutputWriter(os.Stdout, format)
			writer.Write(tokens)

			for _, e := range errs.Errors() {
				fmt.Fprint(os.Stderr, e.FormatError(string(source)))
			}

			log.Debug().Msgf("scanned %s tokens, %s errors",
				humanize.Comma(int64(len(tokens))), humanize.Comma(int64(errs.Len())))

			// The scan itself never fails; the exit status is how this
			// sink tells callers not to run the input.
			if !errs.Empty() {
				os.Exit(65)
			}
		},
	}
)

func init() {
	// Flags for this command
	Command.Flags().StringP("format", "o", "text", "Output format of tokens [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("scan.format", Command.Flags().Lookup("format"))
}
