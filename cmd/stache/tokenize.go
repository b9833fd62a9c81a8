// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/mustache"
	"gitlab.com/fisherprime/mustache/lexer"
)

const stdinName = "-"

var tokenizeCmd = &cobra.Command{
	Use:          "tokenize [flags] [file.mustache...]",
	Short:        "Tokenize mustache templates",
	Long:         `Tokenize breaks down mustache templates, or stdin when no file is named, into their tokens`,
	SilenceUsage: true,
	RunE:         runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("open", lexer.DefaultOpenDelim, "open delimiter")
	tokenizeCmd.Flags().String("close", lexer.DefaultCloseDelim, "close delimiter")
	tokenizeCmd.Flags().String("config", "", "TOML lexer configuration file")
	tokenizeCmd.Flags().Bool("compat", false, "end the token stream silently on malformed tags")
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("workers", 0, "concurrent tokenizers (0 for GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) (err error) {
	cfg, err := tokenizeConfig(cmd)
	if err != nil {
		return
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return fmt.Errorf("failed to get workers flag: %w", err)
	}

	sources, names, err := readSources(cmd.InOrStdin(), args)
	if err != nil {
		return
	}

	results, tErr := mustache.TokenizeAll(cmd.Context(), sources, workers, cfg.Options(nil)...)

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = formatPretty(out, names, results)
	case "json":
		err = formatJSON(out, names, results)
	default:
		err = fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return
	}

	return tErr
}

// tokenizeConfig merges the config file with the explicitly set flags.
func tokenizeConfig(cmd *cobra.Command) (cfg *lexer.Config, err error) {
	flags := cmd.Flags()

	cfg = lexer.DefaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		if cfg, err = lexer.LoadConfig(path); err != nil {
			return
		}
	}
	cfg.Logger = logger

	if flags.Changed("open") {
		cfg.OpenDelim, _ = flags.GetString("open")
	}
	if flags.Changed("close") {
		cfg.CloseDelim, _ = flags.GetString("close")
	}
	if flags.Changed("compat") {
		compat, _ := flags.GetBool("compat")
		cfg.Strict = !compat
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Debug = true
	}
	cfg.Validate()

	return
}

// readSources loads the named templates, stdin when none is named.
func readSources(stdin io.Reader, args []string) (sources map[string]io.RuneReader, names []string, err error) {
	sources = make(map[string]io.RuneReader, len(args))

	if len(args) < 1 {
		sources[stdinName] = bufio.NewReader(stdin)
		names = []string{stdinName}

		return
	}

	for _, path := range args {
		if _, ok := sources[path]; ok {
			continue
		}

		var content []byte
		if content, err = os.ReadFile(path); err != nil {
			err = fmt.Errorf("failed to read template: %w", err)
			return
		}

		sources[path] = strings.NewReader(string(content))
		names = append(names, path)
	}

	return
}
