// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/mustache"
)

var rootCmd = &cobra.Command{
	Use:   "stache",
	Short: "Mustache template tooling",
	Long:  `Stache inspects mustache templates, breaking them down into their lexical tokens`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		if debug {
			logger.SetLevel(logrus.DebugLevel)
		}

		colorFlag, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		switch colorFlag {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}

		return nil
	},
}

var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	mustache.SetLogger(logger)

	rootCmd.AddCommand(tokenizeCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("debug", false, "log lexer operations")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
