// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"gitlab.com/fisherprime/mustache"
	"gitlab.com/fisherprime/mustache/lexer"
)

// TokenOutput is the JSON representation of a token.
type TokenOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
}

// TemplateOutput is the JSON representation of a tokenized template.
type TemplateOutput struct {
	Name   string        `json:"name"`
	Tokens []TokenOutput `json:"tokens"`
}

var (
	textColor   = color.New(color.FgWhite)
	delimColor  = color.New(color.FgCyan, color.Bold)
	markerColor = color.New(color.FgYellow, color.Bold)
	idColor     = color.New(color.FgGreen)
	headerColor = color.New(color.FgBlue, color.Bold)
)

// kindColor selects the color for an item kind.
func kindColor(id lexer.ItemID) *color.Color {
	switch id {
	case lexer.ItemText:
		return textColor
	case lexer.ItemLMustache, lexer.ItemRMustache:
		return delimColor
	case lexer.ItemIdentifier:
		return idColor
	default:
		return markerColor
	}
}

// formatPretty prints tokens in a human readable format.
func formatPretty(w io.Writer, names []string, results map[string]mustache.Tokens) error {
	for _, name := range names {
		if len(names) > 1 {
			if _, err := headerColor.Fprintf(w, "==> %s <==\n", name); err != nil {
				return err
			}
		}

		for index, item := range results[name] {
			line := fmt.Sprintf("%3d: %s", index+1, kindColor(item.ID).Sprintf("%-12s", item.ID))
			if item.ID == lexer.ItemText || item.ID == lexer.ItemIdentifier {
				line += fmt.Sprintf(" %q", item.Val)
			}

			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

// formatJSON prints tokens in JSON format.
func formatJSON(w io.Writer, names []string, results map[string]mustache.Tokens) error {
	output := make([]TemplateOutput, 0, len(names))
	for _, name := range names {
		tokens := results[name]

		tpl := TemplateOutput{Name: name, Tokens: make([]TokenOutput, len(tokens))}
		for index, item := range tokens {
			tpl.Tokens[index] = TokenOutput{Kind: item.ID.String(), Text: item.Val}
		}
		output = append(output, tpl)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(output)
}
