// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr error
	}{
		{
			name:    "custom delimiters",
			content: "open_delim = \"<%\"\nclose_delim = \"%>\"\nstrict = false\ndebug = true\n",
			want:    Config{OpenDelim: "<%", CloseDelim: "%>", Debug: true},
		},
		{
			name:    "defaults",
			content: "debug = false\n",
			want:    Config{OpenDelim: DefaultOpenDelim, CloseDelim: DefaultCloseDelim, Strict: true},
		},
		{
			name:    "empty delimiter",
			content: "open_delim = \"\"\n",
			want:    Config{OpenDelim: DefaultOpenDelim, CloseDelim: DefaultCloseDelim, Strict: true},
		},
		{
			name:    "unknown field",
			content: "splitter = \",\"\n",
			wantErr: ErrUnknownFields,
		},
		{
			name:    "invalid TOML",
			content: "open_delim = \n",
			wantErr: ErrLoadConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lexer.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := LoadConfig(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}

			if got.Logger == nil {
				t.Errorf("LoadConfig() Logger = nil")
			}
			got.Logger = nil
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("LoadConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoadConfig_missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); !errors.Is(err, ErrLoadConfig) {
		t.Errorf("LoadConfig() error = %v, wantErr %v", err, ErrLoadConfig)
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{OpenDelim: "<%", Strict: false}

	l := New(cfg.Options(strings.NewReader("a<%b}}"))...)
	if openDelim, closeDelim := l.Delimiters(); openDelim != "<%" || closeDelim != DefaultCloseDelim {
		t.Errorf("Lexer.Delimiters() = %q, %q, want \"<%%\", %q", openDelim, closeDelim, DefaultCloseDelim)
	}
	if l.Strict() {
		t.Errorf("Lexer.Strict() = true, want false")
	}
	if l.Logger() != cfg.Logger {
		t.Errorf("Lexer.Logger() differs from Config.Logger")
	}

	got, err := collect(l)
	want := []Item{Text("a"), lMustache, Identifier("b"), rMustache}
	if err != nil || !reflect.DeepEqual(got, want) {
		t.Errorf("Lexer.Next() = %v, %v, want %v", got, err, want)
	}
}
