// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "show", 4},
		{"show", "show", 0},
		{"shwo", "show", 2},
		{"globls", "globals", 1},
		{"window", "widow", 1},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := levenshtein(tt.b, tt.a); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d (reversed)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "show"}, {Name: "validate"}, {Name: "globals"}, {Name: "image"}}

	tests := map[string]string{
		"shwo":      "show",
		"valdiate":  "validate",
		"imgae":     "image",
		"zzzzzzzzz": "",
	}
	for input, want := range tests {
		if got := suggestCommand(input, commands); got != want {
			t.Errorf("suggestCommand(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("image", pflag.ContinueOnError)
	flagSet.String("size", "", "target size")
	flagSet.StringP("output", "o", "", "output file")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--sise", "64x64"}, "--size"},
		{[]string{"--size", "64x64", "--ouptut=x.png"}, "--output"},
		{[]string{"-o", "x.png", "--qqqqqqqqq"}, ""},
		{[]string{"--", "--sise"}, ""},
	}
	for _, tt := range tests {
		if got := suggestFlag(tt.args, flagSet); got != tt.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
