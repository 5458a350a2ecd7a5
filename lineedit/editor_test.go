// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineedit

import (
	"testing"
)

// TestWordStart tests the editor-side word boundary: whitespace only,
// punctuation stays inside the word.
func TestWordStart(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{line: "", want: 0},
		{line: "remote", want: 0},
		{line: "remote ", want: 7},
		{line: "remote pu", want: 7},
		{line: "remote\tpu", want: 7},
		{line: "deploy --dry", want: 7},
		{line: "unset-all", want: 0},
	}

	for _, tt := range tests {
		if got := wordStart(tt.line); got != tt.want {
			t.Errorf("wordStart(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
