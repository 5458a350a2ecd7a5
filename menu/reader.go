// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// reader.go - Contracts of the external line-editing collaborator.

package menu

// LineReader supplies interactive input lines. Implementations return
// io.EOF when the input stream closes; the loop treats that the same as
// an explicit one-level EndLoops.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// LineEditCapable is the optional capability of a LineReader to present
// a pre-filled single-line edit buffer, used by the line-editor command
// variants.
type LineEditCapable interface {
	Edit(prompt, initial string) (string, error)
}

// MenuCompleter is the optional capability of a LineReader to source
// tab completion from a menu. The loop re-points it at the active menu
// whenever a loop starts or a nested loop unwinds back.
type MenuCompleter interface {
	SetMenu(m *Menu)
}
