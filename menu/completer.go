// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// completer.go - Bridge between an external line editor's completion
// hook and the menu tree.
//
// The tokenizer decides which prefix is being completed, not the line
// editor: the two disagree about word boundaries (a hyphen is part of a
// command name here, while most editors treat it as a delimiter), so a
// unique match is trimmed to the slice the editor will actually
// replace. See trimForEditor.

package menu

// Completer resolves an in-progress line to completion candidates by
// recursive delegation through the active menu. The active menu is
// re-pointed by the input loop as nested loops start and unwind.
type Completer struct {
	menu *Menu
}

// NewCompleter returns a completer initially bound to m (which may be
// nil until a loop starts).
func NewCompleter(m *Menu) *Completer {
	return &Completer{menu: m}
}

// SetMenu re-points completion at the given menu.
func (c *Completer) SetMenu(m *Menu) {
	c.menu = m
}

// Menu returns the menu completion is currently sourced from.
func (c *Completer) Menu() *Menu {
	return c.menu
}

// Complete returns the candidates for the line up to the cursor. prefix
// is the word the editor considers in progress, delimited by begin and
// end within the line. A line that fails to tokenize yields no
// candidates. The result is a concrete slice; callers may index it
// positionally.
func (c *Completer) Complete(line, prefix string, begin, end int) []string {
	if c.menu == nil {
		return nil
	}
	tokens, err := Split(line)
	if err != nil {
		return nil
	}
	return c.menu.Complete(tokens, line, prefix, begin, end)
}
