// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lineedit adapts github.com/peterh/liner to the menu engine's
// collaborator contracts: it is the interactive line source
// (menu.LineReader), the pre-filled single-line edit buffer
// (menu.LineEditCapable), and the tab-completion surface
// (menu.MenuCompleter).
//
// The adapter owns the editor-side word boundary rules. They
// deliberately differ from the tokenizer's: a hyphen is part of a
// command name, so only whitespace delimits the word being completed,
// and the menu completer corrects candidates for the difference.
package lineedit
