// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// builtin.go - Thin built-in command variants: help, exit, quit,
// resume.

package menu

import (
	"strings"
)

// HelpCommand shows the parent menu's help screen, or a named child's.
type HelpCommand struct {
	Base
}

// NewHelp registers a help command under parent.
func NewHelp(parent *Menu, name string) (*HelpCommand, error) {
	h := &HelpCommand{
		Base: NewBase(name, "Show this help screen, or help for a named command."),
	}
	if err := parent.Add(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Execute delegates to the parent menu's help renderer.
func (h *HelpCommand) Execute(args []string) Outcome {
	return h.Parent().Help(args)
}

// Complete offers the parent menu's child names for the first argument,
// with the same unique-match trimming the menu applies to command
// names.
func (h *HelpCommand) Complete(tokens []string, line, prefix string, begin, end int) []string {
	parent := h.Parent()
	if parent == nil || len(tokens) > 1 {
		return nil
	}
	if len(tokens) == 0 {
		return parent.Names()
	}
	if !strings.HasSuffix(line, tokens[0]) {
		return nil
	}
	matches := parent.Resolve(tokens[0])
	if len(matches) == 1 {
		return []string{trimForEditor(matches[0].Name(), tokens[0], prefix)}
	}
	names := make([]string, 0, len(matches))
	for _, c := range matches {
		names = append(names, c.Name())
	}
	return names
}

// ExitCommand ends the current menu's loop, returning to the parent
// menu (or ending the session at the root).
type ExitCommand struct {
	Base
}

// NewExit registers an exit command under parent.
func NewExit(parent *Menu, name string) (*ExitCommand, error) {
	e := &ExitCommand{
		Base: NewBase(name, "Exit this menu."),
	}
	if err := parent.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Execute unwinds exactly one loop.
func (e *ExitCommand) Execute(args []string) Outcome {
	return EndLoops(1)
}

// QuitCommand unwinds every nested menu loop, terminating the whole
// interactive session. It is the only path that ends the session from
// deep inside nested menus.
type QuitCommand struct {
	Base
}

// NewQuit registers a quit command under parent.
func NewQuit(parent *Menu, name string) (*QuitCommand, error) {
	q := &QuitCommand{
		Base: NewBase(name, "Quit the application."),
	}
	if err := parent.Add(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Execute unwinds everything.
func (q *QuitCommand) Execute(args []string) Outcome {
	return EndAllLoops()
}

// ResumeCommand continues automatic replay after an interactive pause
// in a test-mode loop. Outside a paused replay it is a no-op.
type ResumeCommand struct {
	Base
}

// NewResume registers a resume command under parent.
func NewResume(parent *Menu, name string) (*ResumeCommand, error) {
	r := &ResumeCommand{
		Base: NewBase(name, "Resume automatic test replay after a pause."),
	}
	if err := parent.Add(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Execute signals the enclosing replay loop to discard a pending pause.
func (r *ResumeCommand) Execute(args []string) Outcome {
	return ResumeReplay()
}
