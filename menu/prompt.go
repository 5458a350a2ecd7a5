// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Prompt rendering and structural inheritance.
//
// A sub-menu constructed without an explicit prompt inherits its
// parent's prompt as a value copy, never a live reference: mutating the
// parent's prompt afterwards does not change the child's. Passing the
// same Prompt instance to WithPrompt on several menus is the explicit
// shared-instance escape hatch.

package menu

import (
	"strings"
)

// Prompt renders the input prompt for a menu.
type Prompt interface {
	Render(m *Menu) string
}

// promptCloner is implemented by prompts with mutable state so that
// structural inheritance copies them instead of aliasing.
type promptCloner interface {
	ClonePrompt() Prompt
}

// StaticPrompt is a fixed prompt string, identical at every depth.
type StaticPrompt string

// Render returns the fixed prompt text.
func (p StaticPrompt) Render(*Menu) string { return string(p) }

// PathPrompt renders the path of menu names from the root down to the
// current menu, e.g. "(app>notes) ". Style, when set, wraps the
// rendered text (typically a lipgloss style's Render).
type PathPrompt struct {
	Prefix    string
	Separator string
	Suffix    string
	Style     func(string) string
}

// NewPathPrompt returns a PathPrompt with the default "(a>b) " shape.
func NewPathPrompt() *PathPrompt {
	return &PathPrompt{Prefix: "(", Separator: ">", Suffix: ") "}
}

// Render walks the parent chain and joins the menu names.
func (p *PathPrompt) Render(m *Menu) string {
	var path []string
	for node := m; node != nil; node = node.Parent() {
		path = append(path, node.Name())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	text := p.Prefix + strings.Join(path, p.Separator) + p.Suffix
	if p.Style != nil {
		return p.Style(text)
	}
	return text
}

// ClonePrompt returns an independent copy for structural inheritance.
func (p *PathPrompt) ClonePrompt() Prompt {
	clone := *p
	return &clone
}

// inheritPrompt derives a child prompt from the parent's: a copy for
// cloneable prompts, the value itself for immutable ones.
func inheritPrompt(parent Prompt) Prompt {
	if c, ok := parent.(promptCloner); ok {
		return c.ClonePrompt()
	}
	return parent
}
