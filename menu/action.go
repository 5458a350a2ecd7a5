// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

// ActionFunc is the body of an Action command.
type ActionFunc func(args []string) Outcome

// Action is a command that executes a caller-supplied function.
type Action struct {
	Base
	fn ActionFunc
}

// NewAction registers a function-executing command under parent. The
// help text is always an explicit literal; the short help is derived
// from its first line.
func NewAction(parent *Menu, name, helpFull string, fn ActionFunc) (*Action, error) {
	a := &Action{
		Base: NewBase(name, helpFull),
		fn:   fn,
	}
	if err := parent.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Execute invokes the wrapped function.
func (a *Action) Execute(args []string) Outcome {
	return a.fn(args)
}
