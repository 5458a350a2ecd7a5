// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Structured error types for the menu engine.
//
// Construction/wiring errors (duplicated name, invalid prompt, bad alias
// text, exhausted test queue) are returned up through constructors and
// loop entry points and abort wiring or test execution. Runtime per-line
// failures (bad quoting typed interactively, unrecognized or ambiguous
// commands) never surface as errors: they are reported through the
// overridable menu hooks and the loop continues.

package menu

import (
	"errors"
	"fmt"
)

// BadCommandError reports a command line or alias definition with
// malformed shell quoting. It wraps the underlying tokenizer error.
type BadCommandError struct {
	Line string // the offending line
	Err  error  // underlying parse error
}

func (e *BadCommandError) Error() string {
	return fmt.Sprintf("bad command line %q: %v", e.Line, e.Err)
}

func (e *BadCommandError) Unwrap() error {
	return e.Err
}

// DuplicatedNameError reports two commands registered under the same
// name in one menu. This is a wiring bug and is fatal at registration.
type DuplicatedNameError struct {
	Menu string // owning menu name
	Name string // conflicting command name
}

func (e *DuplicatedNameError) Error() string {
	return fmt.Sprintf("menu %q already has a command named %q", e.Menu, e.Name)
}

// InsufficientTestCommandsError reports a test-replay queue that ran out
// before an explicit end-of-menu command. Tests must always terminate
// each menu explicitly, never by running out of lines.
type InsufficientTestCommandsError struct {
	Menu string // menu whose loop was still live
}

func (e *InsufficientTestCommandsError) Error() string {
	return fmt.Sprintf("test replay for menu %q ran out of commands before an explicit end", e.Menu)
}

// InvalidPromptError reports a root menu constructed without a prompt.
type InvalidPromptError struct {
	Menu string
}

func (e *InvalidPromptError) Error() string {
	return fmt.Sprintf("menu %q has no parent to inherit a prompt from and no explicit prompt", e.Menu)
}

// IsBadCommand checks if an error is a BadCommandError.
func IsBadCommand(err error) bool {
	var badErr *BadCommandError
	return errors.As(err, &badErr)
}

// IsDuplicatedName checks if an error is a DuplicatedNameError.
func IsDuplicatedName(err error) bool {
	var dupErr *DuplicatedNameError
	return errors.As(err, &dupErr)
}

// IsInsufficientTestCommands checks if an error is an
// InsufficientTestCommandsError.
func IsInsufficientTestCommands(err error) bool {
	var insErr *InsufficientTestCommandsError
	return errors.As(err, &insErr)
}
