// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// command.go - The base dispatch contract of every node in the tree.

package menu

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Command is the contract every node of the menu tree implements.
// Concrete variants embed Base (or FlagsBase) and override Execute,
// and optionally Complete and Help.
type Command interface {
	// Name is the command's identity within its parent's namespace.
	Name() string

	// HelpShort is the one-line summary shown in menu help listings.
	HelpShort() string

	// HelpFull is the complete help text.
	HelpFull() string

	// Parent returns the owning menu, or nil for the root.
	Parent() *Menu

	// Execute runs the command with the arguments that followed its
	// name on the command line.
	Execute(args []string) Outcome

	// Complete returns candidate completions for an in-progress
	// argument list. tokens are the shell words typed after the
	// command's own name, line is the raw input up to the cursor,
	// prefix is what the line editor's own word-boundary rules
	// consider already typed, and begin/end delimit that word in the
	// line. The result is a concrete slice; callers may index it.
	Complete(tokens []string, line, prefix string, begin, end int) []string

	// Help prints help for the command. Arguments are rejected by
	// default; menus use them to address a child.
	Help(args []string) Outcome

	// attach records the owning menu at registration time. Embedding
	// Base provides it; a parent is set once and never reassigned.
	attach(parent *Menu)
}

// Base carries the identity, help text, and parent back-reference shared
// by every command variant. Embed it and override Execute.
type Base struct {
	name      string
	helpShort string
	helpFull  string
	parent    *Menu
}

// NewBase builds the common command core. The short help defaults to
// the first non-blank line of the full help.
func NewBase(name, helpFull string) Base {
	return Base{
		name:      name,
		helpShort: firstLine(helpFull),
		helpFull:  helpFull,
	}
}

// Name returns the command name.
func (b *Base) Name() string { return b.name }

// HelpShort returns the one-line summary.
func (b *Base) HelpShort() string { return b.helpShort }

// HelpFull returns the complete help text.
func (b *Base) HelpFull() string { return b.helpFull }

// Parent returns the owning menu, or nil before registration.
func (b *Base) Parent() *Menu { return b.parent }

// SetHelpShort overrides the derived one-line summary.
func (b *Base) SetHelpShort(s string) { b.helpShort = s }

func (b *Base) attach(parent *Menu) { b.parent = parent }

// Complete returns no candidates. Variants opt in by overriding.
func (b *Base) Complete(tokens []string, line, prefix string, begin, end int) []string {
	return nil
}

// Help prints the full help text, or a diagnostic if arguments were
// given to a command that takes none.
func (b *Base) Help(args []string) Outcome {
	out := b.writer()
	if len(args) > 0 {
		fmt.Fprintln(out, "Invalid arguments:", strings.Join(args, " "))
		return Continue()
	}
	fmt.Fprintln(out, b.helpFull)
	return Continue()
}

// writer resolves the diagnostic writer through the owning menu.
func (b *Base) writer() io.Writer {
	if b.parent != nil {
		return b.parent.Writer()
	}
	return os.Stdout
}

// FlagsBase is a Base with a flat set of accepted flag tokens used
// purely to drive completion of the command's own arguments. It has no
// effect on dispatch; Execute decides what the flags mean.
type FlagsBase struct {
	Base
	flags []string
}

// NewFlagsBase builds a command core with an accepted-flags set.
func NewFlagsBase(name, helpFull string, flags []string) FlagsBase {
	return FlagsBase{
		Base:  NewBase(name, helpFull),
		flags: append([]string(nil), flags...),
	}
}

// Flags returns the accepted flag set.
func (f *FlagsBase) Flags() []string {
	return append([]string(nil), f.flags...)
}

// Complete offers the accepted flags as candidates for the last token,
// with the same unique-match remainder trimming the menu applies to
// command names.
func (f *FlagsBase) Complete(tokens []string, line, prefix string, begin, end int) []string {
	if len(tokens) == 0 {
		return f.Flags()
	}
	last := tokens[len(tokens)-1]
	if !strings.HasSuffix(line, last) {
		// The cursor is past the last token; offer everything for the
		// next argument.
		return f.Flags()
	}
	var matches []string
	for _, flag := range f.flags {
		if strings.HasPrefix(flag, last) {
			matches = append(matches, flag)
		}
	}
	if len(matches) == 1 {
		return []string{trimForEditor(matches[0], last, prefix)}
	}
	return matches
}

// trimForEditor cuts the part of match that the line editor will keep
// in place. token is what the tokenizer considers typed, prefix is what
// the editor considers typed; the editor replaces only prefix, so the
// candidate must omit the leading len(token)-len(prefix) characters
// already on the line.
func trimForEditor(match, token, prefix string) string {
	cut := len(token) - len(prefix)
	if cut < 0 || cut > len(match) {
		return match
	}
	return match[cut:]
}

// firstLine extracts the first non-blank line of a help text.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
