// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// menu.go - The menu node: ordered namespace, prefix resolution,
// dispatch, and help rendering.

package menu

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Menu is a Command that owns an ordered namespace of child Commands
// and can run its own input loop. Registration order is preserved: it
// is user-visible in help listings and empty-line completion.
//
// Dispatch and tree mutation are single-threaded by design; a host
// embedding the engine in concurrent code must serialize all calls.
type Menu struct {
	Base

	names  []string
	byName map[string]Command

	prompt Prompt
	out    io.Writer
	reader LineReader

	// replay is the transient loop state (scripted queue, test flag)
	// live only while a scripted or test loop runs on this menu. It is
	// threaded into child menus entered without arguments.
	replay *replayState

	// OnEmptyLine runs for an empty input line. The default prints the
	// child names in registration order.
	OnEmptyLine func() Outcome

	// OnBadLine runs when a typed line fails to tokenize. The default
	// prints the error. Non-fatal: the loop continues.
	OnBadLine func(line string, err error) Outcome

	// OnBadCommand runs for an unrecognized command prefix. The
	// default prints a diagnostic.
	OnBadCommand func(prefix string, args []string) Outcome

	// OnAmbiguousCommand runs when a prefix matches several commands
	// and no arguments were supplied. The default lists the matches in
	// registration order.
	OnAmbiguousCommand func(matches []Command, prefix string, args []string) Outcome
}

// Option configures a menu at construction time.
type Option func(*Menu)

// WithReader sets the interactive line source. Sub-menus inherit the
// parent's reader unless overridden.
func WithReader(r LineReader) Option {
	return func(m *Menu) { m.reader = r }
}

// WithWriter sets the diagnostic/help writer. Defaults to os.Stdout;
// sub-menus inherit the parent's writer unless overridden.
func WithWriter(w io.Writer) Option {
	return func(m *Menu) { m.out = w }
}

// WithPrompt sets an explicit prompt instead of structural inheritance.
// Passing one Prompt instance to several menus shares it live.
func WithPrompt(p Prompt) Option {
	return func(m *Menu) { m.prompt = p }
}

// NewRootMenu builds the top-level menu of an application. The prompt
// is mandatory: a root has no parent to inherit one from, and a nil
// prompt returns an *InvalidPromptError.
func NewRootMenu(name, helpHeader string, prompt Prompt, opts ...Option) (*Menu, error) {
	m := newMenu(name, helpHeader)
	m.prompt = prompt
	for _, opt := range opts {
		opt(m)
	}
	if m.prompt == nil {
		return nil, &InvalidPromptError{Menu: name}
	}
	return m, nil
}

// NewSubMenu builds a menu registered under parent. Without an explicit
// WithPrompt option the parent's prompt is inherited structurally (a
// copy, not a live reference). Reader and writer are inherited the same
// way.
func NewSubMenu(parent *Menu, name, helpHeader string, opts ...Option) (*Menu, error) {
	m := newMenu(name, helpHeader)
	m.out = parent.out
	m.reader = parent.reader
	for _, opt := range opts {
		opt(m)
	}
	if err := parent.Add(m); err != nil {
		return nil, err
	}
	if m.prompt == nil {
		m.prompt = inheritPrompt(parent.prompt)
	}
	return m, nil
}

func newMenu(name, helpHeader string) *Menu {
	return &Menu{
		Base:   NewBase(name, helpHeader),
		byName: make(map[string]Command),
		out:    os.Stdout,
	}
}

// =============================================================================
// NAMESPACE
// =============================================================================

// Add registers a command under this menu. Registration order is
// preserved. A name conflict returns a *DuplicatedNameError; a command
// that already has a parent is rejected.
func (m *Menu) Add(c Command) error {
	name := c.Name()
	if c.Parent() != nil {
		return fmt.Errorf("command %q is already registered under menu %q", name, c.Parent().Name())
	}
	if _, ok := m.byName[name]; ok {
		return &DuplicatedNameError{Menu: m.Name(), Name: name}
	}
	m.byName[name] = c
	m.names = append(m.names, name)
	c.attach(m)
	return nil
}

// Uninstall removes the named command from this menu. It reports
// whether the command existed. The slot becomes free for
// re-registration.
func (m *Menu) Uninstall(name string) bool {
	c, ok := m.byName[name]
	if !ok {
		return false
	}
	delete(m.byName, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	c.attach(nil)
	return true
}

// Lookup returns the child registered under exactly name.
func (m *Menu) Lookup(name string) (Command, bool) {
	c, ok := m.byName[name]
	return c, ok
}

// Names returns the child names in registration order.
func (m *Menu) Names() []string {
	return append([]string(nil), m.names...)
}

// Commands returns the children in registration order.
func (m *Menu) Commands() []Command {
	cmds := make([]Command, 0, len(m.names))
	for _, name := range m.names {
		cmds = append(cmds, m.byName[name])
	}
	return cmds
}

// Writer returns the diagnostic/help writer.
func (m *Menu) Writer() io.Writer {
	return m.out
}

// Reader returns the interactive line source, which may be nil for a
// purely scripted menu.
func (m *Menu) Reader() LineReader {
	return m.reader
}

// PromptText renders the current prompt.
func (m *Menu) PromptText() string {
	if m.prompt == nil {
		return ""
	}
	return m.prompt.Render(m)
}

// =============================================================================
// RESOLVER
// =============================================================================

// Resolve matches a typed prefix against the registered names. An exact
// name wins outright, so a longer sibling such as "cmd10" can never
// shadow the exact match "cmd1". Otherwise every child whose name
// starts with the prefix is returned, in registration order.
func (m *Menu) Resolve(prefix string) []Command {
	if c, ok := m.byName[prefix]; ok {
		return []Command{c}
	}
	var matches []Command
	for _, name := range m.names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, m.byName[name])
		}
	}
	return matches
}

// =============================================================================
// DISPATCH
// =============================================================================

// RunLine tokenizes and dispatches one command line. Empty lines go to
// the empty-line hook; tokenizer failures go to the bad-line hook. Both
// are non-fatal.
func (m *Menu) RunLine(line string) Outcome {
	if line == "" {
		return m.onEmptyLine()
	}
	words, err := Split(line)
	if err != nil {
		return m.onBadLine(line, err)
	}
	if len(words) == 0 {
		return m.onEmptyLine()
	}
	return m.RunCommand(words[0], words[1:]...)
}

// RunCommand resolves a command prefix within this menu and executes
// the unique match. Zero matches report an unrecognized command. An
// ambiguous prefix is tolerated only for a bare command name: with
// trailing arguments it is reported as unrecognized as well.
func (m *Menu) RunCommand(prefix string, args ...string) Outcome {
	return m.dispatch(Command.Execute, prefix, args)
}

func (m *Menu) dispatch(invoke func(Command, []string) Outcome, prefix string, args []string) Outcome {
	matches := m.Resolve(prefix)
	switch {
	case len(matches) == 1:
		return invoke(matches[0], args)
	case len(matches) == 0 || len(args) > 0:
		return m.onBadCommand(prefix, args)
	default:
		return m.onAmbiguousCommand(matches, prefix, args)
	}
}

// Execute makes a menu behave as a command of its parent. Without
// arguments it enters its own input loop, inheriting the nearest
// enclosing live scripted or test state: the walk up the parent chain
// covers a multi-level entry such as "b c" typed on one scripted line,
// where the intermediate menu has no loop of its own. With arguments it
// dispatches them as a command line within itself, so "menu foo bar"
// runs "bar" inside sub-menu "foo" without opening an interactive loop.
func (m *Menu) Execute(args []string) Outcome {
	if len(args) > 0 {
		return m.RunCommand(args[0], args[1:]...)
	}
	for p := m.Parent(); p != nil; p = p.Parent() {
		if p.replay != nil {
			return m.loop(p.replay)
		}
	}
	return m.LoopInput()
}

// =============================================================================
// HOOKS
// =============================================================================

func (m *Menu) onEmptyLine() Outcome {
	if m.OnEmptyLine != nil {
		return m.OnEmptyLine()
	}
	fmt.Fprintln(m.out, strings.Join(m.names, " "))
	return Continue()
}

func (m *Menu) onBadLine(line string, err error) Outcome {
	if m.OnBadLine != nil {
		return m.OnBadLine(line, err)
	}
	fmt.Fprintln(m.out, err)
	return Continue()
}

func (m *Menu) onBadCommand(prefix string, args []string) Outcome {
	if m.OnBadCommand != nil {
		return m.OnBadCommand(prefix, args)
	}
	fmt.Fprintln(m.out, "Unrecognized command:", prefix)
	return Continue()
}

func (m *Menu) onAmbiguousCommand(matches []Command, prefix string, args []string) Outcome {
	if m.OnAmbiguousCommand != nil {
		return m.OnAmbiguousCommand(matches, prefix, args)
	}
	names := make([]string, 0, len(matches))
	for _, c := range matches {
		names = append(names, c.Name())
	}
	fmt.Fprintf(m.out, "Ambiguous command: %s [%s]\n", prefix, strings.Join(names, ","))
	return Continue()
}

// =============================================================================
// HELP
// =============================================================================

// Help without arguments prints the menu's help header followed by one
// line per child: the name, padded to the widest sibling, and its short
// help. With arguments it delegates to the resolved child's Help.
func (m *Menu) Help(args []string) Outcome {
	if len(args) > 0 {
		return m.dispatch(Command.Help, args[0], args[1:])
	}
	fmt.Fprintln(m.out, m.HelpFull())
	width := 0
	for _, name := range m.names {
		if w := runewidth.StringWidth(name); w > width {
			width = w
		}
	}
	for _, name := range m.names {
		fmt.Fprintf(m.out, "  %s    %s\n", runewidth.FillRight(name, width), m.byName[name].HelpShort())
	}
	return Continue()
}

// =============================================================================
// COMPLETION
// =============================================================================

// Complete implements command-name and argument completion for the
// menu. See Completer for the contract of line, prefix, begin and end.
//
//   - no tokens: every child name, in registration order
//   - a single token the line still ends with: resolver matches; a
//     unique match yields one candidate trimmed for the editor's word
//     boundary, several matches are returned unmodified
//   - otherwise the first token must resolve uniquely and completion is
//     delegated to that child with the remaining tokens
func (m *Menu) Complete(tokens []string, line, prefix string, begin, end int) []string {
	switch {
	case len(tokens) == 0:
		return m.Names()
	case len(tokens) == 1 && strings.HasSuffix(line, tokens[0]):
		matches := m.Resolve(tokens[0])
		if len(matches) == 1 {
			return []string{trimForEditor(matches[0].Name(), tokens[0], prefix)}
		}
		names := make([]string, 0, len(matches))
		for _, c := range matches {
			names = append(names, c.Name())
		}
		return names
	default:
		matches := m.Resolve(tokens[0])
		if len(matches) != 1 {
			return nil
		}
		return matches[0].Complete(tokens[1:], line, prefix, begin, end)
	}
}
