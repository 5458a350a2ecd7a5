// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// editor.go - Commands that edit a single line of host-owned text.
//
// The engine never stores the text itself: a LineEditor loads the
// current value through a host-supplied accessor, presents it
// pre-filled for blocking interactive editing, and writes the result
// back through a host-supplied mutator. Persistence is entirely the
// host's concern.

package menu

import (
	"fmt"
	"os"
	"os/exec"
)

// LineEditor presents an editable line of text pre-filled with the
// current value. Editing requires the menu's reader to implement
// LineEditCapable; otherwise the command reports and does nothing.
type LineEditor struct {
	Base
	load  func() string
	store func(string) error
}

// NewLineEditor registers a line-editing command under parent.
func NewLineEditor(parent *Menu, name, helpFull string, load func() string, store func(string) error) (*LineEditor, error) {
	e := &LineEditor{
		Base:  NewBase(name, helpFull),
		load:  load,
		store: store,
	}
	if err := parent.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Execute runs one blocking edit of the current value.
func (e *LineEditor) Execute(args []string) Outcome {
	out := e.writer()
	if len(args) > 0 {
		fmt.Fprintln(out, "Invalid arguments:", args[0])
		return Continue()
	}
	return e.edit()
}

func (e *LineEditor) edit() Outcome {
	out := e.writer()
	editor, ok := e.Parent().Reader().(LineEditCapable)
	if !ok {
		fmt.Fprintln(out, "Interactive editing is not available here")
		return Continue()
	}
	edited, err := editor.Edit(e.Name()+"> ", e.load())
	if err != nil {
		// End of input cancels the edit without storing.
		return Continue()
	}
	if err := e.store(edited); err != nil {
		fmt.Fprintln(out, "Cannot store value:", err)
	}
	return Continue()
}

// DefaultLineEditor is a LineEditor over a value that has a pristine
// default. Besides plain editing it accepts flags, advertised through
// its accepted-flags set for completion:
//
//	--print     show the current value without editing
//	--restore   write the pristine value back instead of editing
type DefaultLineEditor struct {
	FlagsBase
	inner   *LineEditor
	restore func() string
}

// NewDefaultLineEditor registers a flag-aware line editor under parent.
// restore returns the pristine value written back by --restore.
func NewDefaultLineEditor(parent *Menu, name, helpFull string, load func() string, store func(string) error, restore func() string) (*DefaultLineEditor, error) {
	e := &DefaultLineEditor{
		FlagsBase: NewFlagsBase(name, helpFull, []string{"--print", "--restore"}),
		inner: &LineEditor{
			Base:  NewBase(name, helpFull),
			load:  load,
			store: store,
		},
		restore: restore,
	}
	if err := parent.Add(e); err != nil {
		return nil, err
	}
	// The inner editor is not registered; it shares this command's
	// parent so edit() can reach the reader.
	e.inner.attach(parent)
	return e, nil
}

// Execute edits the value, or handles a recognized flag.
func (e *DefaultLineEditor) Execute(args []string) Outcome {
	out := e.writer()
	switch {
	case len(args) == 0:
		return e.inner.edit()
	case len(args) == 1 && args[0] == "--print":
		fmt.Fprintln(out, e.inner.load())
		return Continue()
	case len(args) == 1 && args[0] == "--restore":
		if err := e.inner.store(e.restore()); err != nil {
			fmt.Fprintln(out, "Cannot store value:", err)
		}
		return Continue()
	default:
		fmt.Fprintln(out, "Invalid arguments:", args[0])
		return Continue()
	}
}

// TextEditor opens the current text in an external editor ($VISUAL,
// then $EDITOR) via a temporary file and stores the edited result.
type TextEditor struct {
	Base
	load  func() string
	store func(string) error
}

// NewTextEditor registers an external-editor command under parent.
func NewTextEditor(parent *Menu, name, helpFull string, load func() string, store func(string) error) (*TextEditor, error) {
	t := &TextEditor{
		Base:  NewBase(name, helpFull),
		load:  load,
		store: store,
	}
	if err := parent.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Execute launches the editor and blocks until it exits. Failures are
// reported, not fatal.
func (t *TextEditor) Execute(args []string) Outcome {
	out := t.writer()
	if len(args) > 0 {
		fmt.Fprintln(out, "Invalid arguments:", args[0])
		return Continue()
	}
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		fmt.Fprintln(out, "No editor configured ($VISUAL or $EDITOR)")
		return Continue()
	}

	tmp, err := os.CreateTemp("", "cmdmenu-*.txt")
	if err != nil {
		fmt.Fprintln(out, "Cannot edit text:", err)
		return Continue()
	}
	path := tmp.Name()
	defer os.Remove(path)
	if _, err := tmp.WriteString(t.load()); err != nil {
		tmp.Close()
		fmt.Fprintln(out, "Cannot edit text:", err)
		return Continue()
	}
	tmp.Close()

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(out, "Editor failed:", err)
		return Continue()
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(out, "Cannot read edited text:", err)
		return Continue()
	}
	if err := t.store(string(edited)); err != nil {
		fmt.Fprintln(out, "Cannot store value:", err)
	}
	return Continue()
}
