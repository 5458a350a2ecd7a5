// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lineedit

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/cmdmenu/menu"
)

// Editor wraps a liner terminal for interactive menu input: prompted
// reads with history, word completion sourced from the active menu,
// and pre-filled single-line editing.
type Editor struct {
	state       *liner.State
	completer   *menu.Completer
	historyFile string
}

// New initializes the terminal for raw input. Close must be called
// before the process exits to restore the terminal mode.
func New() *Editor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	e := &Editor{
		state:     state,
		completer: menu.NewCompleter(nil),
	}
	state.SetWordCompleter(e.completeWord)
	return e
}

// SetMenu re-points tab completion at the given menu. The input loop
// calls this as nested menus are entered and left.
func (e *Editor) SetMenu(m *menu.Menu) {
	e.completer.SetMenu(m)
}

// ReadLine blocks for one line of input. Non-blank lines are appended
// to history. End of input (Ctrl-D) and an aborted prompt (Ctrl-C)
// both return io.EOF, which the loop treats as leaving one menu level.
func (e *Editor) ReadLine(prompt string) (string, error) {
	line, err := e.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		e.state.AppendHistory(line)
	}
	return line, nil
}

// Edit blocks for one line of input pre-filled with initial, cursor at
// the end.
func (e *Editor) Edit(prompt, initial string) (string, error) {
	line, err := e.state.PromptWithSuggestion(prompt, initial, len(initial))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

// LoadHistory reads prompt history from path, if it exists.
func (e *Editor) LoadHistory(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	e.state.ReadHistory(f)
	e.historyFile = path
}

// SaveHistory persists prompt history to the path given to LoadHistory
// (or to path if set), owner read/write only.
func (e *Editor) SaveHistory(path string) {
	if path == "" {
		path = e.historyFile
	}
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	e.state.WriteHistory(f)
}

// Close saves history and restores the terminal mode.
func (e *Editor) Close() {
	e.SaveHistory("")
	e.state.Close()
}

// completeWord implements liner's WordCompleter: the returned
// candidates replace the word between the editor's last word boundary
// and the cursor.
func (e *Editor) completeWord(line string, pos int) (head string, completions []string, tail string) {
	if pos > len(line) {
		pos = len(line)
	}
	head = line[:pos]
	tail = line[pos:]
	start := wordStart(head)
	completions = e.completer.Complete(head, head[start:], start, pos)
	return head[:start], completions, tail
}

// wordStart returns the index where the in-progress word begins. Only
// whitespace delimits words here; hyphens and other punctuation belong
// to the word.
func wordStart(s string) int {
	if i := strings.LastIndexAny(s, " \t"); i >= 0 {
		return i + 1
	}
	return 0
}
