// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Tests for the input-loop state machine: scripted and test replay,
// multi-level unwinding, pause and resume.

package menu

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubReader feeds canned interactive lines and records which menu the
// completion source was last pointed at.
type stubReader struct {
	lines []string
	menus []string
}

func (r *stubReader) ReadLine(prompt string) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *stubReader) SetMenu(m *Menu) {
	r.menus = append(r.menus, m.Name())
}

// nestedTree builds root > b > c with marker actions at every level and
// unwind commands inside c.
func nestedTree(t *testing.T) (*Menu, *[]string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	root, err := NewRootMenu("root", "Root.", NewPathPrompt(), WithWriter(&buf))
	require.NoError(t, err)

	var log []string
	mark := func(m *Menu, name, tag string) {
		_, err := NewAction(m, name, name+" help.", func([]string) Outcome {
			log = append(log, tag)
			return Continue()
		})
		require.NoError(t, err)
	}

	mark(root, "mark", "root")
	b, err := NewSubMenu(root, "b", "Menu b.")
	require.NoError(t, err)
	mark(b, "mark", "b")
	c, err := NewSubMenu(b, "c", "Menu c.")
	require.NoError(t, err)
	mark(c, "mark", "c")

	_, err = NewExit(b, "back")
	require.NoError(t, err)
	_, err = NewAction(c, "up1", "Up one.", func([]string) Outcome { return EndLoops(1) })
	require.NoError(t, err)
	_, err = NewAction(c, "up2", "Up two.", func([]string) Outcome { return EndLoops(2) })
	require.NoError(t, err)
	_, err = NewQuit(c, "quit")
	require.NoError(t, err)
	_, err = NewExit(root, "exit")
	require.NoError(t, err)
	_, err = NewExit(c, "exit")
	require.NoError(t, err)

	return root, &log, &buf
}

// TestLoopLinesSharedQueue tests that a sub-menu entered without
// arguments keeps consuming the same scripted queue, and that EndLoops(1)
// returns control exactly one level up.
func TestLoopLinesSharedQueue(t *testing.T) {
	root, log, _ := nestedTree(t)

	out := root.LoopLines([]string{"b", "c", "mark", "up1", "mark", "back", "mark"})
	require.False(t, out.EndsSession())
	require.Equal(t, []string{"c", "b", "root"}, *log)
}

// TestLoopLinesMultiLevelEntry tests that entering a grandchild menu on
// one scripted line ("b c") still attaches its loop to the enclosing
// queue even though the intermediate menu never opened a loop.
func TestLoopLinesMultiLevelEntry(t *testing.T) {
	root, log, _ := nestedTree(t)

	out := root.LoopLines([]string{"b c", "mark", "up1", "mark"})
	require.False(t, out.EndsSession())
	require.Equal(t, []string{"c", "root"}, *log)
}

// TestLoopLinesEndTwoLevels tests that EndLoops(2) from depth 2 returns
// control to the root, skipping the middle menu.
func TestLoopLinesEndTwoLevels(t *testing.T) {
	root, log, _ := nestedTree(t)

	out := root.LoopLines([]string{"b", "c", "up2", "mark"})
	require.False(t, out.EndsSession())
	require.Equal(t, []string{"root"}, *log)
}

// TestLoopLinesQuitUnwindsAll tests that a full unwind from the deepest
// menu ends the session without running queued lines.
func TestLoopLinesQuitUnwindsAll(t *testing.T) {
	root, log, _ := nestedTree(t)

	out := root.LoopLines([]string{"b", "c", "quit", "mark"})
	require.True(t, out.EndsSession())
	require.Empty(t, *log)
}

// TestLoopLinesExhaustionEndsNormally tests that running out of
// scripted lines is a normal end, not an error.
func TestLoopLinesExhaustionEndsNormally(t *testing.T) {
	root, log, _ := nestedTree(t)

	out := root.LoopLines([]string{"mark"})
	require.NoError(t, out.Err())
	require.False(t, out.EndsSession())
	require.Equal(t, []string{"root"}, *log)
}

// TestLoopTestInsufficientCommands tests the fatal-on-exhaustion
// contract of test replay, including the empty queue and a nested menu
// left unterminated.
func TestLoopTestInsufficientCommands(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "empty queue", lines: nil},
		{name: "no explicit end", lines: []string{"mark"}},
		{name: "submenu left open", lines: []string{"b", "c", "exit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _, _ := nestedTree(t)
			err := root.LoopTest(Lines(tt.lines...))
			require.Error(t, err)
			require.True(t, IsInsufficientTestCommands(err))
		})
	}
}

// TestLoopTestExplicitEnd tests that an explicitly terminated replay
// succeeds and echoes each consumed line with the prompt prefix.
func TestLoopTestExplicitEnd(t *testing.T) {
	root, log, buf := nestedTree(t)

	err := root.LoopTest(Lines("mark", "exit"))
	require.NoError(t, err)
	require.Equal(t, []string{"root"}, *log)
	require.Contains(t, buf.String(), "(root) mark")
	require.Contains(t, buf.String(), "(root) exit")
}

// TestLoopTestQuitFromNestedMenu tests explicit termination of every
// level through a single full unwind.
func TestLoopTestQuitFromNestedMenu(t *testing.T) {
	root, log, _ := nestedTree(t)

	err := root.LoopTest(Lines("b", "c", "mark", "quit"))
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, *log)
}

// TestLoopTestPause tests that a pause entry takes one line from the
// interactive source, then replay continues with the queue.
func TestLoopTestPause(t *testing.T) {
	root, log, buf := nestedTree(t)
	reader := &stubReader{lines: []string{"mark"}}
	require.NoError(t, rewireReader(root, reader))

	err := root.LoopTest([]ReplayLine{
		Pause("paused for inspection", false),
		Text("exit"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"root"}, *log)
	require.Contains(t, buf.String(), "paused for inspection")
}

// TestLoopTestRepeatingPauseAndResume tests that a repeating pause
// keeps reading interactively until a resume command discards it.
func TestLoopTestRepeatingPauseAndResume(t *testing.T) {
	root, log, _ := nestedTree(t)
	_, err := NewResume(root, "resume")
	require.NoError(t, err)
	reader := &stubReader{lines: []string{"mark", "mark", "resume"}}
	require.NoError(t, rewireReader(root, reader))

	err = root.LoopTest([]ReplayLine{
		Pause("", true),
		Text("mark"),
		Text("exit"),
	})
	require.NoError(t, err)
	// Two interactive marks while paused, then the queued mark after
	// resume.
	require.Equal(t, []string{"root", "root", "root"}, *log)
	require.Empty(t, reader.lines)
}

// TestInteractiveLoopEOF tests that end of input leaves exactly one
// menu level, and that the completion source follows the active menu.
func TestInteractiveLoopEOF(t *testing.T) {
	root, log, _ := nestedTree(t)
	reader := &stubReader{lines: []string{"b", "mark", "mark"}}
	require.NoError(t, rewireReader(root, reader))

	out := root.LoopInput()
	require.False(t, out.EndsSession())
	// "b" opens the sub-menu loop; both marks run there; EOF ends b,
	// then the next EOF ends root.
	require.Equal(t, []string{"b", "b"}, *log)
	require.Equal(t, "root", reader.menus[0])
	require.Contains(t, reader.menus, "b")
	require.Equal(t, "root", reader.menus[len(reader.menus)-1])
}

// rewireReader installs a reader on an already built tree.
func rewireReader(root *Menu, r LineReader) error {
	root.reader = r
	for _, c := range root.Commands() {
		if m, ok := c.(*Menu); ok {
			if err := rewireReader(m, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// TestPromptEchoUsesMenuPrompt tests that nested test replay echoes
// with the nested menu's own prompt path.
func TestPromptEchoUsesMenuPrompt(t *testing.T) {
	root, _, buf := nestedTree(t)

	err := root.LoopTest(Lines("b", "mark", "back", "exit"))
	require.NoError(t, err)
	lines := strings.Split(buf.String(), "\n")
	require.Contains(t, lines, "(root) b")
	require.Contains(t, lines, "(root>b) mark")
}
