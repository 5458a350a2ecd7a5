// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// loop.go - The input loop state machine: interactive, scripted, and
// test-replay modes with pause/resume.

package menu

import (
	"fmt"
)

// ReplayLine is one queued entry for scripted or test replay: either a
// literal command line, or an interactive pause.
type ReplayLine struct {
	text   string
	pause  bool
	msg    string
	repeat bool
}

// Text queues a literal command line.
func Text(line string) ReplayLine {
	return ReplayLine{text: line}
}

// Pause queues an interactive pause: replay stops, the message (if any)
// is printed, and one line is read from the interactive source. With
// repeat the pause re-inserts itself so every subsequent line is read
// interactively until a Resume command runs.
func Pause(message string, repeat bool) ReplayLine {
	return ReplayLine{pause: true, msg: message, repeat: repeat}
}

// Lines converts plain strings to replay entries.
func Lines(lines ...string) []ReplayLine {
	entries := make([]ReplayLine, len(lines))
	for i, line := range lines {
		entries[i] = Text(line)
	}
	return entries
}

// replayState is the pending queue and mode flag shared by a loop and
// any child menu loops entered without arguments.
type replayState struct {
	queue []ReplayLine
	test  bool
}

// =============================================================================
// LOOP ENTRY POINTS
// =============================================================================

// LoopInput runs the interactive read-dispatch cycle: render the
// prompt, read a line, dispatch, repeat. End of input counts as an
// explicit one-level EndLoops. The returned outcome has already been
// consumed by this loop's boundary; EndsSession reports a full unwind.
func (m *Menu) LoopInput() Outcome {
	return m.loop(nil)
}

// LoopLines runs the loop over a fixed queue of lines instead of
// interactive input. An exhausted queue ends the loop normally.
func (m *Menu) LoopLines(lines []string) Outcome {
	return m.loop(&replayState{queue: Lines(lines...)})
}

// LoopTest replays a fixed queue the way a test harness needs it: each
// consumed line is echoed with the prompt prefix, and running out of
// entries before an explicit end-of-menu command is a fatal
// configuration error. Pause entries switch to a single interactive
// read; see Pause and NewResume.
func (m *Menu) LoopTest(entries []ReplayLine) error {
	queue := append([]ReplayLine(nil), entries...)
	out := m.loop(&replayState{queue: queue, test: true})
	return out.Err()
}

// =============================================================================
// STATE MACHINE
// =============================================================================

// loop drives one menu's read-dispatch cycle. A nil state means
// interactive mode; otherwise lines are drawn from the shared queue.
func (m *Menu) loop(state *replayState) Outcome {
	prev := m.replay
	m.replay = state
	defer func() { m.replay = prev }()

	for {
		line, ok, out := m.nextLine(state)
		if !ok {
			return out.atBoundary()
		}
		out = m.RunLine(line)
		if out.resume && state != nil {
			// Drop a still-pending pause so automatic replay resumes.
			for len(state.queue) > 0 && state.queue[0].pause {
				state.queue = state.queue[1:]
			}
			continue
		}
		if out.ends() {
			return out.atBoundary()
		}
	}
}

// nextLine produces the next input line for the loop. ok=false means
// the loop is over and out carries the exit outcome (not yet consumed
// by the boundary).
func (m *Menu) nextLine(state *replayState) (line string, ok bool, out Outcome) {
	if state == nil {
		return m.readInteractive("")
	}
	if len(state.queue) == 0 {
		if state.test {
			return "", false, Fatal(&InsufficientTestCommandsError{Menu: m.Name()})
		}
		return "", false, Continue()
	}
	entry := state.queue[0]
	state.queue = state.queue[1:]
	if entry.pause {
		if entry.repeat {
			state.queue = append([]ReplayLine{entry}, state.queue...)
		}
		return m.readInteractive(entry.msg)
	}
	if state.test {
		fmt.Fprintf(m.out, "%s%s\n", m.PromptText(), entry.text)
	}
	return entry.text, true, Outcome{}
}

// readInteractive blocks on the external line source for one line,
// re-pointing the completion source at this menu first. End of input
// (or no reader at all) maps to EndLoops(1).
func (m *Menu) readInteractive(message string) (string, bool, Outcome) {
	if message != "" {
		fmt.Fprintln(m.out, message)
	}
	if m.reader == nil {
		return "", false, EndLoops(1)
	}
	if mc, ok := m.reader.(MenuCompleter); ok {
		mc.SetMenu(m)
	}
	line, err := m.reader.ReadLine(m.PromptText())
	if err != nil {
		return "", false, EndLoops(1)
	}
	return line, true, Outcome{}
}
