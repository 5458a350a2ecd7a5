// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RunScript is a command that opens a text file and feeds each line to
// the parent menu's dispatcher, one command per line. It does not open
// a sub-loop: lines run in the parent menu's namespace, and an
// EndLoops outcome raised by a scripted line stops the script and
// propagates.
type RunScript struct {
	Base
}

// NewRunScript registers a script-running command under parent.
func NewRunScript(parent *Menu, name string) (*RunScript, error) {
	r := &RunScript{
		Base: NewBase(name, "Run commands from a script file, one per line."),
	}
	if err := parent.Add(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Execute runs the named script. An unreadable file is reported and the
// command is a no-op.
func (r *RunScript) Execute(args []string) Outcome {
	out := r.writer()
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage:", r.Name(), "<file>")
		return Continue()
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintln(out, "Cannot run script:", err)
		return Continue()
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		result := r.Parent().RunLine(scanner.Text())
		if result.ends() {
			return result
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(out, "Cannot run script:", err)
	}
	return Continue()
}

// Complete offers file paths for the script argument.
func (r *RunScript) Complete(tokens []string, line, prefix string, begin, end int) []string {
	if len(tokens) > 1 {
		return nil
	}
	partial := ""
	if len(tokens) == 1 {
		if !strings.HasSuffix(line, tokens[0]) {
			return nil
		}
		partial = tokens[0]
	}
	matches := matchPaths(partial)
	if len(matches) == 1 {
		return []string{trimForEditor(matches[0], partial, prefix)}
	}
	return matches
}

// matchPaths lists directory entries matching a path prefix.
func matchPaths(partial string) []string {
	dir, base := filepath.Split(partial)
	readFrom := dir
	if readFrom == "" {
		readFrom = "."
	}
	entries, err := os.ReadDir(readFrom)
	if err != nil {
		return nil
	}
	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		path := dir + name
		if entry.IsDir() {
			path += string(os.PathSeparator)
		}
		matches = append(matches, path)
	}
	return matches
}
