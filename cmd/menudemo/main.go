// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// menudemo - Demonstration host for the cmdmenu engine.
//
// Builds a small note-keeping menu tree exercising every command
// variant, reads lines interactively on a terminal and in scripted
// mode from a pipe, and loads aliases from a TOML config file.
//
// Usage:
//
//	menudemo [-config FILE] [-script FILE]
//	echo "notes list" | menudemo
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jeranaias/cmdmenu/lineedit"
	"github.com/jeranaias/cmdmenu/menu"
)

const welcomeMarkdown = `# menudemo

A tiny note keeper driving the **cmdmenu** engine.

- Command names can be abbreviated to any unique prefix.
- Tab completes commands, sub-commands and flags.
- An empty line lists the current menu's commands.
`

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

// note is the demo's toy domain object.
type note struct {
	title string
	body  string
}

func main() {
	configPath := ""
	scriptPath := ""
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-config":
			i++
			if i < len(args) {
				configPath = args[i]
			}
		case "-script":
			i++
			if i < len(args) {
				scriptPath = args[i]
			}
		default:
			fmt.Fprintln(os.Stderr, "Unknown argument:", args[i])
			os.Exit(2)
		}
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot load config:", err)
		os.Exit(3)
	}

	if err := run(cfg, scriptPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *Config, scriptPath string) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	var editor *lineedit.Editor
	var reader menu.LineReader
	if interactive {
		editor = lineedit.New()
		editor.LoadHistory(cfg.HistoryFile)
		defer editor.Close()
		reader = editor
	}

	root, err := buildTree(cfg, reader)
	if err != nil {
		return err
	}

	if interactive {
		if rendered, err := glamour.Render(welcomeMarkdown, "auto"); err == nil {
			fmt.Print(rendered)
		}
		root.LoopInput()
		return nil
	}

	// Piped stdin runs in scripted mode, one command per line.
	source := os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		source = f
	}
	var lines []string
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	root.LoopLines(lines)
	return nil
}

// buildTree wires the demo menu: every command variant appears once.
func buildTree(cfg *Config, reader menu.LineReader) (*menu.Menu, error) {
	prompt := menu.NewPathPrompt()
	if cfg.Color {
		prompt.Style = func(s string) string { return promptStyle.Render(s) }
	}

	root, err := menu.NewRootMenu("menudemo", "menudemo - a tiny note keeper.", prompt,
		menu.WithReader(reader))
	if err != nil {
		return nil, err
	}

	notes := []note{{title: "welcome", body: "Try the notes menu.\n"}}
	motd := "Have a nice day"
	defaultMotd := motd

	sub, err := menu.NewSubMenu(root, "notes", "Manage notes.")
	if err != nil {
		return nil, err
	}
	if _, err := menu.NewAction(sub, "add", "Add a note: add <title>.", func(args []string) menu.Outcome {
		if len(args) != 1 {
			fmt.Fprintln(sub.Writer(), "Usage: add <title>")
			return menu.Continue()
		}
		notes = append(notes, note{title: args[0]})
		return menu.Continue()
	}); err != nil {
		return nil, err
	}
	if _, err := menu.NewAction(sub, "list", "List all notes.", func(args []string) menu.Outcome {
		for i, n := range notes {
			fmt.Fprintf(sub.Writer(), "%d  %s\n", i, n.title)
		}
		return menu.Continue()
	}); err != nil {
		return nil, err
	}
	if _, err := menu.NewAction(sub, "remove", "Remove a note: remove <index>.", func(args []string) menu.Outcome {
		if len(args) != 1 {
			fmt.Fprintln(sub.Writer(), "Usage: remove <index>")
			return menu.Continue()
		}
		var i int
		if _, err := fmt.Sscanf(args[0], "%d", &i); err != nil || i < 0 || i >= len(notes) {
			fmt.Fprintln(sub.Writer(), "No such note:", args[0])
			return menu.Continue()
		}
		notes = append(notes[:i], notes[i+1:]...)
		return menu.Continue()
	}); err != nil {
		return nil, err
	}
	if _, err := menu.NewTextEditor(sub, "body", "Edit the first note's body in $EDITOR.",
		func() string { return notes[0].body },
		func(s string) error { notes[0].body = s; return nil }); err != nil {
		return nil, err
	}
	if _, err := menu.NewHelp(sub, "help"); err != nil {
		return nil, err
	}
	if _, err := menu.NewExit(sub, "back"); err != nil {
		return nil, err
	}

	if _, err := menu.NewDefaultLineEditor(root, "motd", "Edit the message of the day.",
		func() string { return motd },
		func(s string) error { motd = s; return nil },
		func() string { return defaultMotd }); err != nil {
		return nil, err
	}
	if _, err := menu.NewRunScript(root, "source"); err != nil {
		return nil, err
	}
	if _, err := menu.NewAliasConfig(root, "alias"); err != nil {
		return nil, err
	}
	if _, err := menu.NewHelp(root, "help"); err != nil {
		return nil, err
	}
	if _, err := menu.NewResume(root, "resume"); err != nil {
		return nil, err
	}
	if _, err := menu.NewExit(root, "exit"); err != nil {
		return nil, err
	}
	if _, err := menu.NewQuit(root, "quit"); err != nil {
		return nil, err
	}

	for name, command := range cfg.Aliases {
		if _, err := menu.NewAlias(root, name, command); err != nil {
			return nil, err
		}
	}

	return root, nil
}
