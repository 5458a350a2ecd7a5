// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package menu implements a hierarchical, line-oriented command menu
// engine: an interactive shell where commands can open nested sub-menus,
// command names may be abbreviated to any unique prefix, and tab
// completion is driven through the menu tree.
//
// # Key Types
//
//   - Command: the dispatch contract every node implements
//   - Menu: a Command that owns an ordered namespace of child Commands
//     and can run its own input loop
//   - Outcome: the control-flow result returned through nested loops
//   - Completer: resolves an in-progress token to candidates via
//     recursive delegation through the tree
//
// # Modes
//
// A menu loop runs in one of three modes: interactive (lines come from
// a LineReader, typically the lineedit adapter), scripted (lines come
// from a queue; exhaustion ends the loop normally), or test replay
// (like scripted, but exhaustion before an explicit end-of-menu command
// is a fatal configuration error, and each line is echoed with the
// prompt).
//
// # Usage
//
// Build a tree and run it:
//
//	root, _ := menu.NewRootMenu("app", "My application.", menu.NewPathPrompt())
//	sub, _ := menu.NewSubMenu(root, "notes", "Manage notes.")
//	menu.NewAction(sub, "list", "List all notes.", listNotes)
//	menu.NewExit(sub, "back")
//	menu.NewHelp(root, "help")
//	menu.NewQuit(root, "quit")
//	root.LoopInput()
package menu
