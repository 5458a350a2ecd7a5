// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"fmt"
	"io"
)

// NewAliasConfig registers a sub-menu under parent whose commands
// mutate parent's alias namespace at runtime:
//
//	set <name> <command...>   define or redefine an alias
//	unset <name>...           remove aliases
//	unset-all                 remove every alias
//
// Built-in (non-alias) entries are guarded: set refuses to shadow them
// and unset refuses to remove them.
func NewAliasConfig(parent *Menu, name string) (*Menu, error) {
	sub, err := NewSubMenu(parent, name, "Configure command aliases.")
	if err != nil {
		return nil, err
	}

	if _, err := NewAction(sub, "set",
		"Define an alias: set <name> <command...>.\nThe command text uses shell quoting rules.",
		func(args []string) Outcome {
			return aliasSet(parent, sub.Writer(), args)
		}); err != nil {
		return nil, err
	}

	if _, err := NewAction(sub, "unset",
		"Remove one or more aliases: unset <name>...",
		func(args []string) Outcome {
			return aliasUnset(parent, sub.Writer(), args)
		}); err != nil {
		return nil, err
	}

	if _, err := NewAction(sub, "unset-all",
		"Remove every alias from the menu.",
		func(args []string) Outcome {
			return aliasUnsetAll(parent, args)
		}); err != nil {
		return nil, err
	}

	if _, err := NewExit(sub, "exit"); err != nil {
		return nil, err
	}

	return sub, nil
}

func aliasSet(target *Menu, out io.Writer, args []string) Outcome {
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: set <name> <command...>")
		return Continue()
	}
	name := args[0]
	if existing, ok := target.Lookup(name); ok {
		if _, isAlias := existing.(*Alias); !isAlias {
			fmt.Fprintln(out, "Cannot override built-in command:", name)
			return Continue()
		}
		target.Uninstall(name)
	}
	// The args are already tokenized words; building the alias from them
	// directly keeps quoted arguments intact.
	if _, err := newAlias(target, name, args[1:], displayTokens(args[1:])); err != nil {
		fmt.Fprintln(out, "Cannot set alias:", err)
	}
	return Continue()
}

func aliasUnset(target *Menu, out io.Writer, args []string) Outcome {
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: unset <name>...")
		return Continue()
	}
	for _, name := range args {
		existing, ok := target.Lookup(name)
		if !ok {
			fmt.Fprintln(out, "No such alias:", name)
			continue
		}
		if _, isAlias := existing.(*Alias); !isAlias {
			fmt.Fprintln(out, "Cannot remove built-in command:", name)
			continue
		}
		target.Uninstall(name)
	}
	return Continue()
}

func aliasUnsetAll(target *Menu, args []string) Outcome {
	for _, name := range target.Names() {
		if c, ok := target.Lookup(name); ok {
			if _, isAlias := c.(*Alias); isAlias {
				target.Uninstall(name)
			}
		}
	}
	return Continue()
}
