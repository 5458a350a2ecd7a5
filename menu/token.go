// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"github.com/mattn/go-shellwords"
)

// Split tokenizes a command line into shell-style words. Quoting and
// escaping follow POSIX shell rules. It is used identically for
// dispatch parsing and for completion-context parsing.
//
// Malformed quoting (an unterminated quote, a trailing backslash)
// returns a *BadCommandError wrapping the parser's message.
func Split(line string) ([]string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return nil, &BadCommandError{Line: line, Err: err}
	}
	return words, nil
}
