// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Alias is a command that forwards to another command line within its
// parent menu. The alias text is tokenized once at construction with
// the same shell-quoting rules as interactive input; call-time
// arguments are appended to the expanded tokens.
type Alias struct {
	Base
	tokens []string
}

// NewAlias registers an alias under parent. Alias text that cannot be
// tokenized, or that is empty, fails construction.
func NewAlias(parent *Menu, name, command string) (*Alias, error) {
	tokens, err := Split(command)
	if err != nil {
		return nil, err
	}
	return newAlias(parent, name, tokens, command)
}

// newAlias registers an alias from already-split tokens. Callers that
// hold tokenized words (the runtime alias configuration) use this
// directly so quoting is not split a second time.
func newAlias(parent *Menu, name string, tokens []string, display string) (*Alias, error) {
	if len(tokens) == 0 {
		return nil, &BadCommandError{Line: display, Err: errors.New("empty alias")}
	}
	a := &Alias{
		Base:   NewBase(name, fmt.Sprintf("Alias <%s>", display)),
		tokens: append([]string(nil), tokens...),
	}
	if err := parent.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// displayTokens renders tokens back to one line for help text, quoting
// any token the tokenizer would split again.
func displayTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok == "" || strings.ContainsAny(tok, " \t'\"\\") {
			quoted[i] = strconv.Quote(tok)
		} else {
			quoted[i] = tok
		}
	}
	return strings.Join(quoted, " ")
}

// Target returns the expanded alias tokens.
func (a *Alias) Target() []string {
	return append([]string(nil), a.tokens...)
}

// Execute forwards the expanded tokens plus the call-time arguments to
// the parent menu's dispatcher.
func (a *Alias) Execute(args []string) Outcome {
	forwarded := make([]string, 0, len(a.tokens)+len(args))
	forwarded = append(forwarded, a.tokens[1:]...)
	forwarded = append(forwarded, args...)
	return a.Parent().RunCommand(a.tokens[0], forwarded...)
}
