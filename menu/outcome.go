// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// outcome.go - Control-flow results threaded through nested menu loops.
//
// A command that wants to unwind one or more enclosing loops returns an
// Outcome carrying a depth count instead of panicking: every loop
// boundary decrements the depth by one, and when it reaches zero at a
// boundary with a live parent the unwind stops and the parent's input
// mechanism takes over again.

package menu

// Outcome is the result of executing a command or a menu loop. The zero
// value continues the enclosing loop.
type Outcome struct {
	endDepth int   // number of enclosing loops still to exit
	endAll   bool  // unwind every loop, ending the session
	resume   bool  // discard a pending replay pause and continue
	err      error // fatal configuration error, aborts all loops
}

// Continue keeps the enclosing loop running.
func Continue() Outcome {
	return Outcome{}
}

// EndLoops unwinds exactly depth nested menu loops. EndLoops(1) ends
// only the loop the command was dispatched from.
func EndLoops(depth int) Outcome {
	return Outcome{endDepth: depth}
}

// EndAllLoops unwinds every nested loop, terminating the session.
func EndAllLoops() Outcome {
	return Outcome{endAll: true}
}

// ResumeReplay tells an enclosing test-replay loop to discard a pending
// interactive pause and continue automatic replay. In any other context
// it is equivalent to Continue.
func ResumeReplay() Outcome {
	return Outcome{resume: true}
}

// Fatal aborts every enclosing loop with a configuration error. The
// error is returned from the outermost loop entry point.
func Fatal(err error) Outcome {
	return Outcome{err: err}
}

// Err returns the fatal error carried by the outcome, if any.
func (o Outcome) Err() error {
	return o.err
}

// EndsSession reports whether the outcome unwinds everything.
func (o Outcome) EndsSession() bool {
	return o.endAll
}

// ends reports whether the outcome exits the current loop.
func (o Outcome) ends() bool {
	return o.err != nil || o.endAll || o.endDepth > 0
}

// atBoundary consumes one loop level from the outcome. Fatal errors and
// full unwinds pass through untouched.
func (o Outcome) atBoundary() Outcome {
	if o.err != nil || o.endAll {
		return o
	}
	if o.endDepth > 0 {
		o.endDepth--
	}
	return o
}
