// SPDX-License-Identifier: MIT

package session

import "errors"

var (
	// ErrUnknownCommand reports an input line whose first word is not a command.
	ErrUnknownCommand = errors.New("session: unknown command")
	// ErrUnknownNode reports a node ID absent from the graph.
	ErrUnknownNode = errors.New("session: unknown node")
	// ErrBadArgument reports a missing, extra or malformed argument.
	ErrBadArgument = errors.New("session: bad argument")

	// errQuit ends Run without error.
	errQuit = errors.New("session: quit")
)
