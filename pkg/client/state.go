/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

type state int

const (
	stateBuilt state = iota
	stateSigned
	stateSent
)

func (s state) String() string {
	switch s {
	case stateBuilt:
		return "unsigned"
	case stateSigned:
		return "signed"
	case stateSent:
		return "sent"
	default:
		return "unknown"
	}
}

// signingState tracks the progress of a signable message. Transitions only move forward: built, signed, sent. The
// zero value is the built state.
type signingState struct {
	current state
}

func (s *signingState) signed() error {
	if s.current != stateBuilt {
		return &StateError{Operation: "sign", State: s.current.String()}
	}
	s.current = stateSigned
	return nil
}

// send moves a signed message to the sent state. Must be called immediately before the message leaves the
// process.
func (s *signingState) send(operation string) error {
	if s.current != stateSigned {
		return &StateError{Operation: operation, State: s.current.String()}
	}
	s.current = stateSent
	return nil
}

// require checks that a message has been signed, without changing state. Used by messages that may be sent
// more than once.
func (s *signingState) require(operation string) error {
	if s.current == stateBuilt {
		return &StateError{Operation: operation, State: s.current.String()}
	}
	return nil
}
