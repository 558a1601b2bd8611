// Package tqerrors holds the errors that are shown to the player. Every
// rejected command produces exactly one of these; none of them are fatal.
package tqerrors

import (
	"errors"
	"fmt"
)

// Kind is the category of a rejected command.
type Kind int

const (
	// KindNone is returned by KindOf for errors that are not rejections.
	KindNone Kind = iota

	// EmptyInput is a blank input line.
	EmptyInput

	// UnknownCommandWord is a command word that no handler answers to.
	UnknownCommandWord

	// MalformedArguments is a wrong token count or a missing fixed keyword.
	MalformedArguments

	// TargetNotVisible is an entity that is neither in the current room nor
	// held by the player.
	TargetNotVisible

	// CapabilityMissing is a target lacking the trait the command needs.
	CapabilityMissing

	// StateRejected is a capable target blocked by its closed or locked
	// state.
	StateRejected

	// SelfReferential is an attempt to make a container hold itself.
	SelfReferential
)

var kindNames = map[Kind]string{
	KindNone:           "NONE",
	EmptyInput:         "EMPTY_INPUT",
	UnknownCommandWord: "UNKNOWN_COMMAND_WORD",
	MalformedArguments: "MALFORMED_ARGUMENTS",
	TargetNotVisible:   "TARGET_NOT_VISIBLE",
	CapabilityMissing:  "CAPABILITY_MISSING",
	StateRejected:      "STATE_REJECTED",
	SelfReferential:    "SELF_REFERENTIAL",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for use with errors.Is. Every rejection created in this package
// matches the sentinel of its Kind.
var (
	ErrEmptyInput         = errors.New("empty input")
	ErrUnknownCommandWord = errors.New("unknown command word")
	ErrMalformedArguments = errors.New("malformed arguments")
	ErrTargetNotVisible   = errors.New("target not visible")
	ErrCapabilityMissing  = errors.New("capability missing")
	ErrStateRejected      = errors.New("state rejected")
	ErrSelfReferential    = errors.New("self-referential")
)

var sentinels = map[Kind]error{
	EmptyInput:         ErrEmptyInput,
	UnknownCommandWord: ErrUnknownCommandWord,
	MalformedArguments: ErrMalformedArguments,
	TargetNotVisible:   ErrTargetNotVisible,
	CapabilityMissing:  ErrCapabilityMissing,
	StateRejected:      ErrStateRejected,
	SelfReferential:    ErrSelfReferential,
}

// interpreterError is an error caused by attempting to carry out player
// input. Either the input could not be understood or it asks for something
// that is impossible at the current time.
//
// It includes a human-readable message to show to the player as well as a
// more technical "error message" style message.
type interpreterError struct {
	kind  Kind
	msg   string
	human string
}

func (e *interpreterError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *interpreterError) GameMessage() string {
	return e.human
}

// Is reports whether target is the sentinel for this error's Kind.
func (e *interpreterError) Is(target error) bool {
	s, ok := sentinels[e.kind]
	return ok && s == target
}

// Reject returns a new rejection of the given kind that has both the message
// to show the player and the technical description of the error. If
// technical is empty, one is generated.
func Reject(kind Kind, game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got %s rejection(%q)", kind, game)
	}
	return &interpreterError{
		kind:  kind,
		msg:   technical,
		human: game,
	}
}

// Rejectf returns a new rejection of the given kind with a message to show to
// the player and an automatically generated Error() description. The
// arguments after kind are the format string and its arguments.
func Rejectf(kind Kind, gameFormat string, a ...interface{}) error {
	return Reject(kind, fmt.Sprintf(gameFormat, a...), "")
}

// GameMessage gets the message to display to the console for the given error.
// If it is a rejection, the player-facing message is returned. Otherwise,
// err.Error() is returned.
func GameMessage(err error) string {
	var intErr *interpreterError
	if errors.As(err, &intErr) {
		return intErr.GameMessage()
	}
	return err.Error()
}

// KindOf returns the Kind of the rejection in err's chain, or KindNone if
// there is none.
func KindOf(err error) Kind {
	var intErr *interpreterError
	if errors.As(err, &intErr) {
		return intErr.kind
	}
	return KindNone
}

// IsRejection returns whether err is a player-facing rejection as opposed to
// a failure of the engine itself.
func IsRejection(err error) bool {
	return KindOf(err) != KindNone
}
