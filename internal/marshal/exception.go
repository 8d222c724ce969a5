package marshal

import (
	"fmt"

	"github.com/anthropic-idl/sdv-idlc/internal/anyvalue"
)

// SystemExceptionID enumerates the core's own exception conditions
// (spec.md §4.6.6), each with a stable id a proxy can branch on without
// string comparison.
type SystemExceptionID uint32

const (
	NullPointer SystemExceptionID = iota + 1
	NoInterface
	InvalidState
	UnhandledException
	TransportLost
	ReplyCorrupted
)

func (id SystemExceptionID) String() string {
	switch id {
	case NullPointer:
		return "null_pointer"
	case NoInterface:
		return "no_interface"
	case InvalidState:
		return "invalid_state"
	case UnhandledException:
		return "unhandled_exception"
	case TransportLost:
		return "transport_lost"
	case ReplyCorrupted:
		return "reply_corrupted"
	default:
		return "unknown_system_exception"
	}
}

// SystemException is a core-defined exception condition (spec.md §4.6.6):
// null_pointer, no_interface, invalid_state, unhandled_exception, and the
// transport failures (reply corruption, lost connection) that "surface as
// system exceptions" per the same section.
type SystemException struct {
	ID      SystemExceptionID
	Message string
	// Crash carries best-effort native-panic context when ID is
	// UnhandledException and the stub caught a Go panic rather than a
	// structured error (spec.md §4.6.5 stub step 4).
	Crash *CrashContext
}

func (e *SystemException) Error() string {
	if e.Message == "" {
		return e.ID.String()
	}
	return fmt.Sprintf("%s: %s", e.ID.String(), e.Message)
}

// UserException is a stub-declared exception (spec.md §4.6.6): it carries
// its own stable id — stored as an anyvalue.Value tagged ExceptionID, the
// same tag the Any Value envelope reserves for it (spec.md §3.5) — and its
// declared fields, keyed by field name the way a generated exception type's
// members would be.
type UserException struct {
	ExceptionID anyvalue.Value
	Fields      map[string]anyvalue.Value
}

func (e *UserException) Error() string {
	return fmt.Sprintf("user exception %d", e.ExceptionID.AsUint64())
}

// KnownExceptionIDs is implemented by a stub's generated exception registry
// to answer "is this exception id one I declare" (spec.md §4.6.5 stub step
// 4: "if the exception's id is known to the stub, it is serialized into the
// reply as a discriminated user exception; if not, it is wrapped as a
// system exception").
type KnownExceptionIDs interface {
	KnowsExceptionID(id anyvalue.Value) bool
}

// ToReplyException normalizes an arbitrary error caught while invoking the
// underlying object into the exception that crosses the wire: a
// *UserException passes through only if stub declares (via
// KnownExceptionIDs) that it owns that id; a *SystemException passes through
// unchanged; any other *UserException and any plain error are wrapped as an
// UnhandledException system exception.
func ToReplyException(err error, stub any) error {
	if err == nil {
		return nil
	}
	if sysExc, ok := err.(*SystemException); ok {
		return sysExc
	}
	if userExc, ok := err.(*UserException); ok {
		if known, ok := stub.(KnownExceptionIDs); ok && known.KnowsExceptionID(userExc.ExceptionID) {
			return userExc
		}
		return &SystemException{ID: UnhandledException, Message: "undeclared user exception: " + userExc.Error()}
	}
	return &SystemException{ID: UnhandledException, Message: err.Error()}
}
