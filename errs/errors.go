package errs

// Kind identifies the category of a failure, matching the enumeration used
// throughout the original library so that callers can switch on it instead
// of parsing messages.
type Kind int

const (
	ArgumentEmpty Kind = iota
	ArgumentTooBig
	InvalidID
	InvalidFacility
	InvalidSeverity
	InvalidEncoding
	TargetIncompatible
	TargetPaused
	TargetUnsupported
	TransportProtocolUnsupported
	MemoryAllocationFailure
	StreamWriteFailure
	SocketSendFailure
)

var kindMessages = map[Kind]string{
	ArgumentEmpty:                "a required argument was empty or nil",
	ArgumentTooBig:               "an argument exceeded its maximum allowed size",
	InvalidID:                    "the target id does not refer to an open target",
	InvalidFacility:              "the facility value is not a valid RFC 5424 facility",
	InvalidSeverity:              "the severity value is not a valid RFC 5424 severity",
	InvalidEncoding:              "the string contains characters outside the allowed range",
	TargetIncompatible:           "the operation is not supported by this target type",
	TargetPaused:                 "the target is paused and is not accepting entries",
	TargetUnsupported:            "this backend was not enabled for the current build",
	TransportProtocolUnsupported: "the transport rejected the message",
	MemoryAllocationFailure:      "memory could not be allocated for the operation",
	StreamWriteFailure:           "writing to the target's stream failed",
	SocketSendFailure:            "sending to the target's socket failed",
}

// CodeType tags how Code should be interpreted.
type CodeType int

const (
	CodeNone CodeType = iota
	CodeErrno
)

// Error is the record stored in a goroutine's last-error slot.
type Error struct {
	Kind     Kind
	Message  string
	Code     int
	CodeType CodeType
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error for kind, using the kind's static message and
// attaching an optional OS error code.
func New(kind Kind, code ...int) *Error {
	e := &Error{Kind: kind, Message: kindMessages[kind]}
	if len(code) > 0 {
		e.Code = code[0]
		e.CodeType = CodeErrno
	}
	return e
}
