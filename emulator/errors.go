package emulator

import "errors"

// Protocol violations. The command stream has no resynchronization
// mechanism, so any of these aborts the remainder of the stream
var (
	ErrSubchannelBound       = errors.New("subchannel is already bound")
	ErrSubchannelUnbound     = errors.New("subchannel has no bound engine")
	ErrUnknownEngine         = errors.New("unknown engine id")
	ErrUnknownMode           = errors.New("unknown submission mode")
	ErrNoArguments           = errors.New("increase-once header with no arguments")
	ErrMacroCodeWithoutEntry = errors.New("macro code word without a selected entry")
	ErrUnmappedAddress       = errors.New("unmapped GPU virtual address")
)
