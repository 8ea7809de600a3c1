package core

import stderrors "errors"

// ErrorKind is the result code of every parse-path operation. It implements
// error so it can be returned directly without allocating.
type ErrorKind int

const (
	OK ErrorKind = iota
	ErrInvalidParam
	ErrBufferTooSmall
	ErrInvalidSentence
	ErrChecksumFailed
	ErrUnknownSentence
	ErrSentenceDisabled
	ErrModuleDisabled
	ErrTooManyFields
	ErrTooFewFields
	ErrParseFailed
	ErrNoData
	ErrAlreadyInit
	ErrNotInit
	errorKindCount
)

var errorKindNames = [errorKindCount]string{
	OK:                  "success",
	ErrInvalidParam:     "invalid parameter",
	ErrBufferTooSmall:   "buffer too small",
	ErrInvalidSentence:  "invalid sentence",
	ErrChecksumFailed:   "checksum failed",
	ErrUnknownSentence:  "unknown sentence type",
	ErrSentenceDisabled: "sentence type disabled",
	ErrModuleDisabled:   "module disabled",
	ErrTooManyFields:    "too many fields",
	ErrTooFewFields:     "too few fields",
	ErrParseFailed:      "field parse failed",
	ErrNoData:           "no data",
	ErrAlreadyInit:      "context already initialized",
	ErrNotInit:          "context not initialized",
}

func (k ErrorKind) Error() string {
	return k.String()
}

func (k ErrorKind) String() string {
	if k < 0 || k >= errorKindCount {
		return "unknown error"
	}
	return errorKindNames[k]
}

// Code is the numeric result code reported to error callbacks: 0 for OK and
// negative for failures.
func (k ErrorKind) Code() int {
	return -int(k)
}

// ErrorClass groups error kinds by how a caller is expected to react.
type ErrorClass int

const (
	ClassNone ErrorClass = iota
	ClassArgumentMisuse
	ClassBuffer
	ClassFraming
	ClassIntegrity
	ClassSupport
	ClassMalformed
	ClassField
	ClassLifecycle
)

var errorClassNames = [...]string{
	ClassNone:           "none",
	ClassArgumentMisuse: "argument",
	ClassBuffer:         "buffer",
	ClassFraming:        "framing",
	ClassIntegrity:      "integrity",
	ClassSupport:        "support",
	ClassMalformed:      "malformed",
	ClassField:          "field",
	ClassLifecycle:      "lifecycle",
}

func (c ErrorClass) String() string {
	if c < 0 || int(c) >= len(errorClassNames) {
		return "unknown"
	}
	return errorClassNames[c]
}

func (k ErrorKind) Class() ErrorClass {
	switch k {
	case OK:
		return ClassNone
	case ErrInvalidParam:
		return ClassArgumentMisuse
	case ErrBufferTooSmall:
		return ClassBuffer
	case ErrInvalidSentence:
		return ClassFraming
	case ErrChecksumFailed:
		return ClassIntegrity
	case ErrUnknownSentence, ErrSentenceDisabled, ErrModuleDisabled:
		return ClassSupport
	case ErrTooManyFields, ErrTooFewFields:
		return ClassMalformed
	case ErrParseFailed, ErrNoData:
		return ClassField
	case ErrAlreadyInit, ErrNotInit:
		return ClassLifecycle
	}
	return ClassNone
}

// Fatal reports whether the error is a caller bug rather than bad input.
func (k ErrorKind) Fatal() bool {
	switch k.Class() {
	case ClassArgumentMisuse, ClassBuffer, ClassLifecycle:
		return true
	}
	return false
}

// KindOf extracts the ErrorKind carried by err, looking through wrapping.
// Errors of any other type map to ErrParseFailed.
func KindOf(err error) ErrorKind {
	if err == nil {
		return OK
	}
	var kind ErrorKind
	if stderrors.As(err, &kind) {
		return kind
	}
	return ErrParseFailed
}
