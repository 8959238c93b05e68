package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

const (
	// input err
	ErrReadInput = 1101
	ErrOpenInput = 1102

	// digest err
	ErrDecodeDigest   = 1201
	ErrDigestMismatch = 1202

	// worker pool err
	ErrPoolCreate = 1301
	ErrPoolSubmit = 1302
	ErrPoolClosed = 1303

	// config err
	ErrConfigRead    = 1401
	ErrConfigInvalid = 1402

	// other err
	ErrUnknown = 1701
)

var ErrCode = map[uint32]string{
	ErrReadInput:      "Failed to read input",
	ErrOpenInput:      "Failed to open input",
	ErrDecodeDigest:   "Digest must be a hexadecimal string of at most 64 digits",
	ErrDigestMismatch: "Digest mismatch",
	ErrPoolCreate:     "Failed to create worker pool",
	ErrPoolSubmit:     "Failed to submit task to worker pool",
	ErrPoolClosed:     "Worker pool is closed",
	ErrConfigRead:     "Failed to read config file",
	ErrConfigInvalid:  "Invalid config",
	ErrUnknown:        "Unknown error",
}

// CodedError pairs one of the codes above with its cause.
type CodedError struct {
	Code  uint32
	cause error
}

// New returns a CodedError carrying only the description of code.
func New(code uint32) error {
	return &CodedError{Code: code}
}

// Wrap annotates err with code. It returns nil when err is nil.
func Wrap(err error, code uint32) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, cause: pkgerrors.WithStack(err)}
}

// Wrapf annotates err with code and a formatted message.
func Wrapf(err error, code uint32, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, cause: pkgerrors.Wrapf(err, format, args...)}
}

func (e *CodedError) Error() string {
	desc, ok := ErrCode[e.Code]
	if !ok {
		desc = ErrCode[ErrUnknown]
	}
	if e.cause == nil {
		return fmt.Sprintf("%s (%d)", desc, e.Code)
	}
	return fmt.Sprintf("%s (%d): %v", desc, e.Code, e.cause)
}

// Cause returns the innermost error, so pkg/errors.Cause sees through a
// CodedError.
func (e *CodedError) Cause() error {
	if e.cause == nil {
		return nil
	}
	return pkgerrors.Cause(e.cause)
}

type causer interface {
	Cause() error
}

// Code returns the code of the outermost CodedError in the cause chain of
// err, or ErrUnknown.
func Code(err error) uint32 {
	for err != nil {
		if e, ok := err.(*CodedError); ok {
			return e.Code
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return ErrUnknown
}
