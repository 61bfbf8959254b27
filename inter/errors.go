package inter

import (
	"github.com/pkg/errors"
)

// Record-level decode error kinds. Primitive failures (truncation, bad UTF-8, negative
// list counts) surface as lebin.ErrUnexpectedEOF and lebin.ErrInvalidEncoding.
var (
	ErrInvalidEnumValue           = errors.New("invalid enum value")
	ErrInvalidBondType            = errors.New("invalid bond type")
	ErrFormatVersionMismatch      = errors.New("unsupported format version")
	ErrStructuralSentinelMismatch = errors.New("structural sentinel mismatch")
)
