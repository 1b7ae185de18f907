package armature

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error taxonomy. Every failure returned by the loaders, the assembler and the
// compiler wraps exactly one of these, so callers can branch with errors.Is.
var (
	ErrParse                  = errors.New("armature: parse error")
	ErrUnknownRegion          = errors.New("armature: unknown texture region")
	ErrUnknownParent          = errors.New("armature: unknown parent")
	ErrUnknownAnimation       = errors.New("armature: unknown animation")
	ErrUnknownAnimationTarget = errors.New("armature: unknown animation target")
	ErrDuplicateIdentity      = errors.New("armature: duplicate node identity")
	ErrParentCycle            = errors.New("armature: parent chain does not reach root")
	ErrNodeNotFound           = errors.New("armature: node not found")
)

// RecordError reports the document record and field that aborted an
// assembly or compile pass.
type RecordError struct {
	Record NodeIdentity
	Field  string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Record, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func recordErr(id NodeIdentity, field string, err error) *RecordError {
	return &RecordError{Record: id, Field: field, Err: err}
}

// parseErrorf wraps ErrParse with a formatted location.
func parseErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrParse, format, args...)
}
