package conv

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/toconv"
)

var (
	// ErrInvalidCast is returned when source and target types are incompatible
	ErrInvalidCast = errors.New("invalid cast")
	// ErrFormat is returned when every textual strategy failed for target category
	ErrFormat = errors.New("format error")
	// ErrMissingValue is returned when no value was supplied for a target requiring one
	ErrMissingValue = errors.New("missing required value")
	// ErrOverflow is returned when numeric magnitude exceeds target range
	ErrOverflow = errors.New("overflow")
)

// Error represents conversion failure
type Error struct {
	// Kind is one of ErrInvalidCast, ErrFormat, ErrMissingValue, ErrOverflow
	Kind   error
	Value  interface{}
	Target reflect.Type
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: unable to convert %v (%T) to %s", e.Kind, e.Value, e.Value, toconv.FriendlyName(e.Target))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns error kind and underlying cause
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, value interface{}, target reflect.Type, err error) *Error {
	return &Error{Kind: kind, Value: value, Target: target, Err: err}
}

func invalidCast(value interface{}, target reflect.Type) *Error {
	return newError(ErrInvalidCast, value, target, nil)
}
