package conv

import (
	"reflect"

	"github.com/viant/toconv"
)

// ConvertTo converts value to T, a null value for T requiring a value returns ErrMissingValue
func ConvertTo[T any](c *Converter, value interface{}) (T, error) {
	var zero T
	target := reflect.TypeOf((*T)(nil)).Elem()
	result, err := c.Convert(value, target)
	if err != nil {
		return zero, err
	}
	if result == nil {
		if toconv.Describe(target).RequiresValue() {
			return zero, newError(ErrMissingValue, value, target, nil)
		}
		return zero, nil
	}
	return result.(T), nil
}

// ConvertToOr converts value to T, returns defaultValue on any failure or a null result
func ConvertToOr[T any](c *Converter, value interface{}, defaultValue T) T {
	if value == nil {
		return defaultValue
	}
	result, err := c.Convert(value, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil || result == nil {
		return defaultValue
	}
	return result.(T)
}

// To converts value to T with default options
func To[T any](value interface{}) (T, error) {
	return ConvertTo[T](defaultConverter, value)
}

// ToOr converts value to T with default options, returns defaultValue on failure
func ToOr[T any](value interface{}, defaultValue T) T {
	return ConvertToOr(defaultConverter, value, defaultValue)
}
