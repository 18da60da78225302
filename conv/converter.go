package conv

import (
	"database/sql/driver"
	"errors"
	"reflect"
	"sync"

	"github.com/viant/toconv"
)

type (
	// Converter provides type conversion functionality
	Converter struct {
		options     Options
		numbers     *numberFormat
		conversions sync.Map // map[typeKey]ConversionFunc
		strategies  []strategy
	}

	// ConversionFunc defines a custom conversion function, dest is a pointer to the registered destination type
	ConversionFunc func(src interface{}, dest interface{}, opts Options) error

	typeKey struct {
		srcType  reflect.Type
		destType reflect.Type
	}

	// strategy produces value of descriptor underlying type; prev holds failure of the preceding strategy
	strategy func(value interface{}, desc *toconv.Descriptor, prev error) (reflect.Value, error)
)

var (
	defaultConverter = NewConverter(DefaultOptions())

	errNoConversion = errors.New("no registered conversion")
)

// NewConverter creates a new type converter with the provided options
func NewConverter(options Options) *Converter {
	options.init()
	ret := &Converter{
		options: options,
		numbers: numberFormatOf(options.Locale),
	}
	ret.strategies = []strategy{ret.custom, ret.coerce, ret.parse}
	return ret
}

// RegisterConversion registers a custom conversion function between source and destination types,
// it is tried before built-in strategies, a nullable destination uses the conversion of its underlying type
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.conversions.Store(typeKey{srcType, destType}, fn)
}

func (c *Converter) custom(value interface{}, desc *toconv.Descriptor, _ error) (reflect.Value, error) {
	fn, ok := c.conversions.Load(typeKey{reflect.TypeOf(value), desc.Underlying})
	if !ok {
		return reflect.Value{}, errNoConversion
	}
	ptr := reflect.New(desc.Underlying)
	if err := fn.(ConversionFunc)(value, ptr.Interface(), c.options); err != nil {
		return ptr.Elem(), newError(ErrInvalidCast, value, desc.Underlying, err)
	}
	return ptr.Elem(), nil
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// Convert converts value to target type, returns nil for a null value
func (c *Converter) Convert(value interface{}, target reflect.Type) (interface{}, error) {
	if target == nil {
		return nil, nil
	}
	value, ok := normalize(value, target)
	if !ok {
		return nil, nil
	}
	srcType := reflect.TypeOf(value)
	if srcType == target {
		return value, nil
	}
	desc := toconv.Describe(target)
	if srcType == desc.Underlying {
		return wrap(desc, reflect.ValueOf(value)), nil
	}
	if desc.Underlying.Kind() == reflect.Interface && srcType.AssignableTo(desc.Underlying) {
		return value, nil
	}
	var err error
	for _, convert := range c.strategies {
		var result reflect.Value
		if result, err = convert(value, desc, err); err == nil {
			return wrap(desc, result), nil
		}
	}
	return nil, err
}

// ConvertOrDefault converts value to target type, returns defaultValue on any failure or a null result
func (c *Converter) ConvertOrDefault(value interface{}, target reflect.Type, defaultValue interface{}) interface{} {
	if value == nil {
		return defaultValue
	}
	result, err := c.Convert(value, target)
	if err != nil || result == nil {
		return defaultValue
	}
	return result
}

// Convert converts value to target type with default options
func Convert(value interface{}, target reflect.Type) (interface{}, error) {
	return defaultConverter.Convert(value, target)
}

// ConvertOrDefault converts value to target type with default options, returns defaultValue on failure
func ConvertOrDefault(value interface{}, target reflect.Type, defaultValue interface{}) interface{} {
	return defaultConverter.ConvertOrDefault(value, target, defaultValue)
}

// normalize resolves pointers, nil containers and driver values, returns false for a null value
func normalize(value interface{}, target reflect.Type) (interface{}, bool) {
	for value != nil {
		rValue := reflect.ValueOf(value)
		rType := rValue.Type()
		switch rType.Kind() {
		case reflect.Ptr:
			if rValue.IsNil() {
				return nil, false
			}
			if rType == target {
				return value, true
			}
			value = rValue.Elem().Interface()
			continue
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rValue.IsNil() {
				return nil, false
			}
		}
		if rType == target || isScalar(rType) {
			return value, true
		}
		if valuer, ok := value.(driver.Valuer); ok {
			value = resolveValuer(valuer)
			if reflect.TypeOf(value) == rType {
				return value, true
			}
			continue
		}
		return value, true
	}
	return nil, false
}

func resolveValuer(valuer driver.Valuer) interface{} {
	value, err := valuer.Value()
	if err != nil {
		return valuer
	}
	return value
}

// isScalar returns true for types with native conversion support, even if they implement driver.Valuer
func isScalar(rType reflect.Type) bool {
	switch toconv.Classify(rType) {
	case toconv.UniqueID, toconv.Decimal, toconv.DateTime:
		return true
	}
	return false
}

func wrap(desc *toconv.Descriptor, value reflect.Value) interface{} {
	if !desc.Nullable {
		return value.Interface()
	}
	ptr := reflect.New(desc.Underlying)
	ptr.Elem().Set(value)
	if ptr.Type() != desc.Type {
		return ptr.Convert(desc.Type).Interface()
	}
	return ptr.Interface()
}
