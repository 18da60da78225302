package conv

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/viant/toconv"
)

// coerce applies generic widen, narrow and parse rules between common scalar types
func (c *Converter) coerce(value interface{}, desc *toconv.Descriptor, _ error) (reflect.Value, error) {
	source := reflect.ValueOf(value)
	target := desc.Underlying
	switch desc.Category {
	case toconv.Text:
		return c.toText(source, target)
	case toconv.Boolean:
		return c.toBool(source, target)
	case toconv.Integer:
		return c.toInteger(source, target)
	case toconv.Float:
		return c.toFloat(source, target)
	case toconv.Decimal:
		return c.toDecimal(source, target)
	case toconv.DateTime:
		return c.toTime(source, target)
	case toconv.UniqueID:
		return c.toUUID(source, target)
	case toconv.Enum:
		return c.toEnum(source, target)
	case toconv.Sequence:
		return c.toSequence(source, target)
	}
	return c.toOther(source, target)
}

func textOf(source reflect.Value) (string, bool) {
	switch source.Kind() {
	case reflect.String:
		return source.String(), true
	case reflect.Slice:
		if source.Type().Elem().Kind() == reflect.Uint8 {
			return string(source.Bytes()), true
		}
	}
	return "", false
}

// format returns textual representation of a scalar value
func (c *Converter) format(source reflect.Value) (string, bool) {
	if text, ok := textOf(source); ok {
		return text, true
	}
	if enum, ok := toconv.LookupEnum(source.Type()); ok {
		if ordinal, ok := enum.OrdinalOf(source); ok {
			return enum.Name(ordinal)
		}
	}
	switch actual := source.Interface().(type) {
	case time.Time:
		return actual.Format(time.RFC3339Nano), true
	case uuid.UUID:
		return actual.String(), true
	case apd.Decimal:
		return actual.String(), true
	case fmt.Stringer:
		return actual.String(), true
	}
	switch source.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(source.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(source.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(source.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(source.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(source.Float(), 'f', -1, 64), true
	}
	return "", false
}

func (c *Converter) toText(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	text, ok := c.format(source)
	if !ok {
		return result, invalidCast(source.Interface(), target)
	}
	result.SetString(text)
	return result, nil
}

func (c *Converter) toBool(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	switch source.Kind() {
	case reflect.Bool:
		result.SetBool(source.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result.SetBool(source.Int() != 0)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result.SetBool(source.Uint() != 0)
	case reflect.Float32, reflect.Float64:
		result.SetBool(source.Float() != 0)
	default:
		if text, ok := textOf(source); ok {
			switch trimmed := strings.TrimSpace(text); {
			case strings.EqualFold(trimmed, "true"):
				result.SetBool(true)
			case strings.EqualFold(trimmed, "false"):
				result.SetBool(false)
			default:
				return result, newError(ErrFormat, text, target, nil)
			}
			return result, nil
		}
		if d, ok := source.Interface().(apd.Decimal); ok {
			result.SetBool(!d.IsZero())
			return result, nil
		}
		return result, invalidCast(source.Interface(), target)
	}
	return result, nil
}

func (c *Converter) toInteger(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	var err error
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		err = setInteger(result, source.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		err = setInteger(result, source.Uint())
	case reflect.Float32, reflect.Float64:
		err = setIntegerFromFloat(result, source.Float())
	case reflect.Bool:
		err = setInteger(result, boolToInt64(source.Bool()))
	default:
		if text, ok := textOf(source); ok {
			return result, c.parseInteger(text, result)
		}
		d, ok := source.Interface().(apd.Decimal)
		if !ok {
			return result, invalidCast(source.Interface(), target)
		}
		f, dErr := d.Float64()
		if dErr != nil {
			return result, newError(ErrFormat, source.Interface(), target, dErr)
		}
		err = setIntegerFromFloat(result, f)
	}
	if err != nil {
		return result, newError(ErrOverflow, source.Interface(), target, err)
	}
	return result, nil
}

// parseInteger parses base 10 integer text, fractions are rejected
func (c *Converter) parseInteger(text string, result reflect.Value) error {
	target := result.Type()
	normalized := c.numbers.integer(text)
	if isUnsigned(result.Kind()) {
		if strings.HasPrefix(normalized, "-") {
			u, err := strconv.ParseUint(normalized[1:], 10, 64)
			if err == nil && u == 0 {
				return nil
			}
			if err == nil || errors.Is(err, strconv.ErrRange) {
				return newError(ErrOverflow, text, target, fmt.Errorf("%v is negative", text))
			}
			return newError(ErrFormat, text, target, err)
		}
		u, err := strconv.ParseUint(strings.TrimPrefix(normalized, "+"), 10, 64)
		if err != nil {
			return numberError(text, target, err)
		}
		if err = setInteger(result, u); err != nil {
			return newError(ErrOverflow, text, target, err)
		}
		return nil
	}
	i, err := strconv.ParseInt(normalized, 10, 64)
	if err != nil {
		return numberError(text, target, err)
	}
	if err = setInteger(result, i); err != nil {
		return newError(ErrOverflow, text, target, err)
	}
	return nil
}

func numberError(text string, target reflect.Type, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return newError(ErrOverflow, text, target, err)
	}
	return newError(ErrFormat, text, target, err)
}

// setInteger sets dst integer with range check for dst kind
func setInteger[T int64 | uint64](dst reflect.Value, value T) error {
	var err error
	switch dst.Kind() {
	case reflect.Int:
		_, err = safecast.ToInt(value)
	case reflect.Int8:
		_, err = safecast.ToInt8(value)
	case reflect.Int16:
		_, err = safecast.ToInt16(value)
	case reflect.Int32:
		_, err = safecast.ToInt32(value)
	case reflect.Int64:
		_, err = safecast.ToInt64(value)
	case reflect.Uint:
		_, err = safecast.ToUint(value)
	case reflect.Uint8:
		_, err = safecast.ToUint8(value)
	case reflect.Uint16:
		_, err = safecast.ToUint16(value)
	case reflect.Uint32:
		_, err = safecast.ToUint32(value)
	case reflect.Uint64:
		_, err = safecast.ToUint64(value)
	}
	if err != nil {
		return err
	}
	if isUnsigned(dst.Kind()) {
		dst.SetUint(uint64(value))
	} else {
		dst.SetInt(int64(value))
	}
	return nil
}

// setIntegerFromFloat rounds half to even before range check
func setIntegerFromFloat(dst reflect.Value, f float64) error {
	f = math.RoundToEven(f)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return fmt.Errorf("%v is not finite", f)
	case f >= math.MinInt64 && f < -math.MinInt64:
		return setInteger(dst, int64(f))
	case f > 0 && f < 2*-float64(math.MinInt64):
		return setInteger(dst, uint64(f))
	}
	return fmt.Errorf("%v is out of range", f)
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func (c *Converter) toFloat(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	var f float64
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(source.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f = float64(source.Uint())
	case reflect.Float32, reflect.Float64:
		f = source.Float()
	case reflect.Bool:
		f = float64(boolToInt64(source.Bool()))
	default:
		if text, ok := textOf(source); ok {
			var err error
			if f, err = strconv.ParseFloat(c.numbers.float(text), target.Bits()); err != nil {
				return result, numberError(text, target, err)
			}
			break
		}
		d, ok := source.Interface().(apd.Decimal)
		if !ok {
			return result, invalidCast(source.Interface(), target)
		}
		var err error
		if f, err = d.Float64(); err != nil {
			return result, newError(ErrOverflow, source.Interface(), target, err)
		}
	}
	if target.Kind() == reflect.Float32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return result, newError(ErrOverflow, source.Interface(), target, fmt.Errorf("%v exceeds float32 range", f))
	}
	result.SetFloat(f)
	return result, nil
}

func (c *Converter) toDecimal(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	ptr := reflect.New(target)
	d := ptr.Interface().(*apd.Decimal)
	var err error
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d.SetInt64(source.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		_, _, err = d.SetString(strconv.FormatUint(source.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := source.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ptr.Elem(), newError(ErrOverflow, source.Interface(), target, fmt.Errorf("%v is not finite", f))
		}
		_, _, err = d.SetString(strconv.FormatFloat(f, 'g', -1, source.Type().Bits()))
	case reflect.Bool:
		d.SetInt64(boolToInt64(source.Bool()))
	default:
		text, ok := textOf(source)
		if !ok {
			return ptr.Elem(), invalidCast(source.Interface(), target)
		}
		if _, _, err = d.SetString(c.numbers.float(text)); err != nil {
			return ptr.Elem(), newError(ErrFormat, text, target, err)
		}
	}
	if err != nil {
		return ptr.Elem(), newError(ErrFormat, source.Interface(), target, err)
	}
	return ptr.Elem(), nil
}

func (c *Converter) toTime(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	var ts time.Time
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ts = unixTime(source.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := source.Uint()
		if u > math.MaxInt64 {
			return result, newError(ErrOverflow, source.Interface(), target, nil)
		}
		ts = unixTime(int64(u))
	case reflect.Float32, reflect.Float64:
		f := source.Float()
		seconds := int64(f)
		ts = time.Unix(seconds, int64((f-float64(seconds))*1e9))
	default:
		if text, ok := textOf(source); ok {
			// textual dates are resolved by the layout fallback
			return result, newError(ErrFormat, text, target, nil)
		}
		if !source.Type().ConvertibleTo(target) {
			return result, invalidCast(source.Interface(), target)
		}
		return source.Convert(target), nil
	}
	result.Set(reflect.ValueOf(ts.In(c.options.Location)))
	return result, nil
}

// unixTime treats very large values as nanoseconds
func unixTime(value int64) time.Time {
	if value > 1e10 || value < -1e10 {
		return time.Unix(0, value)
	}
	return time.Unix(value, 0)
}

func (c *Converter) toUUID(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	if source.Kind() == reflect.Slice && source.Type().Elem().Kind() == reflect.Uint8 && source.Len() == len(uuid.UUID{}) {
		id, err := uuid.FromBytes(source.Bytes())
		if err != nil {
			return result, newError(ErrFormat, source.Interface(), target, err)
		}
		result.Set(reflect.ValueOf(id))
		return result, nil
	}
	if text, ok := textOf(source); ok {
		return result, newError(ErrFormat, text, target, nil)
	}
	if source.Kind() == reflect.Array && source.Type().ConvertibleTo(target) {
		return source.Convert(target), nil
	}
	return result, invalidCast(source.Interface(), target)
}

func (c *Converter) toEnum(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	result := reflect.New(target).Elem()
	enum, _ := toconv.LookupEnum(target)
	switch source.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ordinal, ok := enum.OrdinalOf(source)
		if !ok {
			return result, newError(ErrOverflow, source.Interface(), target, fmt.Errorf("ordinal out of range [0, %d)", enum.Len()))
		}
		return enum.Value(ordinal), nil
	case reflect.Float32, reflect.Float64:
		f := source.Float()
		if f != math.Trunc(f) {
			return result, invalidCast(source.Interface(), target)
		}
		ordinal, ok := enum.OrdinalOf(reflect.ValueOf(int64(f)))
		if !ok {
			return result, newError(ErrOverflow, source.Interface(), target, fmt.Errorf("ordinal out of range [0, %d)", enum.Len()))
		}
		return enum.Value(ordinal), nil
	}
	if text, ok := textOf(source); ok {
		// names are resolved by the enum fallback
		return result, newError(ErrFormat, text, target, nil)
	}
	return result, invalidCast(source.Interface(), target)
}

func (c *Converter) toSequence(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	elemType := target.Elem()
	if target.Kind() == reflect.Slice && elemType.Kind() == reflect.Uint8 {
		if text, ok := textOf(source); ok {
			result := reflect.New(target).Elem()
			result.SetBytes([]byte(text))
			return result, nil
		}
	}
	switch source.Kind() {
	case reflect.Slice, reflect.Array:
		length := source.Len()
		var result reflect.Value
		if target.Kind() == reflect.Array {
			if length > target.Len() {
				return reflect.New(target).Elem(), newError(ErrOverflow, source.Interface(), target, fmt.Errorf("%d elements exceed array length %d", length, target.Len()))
			}
			result = reflect.New(target).Elem()
		} else {
			result = reflect.MakeSlice(target, length, length)
		}
		for i := 0; i < length; i++ {
			item, err := c.Convert(source.Index(i).Interface(), elemType)
			if err != nil {
				return result, fmt.Errorf("failed to convert element %d: %w", i, err)
			}
			if item != nil {
				result.Index(i).Set(reflect.ValueOf(item))
			}
		}
		return result, nil
	}
	if target.Kind() != reflect.Slice {
		return reflect.New(target).Elem(), invalidCast(source.Interface(), target)
	}
	item, err := c.Convert(source.Interface(), elemType)
	if err != nil {
		return reflect.New(target).Elem(), err
	}
	result := reflect.MakeSlice(target, 1, 1)
	if item != nil {
		result.Index(0).Set(reflect.ValueOf(item))
	}
	return result, nil
}

func (c *Converter) toOther(source reflect.Value, target reflect.Type) (reflect.Value, error) {
	if target.Kind() == reflect.Map && source.Kind() == reflect.Map {
		result := reflect.MakeMapWithSize(target, source.Len())
		iter := source.MapRange()
		for iter.Next() {
			key, err := c.Convert(iter.Key().Interface(), target.Key())
			if err != nil {
				return result, fmt.Errorf("failed to convert map key: %w", err)
			}
			item, err := c.Convert(iter.Value().Interface(), target.Elem())
			if err != nil {
				return result, fmt.Errorf("failed to convert map value: %w", err)
			}
			keyValue, itemValue := reflect.Zero(target.Key()), reflect.Zero(target.Elem())
			if key != nil {
				keyValue = reflect.ValueOf(key)
			}
			if item != nil {
				itemValue = reflect.ValueOf(item)
			}
			result.SetMapIndex(keyValue, itemValue)
		}
		return result, nil
	}
	if source.Kind() == target.Kind() && source.Type().ConvertibleTo(target) {
		return source.Convert(target), nil
	}
	return reflect.New(target).Elem(), invalidCast(source.Interface(), target)
}
