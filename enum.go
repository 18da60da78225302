package toconv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

type (
	// Integral represents integer types an enum can be declared with
	Integral interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}

	// Enumeration represents registered enumeration, value ordinals follow declaration order
	Enumeration struct {
		rType  reflect.Type
		names  []string
		byName map[string]int
	}
)

var enums sync.Map // map[reflect.Type]*Enumeration

// RegisterEnum registers enum type with declared value names, it panics for non integer types
func RegisterEnum(rType reflect.Type, names ...string) *Enumeration {
	switch rType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		panic(fmt.Sprintf("toconv: enum %v has to be an integer type", rType))
	}
	ret := &Enumeration{rType: rType, names: append([]string{}, names...), byName: make(map[string]int, len(names))}
	for i, name := range names {
		ret.byName[name] = i
	}
	enums.Store(rType, ret)
	descriptors.Delete(rType)
	descriptors.Delete(reflect.PointerTo(rType))
	return ret
}

// RegisterEnumOf registers T enum
func RegisterEnumOf[T Integral](names ...string) *Enumeration {
	return RegisterEnum(reflect.TypeOf(T(0)), names...)
}

// LookupEnum returns registered enum for supplied type
func LookupEnum(rType reflect.Type) (*Enumeration, bool) {
	if v, ok := enums.Load(rType); ok {
		return v.(*Enumeration), true
	}
	return nil, false
}

// Type returns enum type
func (e *Enumeration) Type() reflect.Type {
	return e.rType
}

// Len returns number of declared values
func (e *Enumeration) Len() int {
	return len(e.names)
}

// Name returns declared name for an ordinal
func (e *Enumeration) Name(ordinal int) (string, bool) {
	if ordinal < 0 || ordinal >= len(e.names) {
		return "", false
	}
	return e.names[ordinal], true
}

// Ordinal resolves text to ordinal: exact name, case-insensitive name, then numeric ordinal
func (e *Enumeration) Ordinal(text string) (int, bool) {
	if ordinal, ok := e.byName[text]; ok {
		return ordinal, true
	}
	for i, name := range e.names {
		if strings.EqualFold(name, text) {
			return i, true
		}
	}
	ordinal, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || ordinal < 0 || ordinal >= len(e.names) {
		return 0, false
	}
	return ordinal, true
}

// Value returns enum value for an ordinal
func (e *Enumeration) Value(ordinal int) reflect.Value {
	ret := reflect.New(e.rType).Elem()
	switch e.rType.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ret.SetUint(uint64(ordinal))
	default:
		ret.SetInt(int64(ordinal))
	}
	return ret
}

// OrdinalOf returns ordinal of an enum value
func (e *Enumeration) OrdinalOf(value reflect.Value) (int, bool) {
	var ordinal int
	switch value.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value.Uint() >= uint64(len(e.names)) {
			return 0, false
		}
		ordinal = int(value.Uint())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value.Int() < 0 || value.Int() >= int64(len(e.names)) {
			return 0, false
		}
		ordinal = int(value.Int())
	default:
		return 0, false
	}
	return ordinal, true
}
