package mapper

import (
	"reflect"
	"time"

	"github.com/viant/tagly/format/text"
	"github.com/viant/toconv"
	ftime "github.com/viant/toconv/format/time"
)

// Field represents a named record field with its setter
type Field[T any] struct {
	name     string
	key      string
	rType    reflect.Type
	desc     *toconv.Descriptor
	zero     interface{}
	patterns []string
	set      func(dest *T, value interface{})
	get      func(src *T) interface{}
}

// Name returns field name
func (f *Field[T]) Name() string {
	return f.name
}

// Type returns field value type
func (f *Field[T]) Type() reflect.Type {
	return f.rType
}

// Bind creates a field setting V values with setter
func Bind[T any, V any](name string, setter func(dest *T, value V)) *Field[T] {
	var zero V
	rType := reflect.TypeOf((*V)(nil)).Elem()
	return &Field[T]{
		name:  name,
		rType: rType,
		desc:  toconv.Describe(rType),
		zero:  zero,
		set: func(dest *T, value interface{}) {
			v, _ := value.(V)
			setter(dest, v)
		},
	}
}

// BindAccessor creates a field with a setter and a getter, getter values are exported by Schema.AsMap
func BindAccessor[T any, V any](name string, getter func(src *T) V, setter func(dest *T, value V)) *Field[T] {
	ret := Bind(name, setter)
	ret.get = func(src *T) interface{} {
		return getter(src)
	}
	return ret
}

// WithDateFormat sets yyyyMMdd style patterns tried before the converter date layouts
func (f *Field[T]) WithDateFormat(patterns ...string) *Field[T] {
	f.patterns = patterns
	return f
}

// prepare adjusts textual value for field type
func (f *Field[T]) prepare(value interface{}, loc *time.Location) interface{} {
	text, ok := value.(string)
	if !ok {
		return value
	}
	switch f.desc.Category {
	case toconv.Sequence:
		if f.desc.Underlying.Kind() == reflect.Slice && f.desc.Elem.Kind() != reflect.Uint8 {
			return splitRepeated(text, f.desc.Elem)
		}
	case toconv.DateTime:
		if len(f.patterns) == 0 {
			return value
		}
		if ts, err := ftime.ParseExact(text, f.patterns, loc); err == nil {
			return ts
		}
	}
	return value
}

func (f *Field[T]) formatKey(caseFormat text.CaseFormat) {
	f.key = ""
	if !caseFormat.IsDefined() {
		return
	}
	src := text.DetectCaseFormat(f.name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	if key := src.Format(f.name, caseFormat); key != f.name {
		f.key = key
	}
}

func (f *Field[T]) lookup(values map[string]interface{}) (interface{}, bool) {
	if value, ok := values[f.name]; ok {
		return value, true
	}
	if f.key == "" {
		return nil, false
	}
	value, ok := values[f.key]
	return value, ok
}
