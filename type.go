package toconv

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Category represents the closed classification of a conversion target
type Category int

const (
	Other Category = iota
	Boolean
	Integer
	Float
	Decimal
	DateTime
	UniqueID
	Enum
	Text
	Sequence
)

var categoryNames = [...]string{"other", "boolean", "integer", "float", "decimal", "dateTime", "uniqueId", "enum", "text", "sequence"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[Other]
	}
	return categoryNames[c]
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(apd.Decimal{})
)

// Descriptor represents a target type classification
type Descriptor struct {
	// Type is the type the descriptor was derived from
	Type reflect.Type
	// Nullable is true when Type is a nullable wrapper
	Nullable bool
	// Underlying is the concrete, never nullable, payload type
	Underlying reflect.Type
	Category   Category
	// Elem is set for Sequence category only
	Elem reflect.Type
}

// RequiresValue returns true if a missing value can not be represented by the descriptor type
func (d *Descriptor) RequiresValue() bool {
	switch d.Type.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.String:
		return false
	}
	return true
}

var descriptors sync.Map // map[reflect.Type]*Descriptor

// Describe returns a cached type descriptor
func Describe(t reflect.Type) *Descriptor {
	if v, ok := descriptors.Load(t); ok {
		return v.(*Descriptor)
	}
	underlying := Unwrap(t)
	ret := &Descriptor{
		Type:       t,
		Nullable:   IsNullable(t),
		Underlying: underlying,
		Category:   Classify(underlying),
	}
	if ret.Category == Sequence {
		ret.Elem = underlying.Elem()
	}
	descriptors.Store(t, ret)
	return ret
}

// IsNullable returns true for a pointer to a non pointer type
func IsNullable(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Ptr && t.Elem().Kind() != reflect.Ptr
}

// Unwrap returns the payload type of a nullable wrapper, or t itself
func Unwrap(t reflect.Type) reflect.Type {
	if IsNullable(t) {
		return t.Elem()
	}
	return t
}

// Classify returns target type category
func Classify(t reflect.Type) Category {
	if t == nil {
		return Other
	}
	t = Unwrap(t)
	switch t {
	case timeType:
		return DateTime
	case uuidType:
		return UniqueID
	case decimalType:
		return Decimal
	}
	if _, ok := LookupEnum(t); ok {
		return Enum
	}
	switch t.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.String:
		return Text
	case reflect.Slice, reflect.Array:
		return Sequence
	}
	return Other
}

// IsSimple returns true for scalar types, nullable wrappers are unwrapped first
func IsSimple(t reflect.Type) bool {
	switch Classify(t) {
	case Sequence, Other:
		return false
	}
	return true
}

// IsSequence returns true for slice and array types
func IsSequence(t reflect.Type) bool {
	if t == nil || t == uuidType {
		return false
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// ElemType returns sequence element type or t itself
func ElemType(t reflect.Type) reflect.Type {
	if IsSequence(t) {
		return t.Elem()
	}
	return t
}

// FriendlyName returns diagnostic type name, i.e. Foo[], Pair<Int32,String>
func FriendlyName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	switch t.Kind() {
	case reflect.Ptr:
		if IsNullable(t) {
			return "Nullable<" + FriendlyName(t.Elem()) + ">"
		}
		return FriendlyName(t.Elem()) + "*"
	case reflect.Slice, reflect.Array:
		if IsSequence(t) && t.Name() == "" {
			return FriendlyName(t.Elem()) + "[]"
		}
	case reflect.Map:
		if t.Name() == "" {
			return "Map<" + FriendlyName(t.Key()) + "," + FriendlyName(t.Elem()) + ">"
		}
	case reflect.Struct:
		if t.Name() == "" {
			names := make([]string, t.NumField())
			for i := range names {
				names[i] = FriendlyName(t.Field(i).Type)
			}
			return "(" + strings.Join(names, ",") + ")"
		}
	case reflect.Interface:
		if t.Name() == "" {
			return "Object"
		}
	}
	return friendlyTypeName(t.Name(), t.PkgPath() == "")
}

func friendlyTypeName(name string, builtin bool) string {
	index := strings.IndexByte(name, '[')
	if index == -1 || !strings.HasSuffix(name, "]") {
		if builtin {
			return upperFirst(name)
		}
		return name
	}
	args := splitTypeArgs(name[index+1 : len(name)-1])
	for i, arg := range args {
		args[i] = friendlyArgName(arg)
	}
	return name[:index] + "<" + strings.Join(args, ",") + ">"
}

// friendlyArgName renders generic argument as reported by reflect, i.e. github.com/foo/bar.Baz
func friendlyArgName(arg string) string {
	switch {
	case strings.HasPrefix(arg, "[]"):
		return friendlyArgName(arg[2:]) + "[]"
	case strings.HasPrefix(arg, "*"):
		return "Nullable<" + friendlyArgName(arg[1:]) + ">"
	}
	head := arg
	if index := strings.IndexByte(arg, '['); index != -1 {
		head = arg[:index]
	}
	qualified := strings.LastIndexByte(head, '.')
	if qualified == -1 {
		return friendlyTypeName(arg, true)
	}
	if slash := strings.LastIndexByte(head, '/'); slash > qualified {
		qualified = -1
	}
	return friendlyTypeName(arg[qualified+1:], false)
}

func splitTypeArgs(list string) []string {
	var result []string
	depth, start := 0, 0
	for i := 0; i < len(list); i++ {
		switch list[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				result = append(result, list[start:i])
				start = i + 1
			}
		}
	}
	return append(result, list[start:])
}

func upperFirst(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
