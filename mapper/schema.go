package mapper

import (
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/francoispqt/gojay"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Schema maps loosely typed records into T using registered fields
type Schema[T any] struct {
	fields []*Field[T]
	*options
}

// NewSchema creates a schema for supplied fields
func NewSchema[T any](fields []*Field[T], opts ...Option) *Schema[T] {
	ret := &Schema[T]{options: newOptions(opts)}
	ret.fields = make([]*Field[T], 0, len(fields))
	for _, field := range fields {
		if field == nil {
			continue
		}
		cloned := *field
		cloned.formatKey(ret.caseFormat)
		ret.fields = append(ret.fields, &cloned)
	}
	return ret
}

// Fields returns schema fields
func (s *Schema[T]) Fields() []*Field[T] {
	return s.fields
}

// Apply sets dest fields present in values, a value that can not be converted sets the field zero value
func (s *Schema[T]) Apply(dest *T, values map[string]interface{}) {
	for _, field := range s.fields {
		value, ok := field.lookup(values)
		if !ok {
			continue
		}
		converted, err := s.converter.Convert(field.prepare(value, s.converter.Options().Location), field.rType)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"field": field.name,
				"type":  field.rType.String(),
				"value": fmt.Sprintf("%v", value),
			}).WithError(err).Debug("substituted zero value")
			converted = field.zero
		}
		field.set(dest, converted)
	}
}

// Map creates T from values
func (s *Schema[T]) Map(values map[string]interface{}) *T {
	ret := new(T)
	s.Apply(ret, values)
	return ret
}

// MapValues creates T from url values, multi values are joined with a comma
func (s *Schema[T]) MapValues(values url.Values) *T {
	record := make(map[string]interface{}, len(values))
	for key, items := range values {
		record[key] = strings.Join(items, ",")
	}
	return s.Map(record)
}

// AsMap returns field values of src keyed by field name, only fields bound with a getter are exported,
// names restrict the result to the listed fields
func (s *Schema[T]) AsMap(src *T, names ...string) map[string]interface{} {
	ret := make(map[string]interface{}, len(s.fields))
	if src == nil {
		return ret
	}
	for _, field := range s.fields {
		if field.get == nil {
			continue
		}
		if len(names) > 0 && !lo.Contains(names, field.name) {
			continue
		}
		ret[field.name] = field.get(src)
	}
	return ret
}

// Import copies src entries into dest, replacing existing keys, reset empties dest first
func Import(dest, src map[string]interface{}, reset bool) {
	if reset {
		clear(dest)
	}
	maps.Copy(dest, src)
}

// DecodeJSON creates T from JSON object
func (s *Schema[T]) DecodeJSON(data []byte) (*T, error) {
	record := object{}
	if err := gojay.UnmarshalJSONObject(data, record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return s.Map(record), nil
}

type object map[string]interface{}

func (o object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	o[key] = value
	return nil
}

func (o object) NKeys() int {
	return 0
}
