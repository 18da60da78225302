package conv

import (
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/viant/toconv"
	ftime "github.com/viant/toconv/format/time"
)

var (
	// TruthyLiterals are case-insensitive text values converted to true
	TruthyLiterals = []string{"yes", "1", "-1", "checked", "on", "true"}
	// FalsyLiterals are case-insensitive text values converted to false
	FalsyLiterals = []string{"no", "0", "off", "false"}
)

// parse applies category specific text parsing, other categories surface the preceding failure
func (c *Converter) parse(value interface{}, desc *toconv.Descriptor, prev error) (reflect.Value, error) {
	target := desc.Underlying
	result := reflect.New(target).Elem()
	text, ok := c.format(reflect.ValueOf(value))
	if !ok {
		return result, prev
	}
	switch desc.Category {
	case toconv.Boolean:
		switch {
		case containsFold(TruthyLiterals, text):
			result.SetBool(true)
		case containsFold(FalsyLiterals, text):
			result.SetBool(false)
		default:
			return result, newError(ErrFormat, value, target, nil)
		}
		return result, nil
	case toconv.DateTime:
		ts, err := ftime.Parse(text, c.options.Location)
		if err != nil {
			return result, newError(ErrFormat, value, target, err)
		}
		result.Set(reflect.ValueOf(ts))
		return result, nil
	case toconv.UniqueID:
		id, err := uuid.Parse(text)
		if err != nil {
			return result, newError(ErrFormat, value, target, err)
		}
		result.Set(reflect.ValueOf(id))
		return result, nil
	case toconv.Enum:
		enum, _ := toconv.LookupEnum(target)
		ordinal, ok := enum.Ordinal(text)
		if !ok {
			return result, newError(ErrFormat, value, target, nil)
		}
		return enum.Value(ordinal), nil
	}
	return result, prev
}

func containsFold(literals []string, text string) bool {
	return lo.ContainsBy(literals, func(literal string) bool {
		return strings.EqualFold(literal, text)
	})
}
