package mapper

import (
	"reflect"
	"strings"
)

// splitRepeated splits comma separated text, an enclosing [ ] is removed, blank items are skipped unless elements are text
func splitRepeated(text string, elem reflect.Type) []string {
	if text = strings.TrimSpace(text); text == "" {
		return []string{}
	}
	if text[0] == '[' && text[len(text)-1] == ']' {
		text = text[1 : len(text)-1]
	}
	elements := strings.Split(text, ",")
	if elem.Kind() == reflect.String {
		return elements
	}
	result := make([]string, 0, len(elements))
	for _, item := range elements {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}
