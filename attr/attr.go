// Package attr reads typed values from textual attribute sources such as query
// strings and XML element attributes.
package attr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/viant/toconv/conv"
)

var defaultConverter = conv.NewConverter(conv.DefaultOptions())

// Source looks up attribute text by name
type Source interface {
	Lookup(name string) (string, bool)
}

// Values adapts url values, multi values are joined with a comma
type Values url.Values

// Lookup returns attribute text
func (v Values) Lookup(name string) (string, bool) {
	items, ok := v[name]
	if !ok {
		return "", false
	}
	return strings.Join(items, ","), true
}

// ParseQuery parses raw query into Values
func ParseQuery(raw string) (Values, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}
	return Values(values), nil
}

// Element adapts XML element attributes, Lookup matches attributes without a namespace
type Element xml.StartElement

// Lookup returns text of the attribute with local name and no namespace
func (e Element) Lookup(name string) (string, bool) {
	return e.LookupNS(name, "")
}

// LookupNS returns text of the attribute with local name in namespace URI
func (e Element) LookupNS(name, namespace string) (string, bool) {
	for _, attr := range e.Attr {
		if attr.Name.Local == name && attr.Name.Space == namespace {
			return attr.Value, true
		}
	}
	return "", false
}

// Namespace returns a source of element attributes in namespace URI
func (e Element) Namespace(namespace string) Source {
	return namespaced{element: e, namespace: namespace}
}

type namespaced struct {
	element   Element
	namespace string
}

func (n namespaced) Lookup(name string) (string, bool) {
	return n.element.LookupNS(name, n.namespace)
}

// ParseElement parses root element attributes of XML document
func ParseElement(data []byte) (Element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Element{}, errors.New("failed to parse element: no root element")
			}
			return Element{}, fmt.Errorf("failed to parse element: %w", err)
		}
		if start, ok := token.(xml.StartElement); ok {
			return Element(start.Copy()), nil
		}
	}
}

// Get converts named attribute to T, returns defaultValue when attribute is absent or empty
func Get[T any](src Source, name string, defaultValue T) (T, error) {
	return GetWith(defaultConverter, src, name, defaultValue)
}

// GetWith converts named attribute to T with converter, returns defaultValue when attribute is absent or empty
func GetWith[T any](converter *conv.Converter, src Source, name string, defaultValue T) (T, error) {
	text, ok := src.Lookup(name)
	if !ok || text == "" {
		return defaultValue, nil
	}
	result, err := conv.ConvertTo[T](converter, text)
	if err != nil {
		return defaultValue, fmt.Errorf("attribute %v: %w", name, err)
	}
	return result, nil
}
