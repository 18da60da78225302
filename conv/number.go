package conv

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberFormat holds locale separators
type numberFormat struct {
	group   string
	decimal string
}

var numberFormats sync.Map // map[language.Tag]*numberFormat

// numberFormatOf detects locale separators by formatting a reference number
func numberFormatOf(tag language.Tag) *numberFormat {
	if v, ok := numberFormats.Load(tag); ok {
		return v.(*numberFormat)
	}
	ret := &numberFormat{group: ",", decimal: "."}
	p := message.NewPrinter(tag)
	formatted := []rune(p.Sprintf("%v", number.Decimal(1234567.5)))
	var separators []rune
	for _, r := range formatted {
		if !unicode.IsDigit(r) {
			separators = append(separators, r)
		}
	}
	if count := len(separators); count > 0 {
		ret.decimal = string(separators[count-1])
		ret.group = ""
		if count > 1 {
			ret.group = string(separators[0])
		}
	}
	numberFormats.Store(tag, ret)
	return ret
}

// integer returns integer text, decimal separator is preserved so that fractions fail
func (f *numberFormat) integer(text string) string {
	return strings.TrimSpace(text)
}

// float returns text with group separators removed and decimal separator replaced with a dot
func (f *numberFormat) float(text string) string {
	text = strings.TrimSpace(text)
	if f.group != "" {
		text = strings.ReplaceAll(text, f.group, "")
		if unicode.IsSpace([]rune(f.group)[0]) {
			text = strings.ReplaceAll(text, " ", "")
		}
	}
	if f.decimal != "." {
		text = strings.ReplaceAll(text, f.decimal, ".")
	}
	return text
}
