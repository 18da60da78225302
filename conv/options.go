package conv

import (
	"time"

	"golang.org/x/text/language"
)

// Options contains configuration for the converter
type Options struct {
	// Locale drives decimal and group separators used when parsing numeric text
	Locale language.Tag
	// Location is used for date text without zone information
	Location *time.Location
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		Locale:   language.AmericanEnglish,
		Location: time.UTC,
	}
}

func (o *Options) init() {
	if o.Locale == language.Und {
		o.Locale = language.AmericanEnglish
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
}
