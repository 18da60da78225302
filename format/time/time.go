package time

import (
	"fmt"
	"strings"
	"time"
)

var patternToTimeLayoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"yy", "06",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// FallbackPatterns lists exact date patterns in trial order
var FallbackPatterns = []string{
	"yyyyMMdd",
	"dd/MM/yyyy",
	"yyyyMMdd HH:mm",
	"dd/MM/yyyy HH:mm",
	"dd/MM/yyyy HHmm",
	"MM_dd_yyyy",
	"ddMMyyyy",
	"yyyy_MM_dd",
	"yyyyMMddHHmm",
	"MMddyy",
	"yyyyMMddHHmmss",
}

// DefaultLayouts lists common layouts tried before the fallback patterns, month precedes day
var DefaultLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006 3:04:05 PM",
	"01/02/2006",
	"1/2/2006 3:04:05 PM",
	"1/2/2006",
	"January 2, 2006",
	"Monday, January 2, 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
}

var fallbackLayouts = PatternsToTimeLayouts(FallbackPatterns)

// PatternToTimeLayout converts yyyyMMdd style date pattern to time layout
func PatternToTimeLayout(pattern string) string {
	return patternToTimeLayoutReplacer.Replace(pattern)
}

// PatternsToTimeLayouts converts date patterns to time layouts
func PatternsToTimeLayouts(patterns []string) []string {
	result := make([]string, len(patterns))
	for i, pattern := range patterns {
		result[i] = PatternToTimeLayout(pattern)
	}
	return result
}

// Parse parses value with default layouts, then with fallback patterns
func Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value = strings.TrimSpace(value)
	if ts, err := parseAny(value, DefaultLayouts, loc); err == nil {
		return ts, nil
	}
	return parseAny(value, fallbackLayouts, loc)
}

// ParseExact parses value with the first matching date pattern
func ParseExact(value string, patterns []string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return parseAny(value, PatternsToTimeLayouts(patterns), loc)
}

func parseAny(value string, layouts []string, loc *time.Location) (time.Time, error) {
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, value, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse %q as date", value)
}
