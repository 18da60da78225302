package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatternToTimeLayout(t *testing.T) {
	var testCases = []struct {
		pattern string
		expect  string
	}{
		{pattern: "yyyyMMdd", expect: "20060102"},
		{pattern: "dd/MM/yyyy HHmm", expect: "02/01/2006 1504"},
		{pattern: "MM_dd_yyyy", expect: "01_02_2006"},
		{pattern: "MMddyy", expect: "010206"},
		{pattern: "yyyyMMddHHmmss", expect: "20060102150405"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, PatternToTimeLayout(testCase.pattern), testCase.pattern)
	}
}

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      time.Time
		hasError    bool
	}{
		{description: "iso date", input: "2015-09-15", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "iso time", input: "2023-01-02 01:22:19", expect: time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC)},
		{description: "rfc time", input: "2023-01-02T01:22:19Z", expect: time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC)},
		{description: "slash ymd", input: "2015/09/15", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "slash mdy", input: "09/15/2015", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "slash dmy fallback", input: "15/09/2015", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "compact", input: "20150915", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "compact with time", input: "20150915 13:45", expect: time.Date(2015, 9, 15, 13, 45, 0, 0, time.UTC)},
		{description: "dmy with compact time", input: "15/09/2015 1345", expect: time.Date(2015, 9, 15, 13, 45, 0, 0, time.UTC)},
		{description: "underscore mdy", input: "09_15_2015", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "underscore ymd", input: "2015_09_15", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "dmy compact", input: "15092015", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "minutes compact", input: "201509151345", expect: time.Date(2015, 9, 15, 13, 45, 0, 0, time.UTC)},
		{description: "short mdy", input: "091515", expect: time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC)},
		{description: "seconds compact", input: "20150915134501", expect: time.Date(2015, 9, 15, 13, 45, 1, 0, time.UTC)},
		{description: "invalid", input: "invalid", hasError: true},
		{description: "empty", input: "", hasError: true},
	}

	for _, testCase := range testCases {
		ts, err := Parse(testCase.input, nil)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.True(t, testCase.expect.Equal(ts), testCase.description+": "+ts.String())
	}
}

func TestParseExact(t *testing.T) {
	ts, err := ParseExact("2015_09_15", []string{"yyyyMMdd", "yyyy_MM_dd"}, time.UTC)
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC), ts)

	_, err = ParseExact("2015-09-15", []string{"yyyyMMdd"}, time.UTC)
	assert.NotNil(t, err)
}
