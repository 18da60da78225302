package mapper

import (
	"bytes"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

type account struct {
	ID        int
	FirstName string
	Active    bool
	Balance   float64
	Created   time.Time
	Tier      *int
	Scores    []int
}

func accountFields() []*Field[account] {
	return []*Field[account]{
		Bind("ID", func(a *account, v int) { a.ID = v }),
		Bind("FirstName", func(a *account, v string) { a.FirstName = v }),
		Bind("Active", func(a *account, v bool) { a.Active = v }),
		Bind("Balance", func(a *account, v float64) { a.Balance = v }),
		Bind("Created", func(a *account, v time.Time) { a.Created = v }),
		Bind("Tier", func(a *account, v *int) { a.Tier = v }),
		Bind("Scores", func(a *account, v []int) { a.Scores = v }),
	}
}

func intPtr(i int) *int {
	return &i
}

func TestSchema_Map(t *testing.T) {
	var testCases = []struct {
		description string
		options     []Option
		values      map[string]interface{}
		expect      *account
	}{
		{
			description: "all fields",
			values: map[string]interface{}{
				"ID":        "17",
				"FirstName": "Ann",
				"Active":    "yes",
				"Balance":   "12.5",
				"Created":   "2015-09-15",
				"Tier":      int64(2),
				"Scores":    []string{"1", "2"},
			},
			expect: &account{
				ID:        17,
				FirstName: "Ann",
				Active:    true,
				Balance:   12.5,
				Created:   time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC),
				Tier:      intPtr(2),
				Scores:    []int{1, 2},
			},
		},
		{
			description: "repeated text",
			values:      map[string]interface{}{"Scores": "[5, 6,]"},
			expect:      &account{Scores: []int{5, 6}},
		},
		{
			description: "empty repeated text",
			values:      map[string]interface{}{"Scores": ""},
			expect:      &account{Scores: []int{}},
		},
		{
			description: "absent fields untouched",
			values:      map[string]interface{}{"ID": 3},
			expect:      &account{ID: 3},
		},
		{
			description: "unparsable fields get zero value",
			values: map[string]interface{}{
				"ID":      "x",
				"Active":  "maybe",
				"Balance": "1.5",
				"Tier":    "n/a",
			},
			expect: &account{Balance: 1.5},
		},
		{
			description: "null values",
			values:      map[string]interface{}{"ID": nil, "Tier": nil, "FirstName": nil},
			expect:      &account{},
		},
		{
			description: "case format key",
			options:     []Option{WithCaseFormat(text.CaseFormatLowerUnderscore)},
			values:      map[string]interface{}{"first_name": "Bob", "active": 1},
			expect:      &account{FirstName: "Bob", Active: true},
		},
		{
			description: "exact name takes precedence",
			options:     []Option{WithCaseFormat(text.CaseFormatLowerUnderscore)},
			values:      map[string]interface{}{"first_name": "Bob", "FirstName": "Ann"},
			expect:      &account{FirstName: "Ann"},
		},
	}

	for _, testCase := range testCases {
		schema := NewSchema(accountFields(), testCase.options...)
		actual := schema.Map(testCase.values)
		if diff := cmp.Diff(testCase.expect, actual); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", testCase.description, diff)
		}
	}
}

func TestField_WithDateFormat(t *testing.T) {
	schema := NewSchema([]*Field[account]{
		Bind("Created", func(a *account, v time.Time) { a.Created = v }).WithDateFormat("dd/MM/yyyy"),
	})
	var testCases = []struct {
		description string
		value       interface{}
		expect      time.Time
	}{
		{description: "day first pattern", value: "05/09/2015", expect: time.Date(2015, 9, 5, 0, 0, 0, 0, time.UTC)},
		{description: "converter layouts", value: "2015-09-05T10:00:00Z", expect: time.Date(2015, 9, 5, 10, 0, 0, 0, time.UTC)},
		{description: "time value", value: time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC), expect: time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, testCase := range testCases {
		actual := schema.Map(map[string]interface{}{"Created": testCase.value})
		assert.True(t, testCase.expect.Equal(actual.Created), testCase.description)
	}
}

func TestSchema_AsMap(t *testing.T) {
	schema := NewSchema([]*Field[account]{
		BindAccessor("ID", func(a *account) int { return a.ID }, func(a *account, v int) { a.ID = v }),
		BindAccessor("FirstName", func(a *account) string { return a.FirstName }, func(a *account, v string) { a.FirstName = v }),
		BindAccessor("Tier", func(a *account) *int { return a.Tier }, func(a *account, v *int) { a.Tier = v }),
		Bind("Active", func(a *account, v bool) { a.Active = v }),
	})
	src := &account{ID: 3, FirstName: "Ann", Active: true}

	var testCases = []struct {
		description string
		names       []string
		expect      map[string]interface{}
	}{
		{description: "all readable fields", expect: map[string]interface{}{"ID": 3, "FirstName": "Ann", "Tier": (*int)(nil)}},
		{description: "projection", names: []string{"FirstName", "Active"}, expect: map[string]interface{}{"FirstName": "Ann"}},
	}
	for _, testCase := range testCases {
		actual := schema.AsMap(src, testCase.names...)
		if diff := cmp.Diff(testCase.expect, actual); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", testCase.description, diff)
		}
	}

	roundTrip := schema.Map(schema.AsMap(src))
	assert.Equal(t, &account{ID: 3, FirstName: "Ann"}, roundTrip)
	assert.Empty(t, schema.AsMap(nil))
}

func TestImport(t *testing.T) {
	var testCases = []struct {
		description string
		dest        map[string]interface{}
		src         map[string]interface{}
		reset       bool
		expect      map[string]interface{}
	}{
		{
			description: "merge",
			dest:        map[string]interface{}{"a": 1, "b": 2},
			src:         map[string]interface{}{"b": 3, "c": 4},
			expect:      map[string]interface{}{"a": 1, "b": 3, "c": 4},
		},
		{
			description: "reset",
			dest:        map[string]interface{}{"a": 1},
			src:         map[string]interface{}{"c": 4},
			reset:       true,
			expect:      map[string]interface{}{"c": 4},
		},
		{
			description: "empty source",
			dest:        map[string]interface{}{"a": 1},
			expect:      map[string]interface{}{"a": 1},
		},
	}
	for _, testCase := range testCases {
		Import(testCase.dest, testCase.src, testCase.reset)
		assert.Equal(t, testCase.expect, testCase.dest, testCase.description)
	}
}

func TestSchema_Apply(t *testing.T) {
	schema := NewSchema(accountFields())
	dest := &account{ID: 1, FirstName: "Ann"}
	schema.Apply(dest, map[string]interface{}{"Active": true})
	assert.Equal(t, &account{ID: 1, FirstName: "Ann", Active: true}, dest)
}

func TestSchema_MapValues(t *testing.T) {
	schema := NewSchema(accountFields(), WithCaseFormat(text.CaseFormatLowerCamel))
	values, err := url.ParseQuery("ID=5&firstName=Ann&firstName=Bob&active=on&scores=1&scores=2")
	if !assert.Nil(t, err) {
		return
	}
	actual := schema.MapValues(values)
	expect := &account{ID: 5, FirstName: "Ann,Bob", Active: true, Scores: []int{1, 2}}
	if diff := cmp.Diff(expect, actual); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestSchema_DecodeJSON(t *testing.T) {
	schema := NewSchema(accountFields())
	actual, err := schema.DecodeJSON([]byte(`{"ID": 7, "FirstName": "Ann", "Active": "true", "Scores": [3, 4], "Tier": null, "Extra": {"a": 1}}`))
	if !assert.Nil(t, err) {
		return
	}
	expect := &account{ID: 7, FirstName: "Ann", Active: true, Scores: []int{3, 4}}
	if diff := cmp.Diff(expect, actual); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	_, err = schema.DecodeJSON([]byte(`{"ID": `))
	assert.NotNil(t, err)
}

func TestSchema_Logger(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(buffer)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	schema := NewSchema(accountFields(), WithLogger(logger))
	actual := schema.Map(map[string]interface{}{"ID": "abc", "FirstName": "Ann"})
	assert.Equal(t, 0, actual.ID)
	assert.Equal(t, "Ann", actual.FirstName)
	assert.Contains(t, buffer.String(), "field=ID")
	assert.Contains(t, buffer.String(), "substituted zero value")
}
