package conv

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTo_Bool(t *testing.T) {
	for _, literal := range TruthyLiterals {
		for _, text := range []string{literal, strings.ToUpper(literal)} {
			actual, err := To[bool](text)
			assert.Nil(t, err, text)
			assert.True(t, actual, text)
		}
	}
	for _, literal := range FalsyLiterals {
		for _, text := range []string{literal, strings.ToUpper(literal)} {
			actual, err := To[bool](text)
			assert.Nil(t, err, text)
			assert.False(t, actual, text)
		}
	}
	for _, text := range []string{"", "maybe", "2", "y", "t", "F", "f", "T"} {
		_, err := To[bool](text)
		assert.ErrorIs(t, err, ErrFormat, text)
	}
}

func TestTo_Null(t *testing.T) {
	_, err := To[int](nil)
	assert.ErrorIs(t, err, ErrMissingValue)

	_, err = To[bool](nil)
	assert.ErrorIs(t, err, ErrMissingValue)

	_, err = To[uuid.UUID](nil)
	assert.ErrorIs(t, err, ErrMissingValue)

	ptr, err := To[*int](nil)
	assert.Nil(t, err)
	assert.Nil(t, ptr)

	text, err := To[string](nil)
	assert.Nil(t, err)
	assert.Equal(t, "", text)

	assert.Equal(t, false, ToOr[bool](nil, false))
	assert.Equal(t, 3, ToOr[int](nil, 3))
}

func TestTo_InvalidInputs(t *testing.T) {
	assertInvalid(t, true)
	assertInvalid(t, 1)
	assertInvalid(t, 1.5)
	assertInvalid(t, uuid.New())
	assertInvalid(t, time.Date(2015, 9, 15, 0, 0, 0, 0, time.UTC))
}

func assertInvalid[T any](t *testing.T, defaultValue T) {
	t.Helper()
	_, err := To[T]("")
	assert.NotNil(t, err, "empty text")
	_, err = To[T](nil)
	assert.ErrorIs(t, err, ErrMissingValue, "nil")
	_, err = To[T]("invalid")
	assert.NotNil(t, err, "invalid text")
	_, err = Convert("", typeOf[T]())
	assert.NotNil(t, err, "untyped empty text")

	assert.Equal(t, defaultValue, ToOr("", defaultValue), "empty text with default")
	assert.Equal(t, defaultValue, ToOr(nil, defaultValue), "nil with default")
}

func TestTo_Number(t *testing.T) {
	_, err := To[int]("1.1")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 2, ToOr("1.1", 2))
	assert.Nil(t, ToOr[*int]("x", nil))

	text, err := To[string](0.01)
	assert.Nil(t, err)
	assert.Equal(t, "0.01", text)

	u, err := To[uint]("+5")
	assert.Nil(t, err)
	assert.Equal(t, uint(5), u)

	i, err := To[int]("+5")
	assert.Nil(t, err)
	assert.Equal(t, 5, i)

	_, err = To[uint]("+-5")
	assert.ErrorIs(t, err, ErrFormat)

	f, err := To[float64]("0.1")
	assert.Nil(t, err)
	assert.Equal(t, 0.1, f)
}

type intPtr *int

func TestTo_NamedPointer(t *testing.T) {
	actual, err := To[intPtr]("5")
	assert.Nil(t, err)
	if assert.NotNil(t, actual) {
		assert.Equal(t, 5, *actual)
	}

	actual, err = To[intPtr](7)
	assert.Nil(t, err)
	if assert.NotNil(t, actual) {
		assert.Equal(t, 7, *actual)
	}

	assert.Nil(t, ToOr[intPtr]("x", nil))
	value := 3
	assert.Equal(t, 3, *ToOr[intPtr]("x", &value))
}

func TestTo_Enum(t *testing.T) {
	actual, err := To[character]("Mario")
	assert.Nil(t, err)
	assert.Equal(t, mario, actual)

	actual, err = To[character]("1")
	assert.Nil(t, err)
	assert.Equal(t, luigi, actual)

	_, err = To[*character]("c")
	assert.ErrorIs(t, err, ErrFormat)

	assert.Nil(t, ToOr[*character]("c", nil))

	ptr, err := To[*character]("Mario")
	assert.Nil(t, err)
	if assert.NotNil(t, ptr) {
		assert.Equal(t, mario, *ptr)
	}
}

func TestTo_UUID(t *testing.T) {
	id := uuid.New()
	actual, err := To[uuid.UUID](id.String())
	assert.Nil(t, err)
	assert.Equal(t, id, actual)

	_, err = To[uuid.UUID]("not-a-uuid")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestTo_RoundTrip(t *testing.T) {
	assertRoundTrip(t, 2015)
	assertRoundTrip(t, int8(-128))
	assertRoundTrip(t, uint64(18446744073709551615))
	assertRoundTrip(t, 0.001)
	assertRoundTrip(t, float32(3.25))
	assertRoundTrip(t, true)
	assertRoundTrip(t, false)
	assertRoundTrip(t, toad)
	assertRoundTrip(t, uuid.New())

	ts := time.Date(2015, 9, 15, 13, 45, 1, 500, time.UTC)
	text, err := To[string](ts)
	assert.Nil(t, err)
	actual, err := To[time.Time](text)
	assert.Nil(t, err)
	assert.True(t, ts.Equal(actual), text)
}

func assertRoundTrip[T comparable](t *testing.T, value T) {
	t.Helper()
	text, err := To[string](value)
	if !assert.Nil(t, err) {
		return
	}
	actual, err := To[T](text)
	assert.Nil(t, err, text)
	assert.Equal(t, value, actual, text)
}

func TestConvertTo_Converter(t *testing.T) {
	converter := NewConverter(Options{Location: time.FixedZone("EST", -5*3600)})
	ts, err := ConvertTo[time.Time](converter, "2015-09-15 10:00")
	assert.Nil(t, err)
	assert.Equal(t, "2015-09-15T15:00:00Z", ts.UTC().Format(time.RFC3339))
	assert.Equal(t, 7, ConvertToOr(converter, "7", 0))
}
