// Package row reads typed column values from database rows.
package row

import (
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/viant/toconv"
	"github.com/viant/toconv/conv"
)

var (
	// ErrColumnNotFound reports a column missing from the result set
	ErrColumnNotFound = errors.New("column not found")
	// ErrNullValue reports a database null read into a type requiring a value
	ErrNullValue = fmt.Errorf("null value: %w", conv.ErrMissingValue)
)

// Reader reads rows, resolving column names once per result set
type Reader struct {
	rows      *sql.Rows
	columns   []string
	index     map[string]int
	values    []interface{}
	pointers  []interface{}
	err       error
	converter *conv.Converter
	logger    logrus.FieldLogger
}

// NewReader creates a reader for rows
func NewReader(rows *sql.Rows, opts ...Option) (*Reader, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	ret := &Reader{
		rows:     rows,
		columns:  columns,
		index:    make(map[string]int, 2*len(columns)),
		values:   make([]interface{}, len(columns)),
		pointers: make([]interface{}, len(columns)),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.init()
	for i, column := range columns {
		if _, ok := ret.index[column]; !ok {
			ret.index[column] = i
		}
	}
	for i, column := range columns {
		key := strings.ToLower(column)
		if _, ok := ret.index[key]; !ok {
			ret.index[key] = i
		}
		ret.pointers[i] = &ret.values[i]
	}
	return ret, nil
}

// Columns returns result set column names
func (r *Reader) Columns() []string {
	return r.columns
}

// Next advances to the next row, returns false when rows are exhausted or scan fails
func (r *Reader) Next() bool {
	if r.err != nil || !r.rows.Next() {
		return false
	}
	if err := r.rows.Scan(r.pointers...); err != nil {
		r.err = fmt.Errorf("failed to scan row: %w", err)
		return false
	}
	return true
}

// Err returns the first scan or iteration error
func (r *Reader) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}

// Index returns column position, exact name first, then case insensitive, -1 when missing
func (r *Reader) Index(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	if i, ok := r.index[strings.ToLower(name)]; ok {
		return i
	}
	return -1
}

// Value converts current row value at index to target type
func (r *Reader) Value(index int, target reflect.Type) (interface{}, error) {
	if index < 0 || index >= len(r.values) {
		return nil, fmt.Errorf("%w: index %d", ErrColumnNotFound, index)
	}
	column := r.columns[index]
	value := r.values[index]
	if value == nil {
		if toconv.Describe(target).RequiresValue() {
			return nil, fmt.Errorf("column %v: %w", column, ErrNullValue)
		}
		return nil, nil
	}
	result, err := r.converter.Convert(value, target)
	if err != nil {
		return nil, fmt.Errorf("column %v: %w", column, err)
	}
	return result, nil
}

// Get converts named column of the current row to T
func Get[T any](r *Reader, name string) (T, error) {
	index := r.Index(name)
	if index == -1 {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrColumnNotFound, name)
	}
	return GetAt[T](r, index)
}

// GetAt converts column at index of the current row to T
func GetAt[T any](r *Reader, index int) (T, error) {
	var zero T
	result, err := r.Value(index, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil || result == nil {
		return zero, err
	}
	return result.(T), nil
}

// GetOr converts named column of the current row to T, returns defaultValue for missing, null or invalid value
func GetOr[T any](r *Reader, name string, defaultValue T) T {
	index := r.Index(name)
	if index == -1 {
		r.logger.WithField("column", name).Debug("column not found, using default")
		return defaultValue
	}
	return GetAtOr(r, index, defaultValue)
}

// GetAtOr converts column at index of the current row to T, returns defaultValue for missing, null or invalid value
func GetAtOr[T any](r *Reader, index int, defaultValue T) T {
	if index < 0 || index >= len(r.values) {
		return defaultValue
	}
	result, err := r.Value(index, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		r.logger.WithField("column", r.columns[index]).WithError(err).Debug("using default")
		return defaultValue
	}
	if result == nil {
		return defaultValue
	}
	return result.(T)
}
