package row

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/viant/toconv/conv"
)

// Option reader option
type Option func(r *Reader)

// WithConverter sets converter used for column values
func WithConverter(converter *conv.Converter) Option {
	return func(r *Reader) {
		r.converter = converter
	}
}

// WithLogger sets logger reporting defaulted column values
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

func (r *Reader) init() {
	if r.converter == nil {
		r.converter = conv.NewConverter(conv.DefaultOptions())
	}
	if r.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		r.logger = logger
	}
}
