package mapper

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/viant/tagly/format/text"
	"github.com/viant/toconv/conv"
)

// Option schema option
type Option func(o *options)

// Options represents schema options
type Options []Option

// Apply applies options
func (o Options) Apply(opts *options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(opts)
	}
}

type options struct {
	caseFormat text.CaseFormat
	converter  *conv.Converter
	logger     logrus.FieldLogger
}

func newOptions(opts []Option) *options {
	ret := &options{}
	Options(opts).Apply(ret)
	if ret.converter == nil {
		ret.converter = conv.NewConverter(conv.DefaultOptions())
	}
	if ret.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		ret.logger = logger
	}
	return ret
}

// WithCaseFormat adds an alternate lookup key per field, the field name formatted with caseFormat
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}

// WithConverter sets converter used for field values
func WithConverter(converter *conv.Converter) Option {
	return func(o *options) {
		o.converter = converter
	}
}

// WithLogger sets logger reporting substituted field values
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
