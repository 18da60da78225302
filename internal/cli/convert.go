package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/toconv/conv"
)

const nullText = "null"

// ConvertOptions holds convert command flags.
type ConvertOptions struct {
	Type    string
	Default string
}

var errorKinds = []struct {
	name string
	err  error
}{
	{"InvalidCast", conv.ErrInvalidCast},
	{"Format", conv.ErrFormat},
	{"MissingValue", conv.ErrMissingValue},
	{"Overflow", conv.ErrOverflow},
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert value to a target type",
		Long: `Convert value to a target type and print its textual form.

Without --default a failed conversion prints the error kind and exits with an error.
With --default the default is printed instead.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, opts, args[0], cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.Type, "type", "t", "", "target type name, suffix ? for nullable")
	cmd.Flags().StringVarP(&opts.Default, "default", "d", "", "default value used when conversion fails")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runConvert(rootOpts *RootOptions, opts *ConvertOptions, value string, cmd *cobra.Command) error {
	target, err := LookupType(opts.Type)
	if err != nil {
		return err
	}
	converter, err := newConverter(rootOpts)
	if err != nil {
		return err
	}
	logger := rootOpts.Logger().WithField("type", opts.Type)
	var result interface{}
	if cmd.Flags().Changed("default") {
		defaultValue, err := converter.Convert(opts.Default, target)
		if err != nil {
			return fmt.Errorf("invalid default: %w", err)
		}
		result = converter.ConvertOrDefault(value, target, defaultValue)
		logger.WithField("value", value).Debug("converted with default")
	} else {
		if result, err = converter.Convert(value, target); err != nil {
			logger.WithError(err).Debug("conversion failed")
			return fmt.Errorf("%s: %w", ErrorKind(err), err)
		}
	}
	text, err := formatResult(converter, result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// ErrorKind returns conversion error kind name
func ErrorKind(err error) string {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}
	return "Unknown"
}

func formatResult(converter *conv.Converter, result interface{}) (string, error) {
	if result == nil {
		return nullText, nil
	}
	return conv.ConvertTo[string](converter, result)
}
