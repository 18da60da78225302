package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Config  string
	logger  *logrus.Logger
}

// Logger returns command logger, debug level when verbose
func (o *RootOptions) Logger() *logrus.Logger {
	if o.logger == nil {
		o.logger = logrus.New()
		o.logger.SetLevel(logrus.WarnLevel)
		if o.Verbose {
			o.logger.SetLevel(logrus.DebugLevel)
		}
	}
	return o.logger
}

// NewRootCommand creates the root command for the toconv CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "toconv",
		Short: "toconv - loose value conversion",
		Long:  "Converts textual values into typed values with locale aware parsing and fallback literals.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.Logger().SetOutput(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML config file with locale and location")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))
	return cmd
}
