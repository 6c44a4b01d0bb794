// Command quizform fills and checks quiz creation forms from the terminal.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"quiz-form/internal/config"
	"quiz-form/internal/domain"
	"quiz-form/internal/logger"
	"quiz-form/internal/prompt"
	"quiz-form/internal/schema"

	"github.com/spf13/cobra"
)

// errInvalidValues makes the process exit with status 1 without printing
// anything beyond the field errors already written.
var errInvalidValues = errors.New("form values are invalid")

// newDriver is replaced in tests.
var newDriver = prompt.NewSurveyDriver

type globalOptions struct {
	schemaFile string
	mode       string
	delay      time.Duration
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidValues) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "quizform",
		Short: "Fill and validate quiz creation forms",
		Long: `quizform drives the quiz creation form from the terminal.

Commands:
  fill       Prompt for every field and submit
  validate   Check a JSON or YAML file of field values
  schema     Print the effective form schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(config.LoggerConfig{Level: opts.logLevel, Env: "development"})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.schemaFile, "schema", "", "YAML schema file (default: built-in quiz form)")
	rootCmd.PersistentFlags().StringVar(&opts.mode, "mode", string(domain.DisplayTouched), "Error display mode: touched or all")
	rootCmd.PersistentFlags().DurationVar(&opts.delay, "delay", 400*time.Millisecond, "Delay before a valid submission completes")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "Log level")

	rootCmd.AddCommand(
		fillCmd(opts),
		validateCmd(opts),
		schemaCmd(opts),
	)
	return rootCmd
}

func (o *globalOptions) validator() (*schema.Validator, error) {
	s, err := schema.LoadFile(o.schemaFile)
	if err != nil {
		return nil, err
	}
	return schema.NewValidator(s), nil
}

func (o *globalOptions) displayMode() (domain.DisplayMode, error) {
	return domain.ParseDisplayMode(o.mode)
}
