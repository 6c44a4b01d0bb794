package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"quiz-form/internal/formstate"
	"quiz-form/internal/prompt"
	"quiz-form/internal/service"

	"github.com/spf13/cobra"
)

func fillCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Prompt for every field and submit",
		Long: `Ask for each field of the form in order. Text answers are checked
against the field rules as they are typed; selections offer the schema
options. A valid form is submitted and its values are printed as JSON
after the submit delay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd.Context(), cmd.OutOrStdout(), newDriver(), opts)
		},
	}
}

func runFill(ctx context.Context, out io.Writer, driver prompt.Driver, opts *globalOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	v, err := opts.validator()
	if err != nil {
		return err
	}
	mode, err := opts.displayMode()
	if err != nil {
		return err
	}

	form := formstate.New(v, formstate.WithDisplayMode(mode))
	values, err := prompt.Fill(ctx, driver, form, v)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Submitting...")

	var payload string
	sink := service.MultiSink{
		service.LoggingSink{},
		service.SinkFunc(func(_ context.Context, c service.Completion) { payload = c.Payload }),
	}
	submitter := service.NewDelayedSubmitter(opts.delay)
	var completeErr error
	if err := submitter.Schedule(func() {
		encoded, err := service.EncodePayload(values)
		if err != nil {
			completeErr = err
			return
		}
		sink.Complete(ctx, service.Completion{Values: values, Payload: encoded, CompletedAt: time.Now()})
		form.CompleteSubmit()
	}); err != nil {
		return err
	}

	// Wait for the delayed completion instead of flushing it early.
	wait, cancel := context.WithTimeout(context.Background(), opts.delay+5*time.Second)
	defer cancel()
	select {
	case <-time.After(opts.delay):
	case <-ctx.Done():
	}
	if err := submitter.Close(wait); err != nil {
		return err
	}
	if completeErr != nil {
		return completeErr
	}

	fmt.Fprintln(out, payload)
	return nil
}
