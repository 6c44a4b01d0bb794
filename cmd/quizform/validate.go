package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quiz-form/internal/domain"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func validateCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a JSON or YAML file of field values",
		Long: `Load field values from a .json, .yaml or .yml file and print the error
of every failing field. The exit status is 1 when any field fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(args[0])
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), opts, values, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or json")
	return cmd
}

func readValues(path string) (domain.FormValues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.FormValues{}, fmt.Errorf("read values: %w", err)
	}

	var values domain.FormValues
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var raw map[string]any
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return domain.FormValues{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if values, err = valuesFromMap(raw); err != nil {
			return domain.FormValues{}, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&values); err != nil && err != io.EOF {
			return domain.FormValues{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return domain.FormValues{}, fmt.Errorf("unsupported values file %q: use .json, .yaml or .yml", path)
	}
	return values, nil
}

// valuesFromMap accepts JSON numbers and booleans as well as strings, the
// way the YAML decoder does for scalar fields.
func valuesFromMap(raw map[string]any) (domain.FormValues, error) {
	var values domain.FormValues
	for key, v := range raw {
		field, err := domain.ParseFieldName(key)
		if err != nil {
			return domain.FormValues{}, err
		}
		switch v.(type) {
		case map[string]any, []any:
			return domain.FormValues{}, fmt.Errorf("field %q must be a scalar", key)
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return domain.FormValues{}, fmt.Errorf("field %q: %w", key, err)
		}
		if err := values.Set(field, s); err != nil {
			return domain.FormValues{}, err
		}
	}
	return values, nil
}

func runValidate(out io.Writer, opts *globalOptions, values domain.FormValues, output string) error {
	v, err := opts.validator()
	if err != nil {
		return err
	}
	errs := v.Validate(values).Ordered()

	switch output {
	case "json":
		report := struct {
			Valid  bool                     `json:"valid"`
			Errors []domain.ValidationError `json:"errors"`
		}{Valid: len(errs) == 0, Errors: errs}
		if report.Errors == nil {
			report.Errors = []domain.ValidationError{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	case "text":
		if len(errs) == 0 {
			fmt.Fprintln(out, "All fields are valid.")
		}
		for _, e := range errs {
			fmt.Fprintf(out, "%s: %s\n", e.Field, e.Message)
		}
	default:
		return fmt.Errorf("unsupported output %q", output)
	}

	if len(errs) > 0 {
		return errInvalidValues
	}
	return nil
}
