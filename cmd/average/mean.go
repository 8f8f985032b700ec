package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/average/average"
	"github.com/born-ml/average/backend/cpu"
	"github.com/born-ml/average/tensor"
)

var (
	errNoInput        = errors.New("no tensor literal given")
	errMultiDocuments = errors.New("more than one YAML document in input")
)

func newMeanCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "mean [LITERAL]",
		Short: "Print the mean of all elements of a tensor literal",
		Long: `Print the mean of all elements of a tensor literal.

The literal is taken from the argument, from --file, or from stdin when
neither is given (or --file is "-"). YAML and JSON are both accepted;
the input must hold exactly one document.`,
		Example: `  average mean '[1, 2, 3, 4]'
  average mean --file tensor.json
  echo '[[1, 2], [3, 4]]' | average mean`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readLiteral(cmd, args, file)
			if err != nil {
				return err
			}
			return runMean(cmd, input)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `Read the literal from a file ("-" for stdin)`)
	return cmd
}

func readLiteral(cmd *cobra.Command, args []string, file string) ([]byte, error) {
	switch {
	case len(args) == 1:
		if file != "" {
			return nil, errors.New("pass either a literal or --file, not both")
		}
		return []byte(args[0]), nil
	case file != "" && file != "-":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		return data, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
}

func runMean(cmd *cobra.Command, input []byte) error {
	literal, err := decodeLiteral(input)
	if err != nil {
		return err
	}

	t, err := tensor.FromNested(literal, cpu.New())
	if err != nil {
		return fmt.Errorf("build tensor: %w", err)
	}
	logger.Debug("Parsed tensor",
		zap.Ints("shape", t.Shape()),
		zap.Int("elements", t.NumElements()))

	mean, err := average.Average(t)
	if err != nil {
		logger.Warn("Average rejected input", zap.Ints("shape", t.Shape()), zap.Error(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(mean, 'g', -1, 64))
	return nil
}

// decodeLiteral decodes exactly one YAML (or JSON) document from input.
func decodeLiteral(input []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(input))

	var literal any
	if err := dec.Decode(&literal); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoInput
		}
		return nil, fmt.Errorf("parse tensor literal: %w", err)
	}
	if literal == nil {
		return nil, errNoInput
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("parse tensor literal: %w", err)
		}
		return nil, errMultiDocuments
	}
	return literal, nil
}
