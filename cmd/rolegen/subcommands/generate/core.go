//
//  Copyright © Manetu Inc. All rights reserved.
//

package generate

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/manetu/rolegen/cmd/rolegen/common"
	"github.com/manetu/rolegen/pkg/manifest"
	"github.com/urfave/cli/v3"
)

// Result represents the outcome of a generate operation.
type Result struct {
	InputFile  string
	OutputFile string
	Success    bool
	Error      error
}

// Execute runs the generate command.
func Execute(ctx context.Context, cmd *cli.Command) error {
	file := cmd.String("file")
	if file == "" {
		return fmt.Errorf("no request specified, use --file/-f to specify a request YAML file")
	}

	builder := manifest.NewBuilder(common.NewCliResolver(cmd))
	result := File(builder, file, cmd.String("output"), cmd.Root().Writer)
	if !result.Success {
		return result.Error
	}
	if result.OutputFile != "" {
		fmt.Fprintf(cmd.Root().ErrWriter, "✓ %s → %s\n", result.InputFile, result.OutputFile)
	}
	return nil
}

// File builds the request in inputFile and writes the manifest to outputFile,
// or to stdout when outputFile is empty.
func File(builder *manifest.Builder, inputFile, outputFile string, stdout io.Writer) Result {
	result := Result{
		InputFile:  inputFile,
		OutputFile: outputFile,
	}

	inputData, err := os.ReadFile(inputFile) // #nosec G304 -- CLI tool intentionally reads user-provided paths
	if err != nil {
		result.Error = fmt.Errorf("failed to read input file: %w", err)
		return result
	}

	req, err := manifest.ParseRequest(inputData)
	if err != nil {
		result.Error = err
		return result
	}

	bundle, err := builder.Build(req)
	if err != nil {
		result.Error = err
		return result
	}

	outputData, err := bundle.YAML()
	if err != nil {
		result.Error = err
		return result
	}

	if outputFile == "" {
		_, err = stdout.Write(outputData)
	} else {
		err = os.WriteFile(outputFile, outputData, 0600)
	}
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.Success = true
	return result
}
