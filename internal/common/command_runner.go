package common

import (
	"context"
	"fmt"

	"resumerank/internal/errors"
)

// BuildJobFunc turns the raw job description text into operation input.
type BuildJobFunc[Input any] func(jobText string) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// OperationFunc is a generic function signature for a pipeline operation.
type OperationFunc[Input, Output any] func(context.Context, Input) (Output, error)

// RunJobCommand encapsulates the common logic for job-description-driven CLI commands.
func RunJobCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	jobFile string,
	maxFileSize int64,
	buildJob BuildJobFunc[Input],
	operation OperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	// Pass the logger when creating helpers
	fileProcessor := NewFileProcessorWithLimit(logger, maxFileSize)
	outputHandler := NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadFiles(jobFile)
	if err != nil {
		return err
	}

	input, err := buildJob(contents[0])
	if err != nil {
		return fmt.Errorf("failed to build operation input from job description: %w", err)
	}

	logDetails(input, cmdConfig)

	result, err := operation(ctx, input)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
