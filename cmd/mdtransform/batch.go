package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/teamup/mdtransform"
	"github.com/teamup/mdtransform/internal/config"
	"github.com/teamup/mdtransform/internal/fileutil"
	"github.com/teamup/mdtransform/mdast"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrInvalidFlag  = errors.New("invalid flag value")
)

// MessageProcessor is the interface for the transform pipeline.
type MessageProcessor interface {
	Process(ctx context.Context, input mdtransform.Input) (*mdtransform.Result, error)
}

// Compile-time interface implementation check.
var _ MessageProcessor = (*mdtransform.Processor)(nil)

// ProcessResult holds the outcome of a single input.
type ProcessResult struct {
	InputPath  string
	OutputPath string
	Output     []byte // Set when OutputPath is empty
	Err        error
	Duration   time.Duration
}

// batchParams groups parameters shared across the batch.
type batchParams struct {
	format    string
	readStdin func() ([]byte, error)
}

func newBatchParams(format string, stdin io.Reader) *batchParams {
	return &batchParams{
		format: format,
		readStdin: sync.OnceValues(func() ([]byte, error) {
			return io.ReadAll(stdin)
		}),
	}
}

// processBatch processes files concurrently with a fixed set of workers.
// Results keep the order of files.
func processBatch(ctx context.Context, proc MessageProcessor, files []FileToProcess, workers int, params *batchParams) []ProcessResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ProcessResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ProcessResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = processFile(ctx, proc, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile runs the pipeline on one input and writes or buffers its output.
func processFile(ctx context.Context, proc MessageProcessor, f FileToProcess, params *batchParams) ProcessResult {
	start := time.Now()
	result := ProcessResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := readInput(f.InputPath, params)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	res, err := proc.Process(ctx, mdtransform.Input{
		Markdown: string(content),
		HTML:     params.format == config.FormatHTML,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	output, err := formatResult(res, params.format)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if f.OutputPath == "" {
		result.Output = output
		result.Duration = time.Since(start)
		return result
	}

	if err := writeOutput(f.OutputPath, output); err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

func readInput(path string, params *batchParams) ([]byte, error) {
	if path == stdinName {
		content, err := params.readStdin()
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
		}
		return content, nil
	}

	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return content, nil
}

// formatResult serializes a result in the requested format.
func formatResult(res *mdtransform.Result, format string) ([]byte, error) {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(res.Document, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding tree: %w", err)
		}
		return append(data, '\n'), nil
	case config.FormatHTML:
		return []byte(res.HTML), nil
	default:
		return []byte(mdast.Dump(res.Document)), nil
	}
}

func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed inputs.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed inputs.
func countResults(results []ProcessResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes buffered outputs to stdout in input order and logs
// the rest. Returns the joined errors of failed inputs.
func printResults(results []ProcessResult, env *Environment, logger *slog.Logger) error {
	summary := countResults(results)
	multi := len(results) > 1

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			logger.Error("failed", slog.String("file", r.InputPath), slog.Any("error", r.Err))
			errs = append(errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
			continue
		}

		logger.Debug("processed", slog.String("file", r.InputPath), slog.Duration("elapsed", r.Duration.Round(time.Millisecond)))

		if r.OutputPath != "" {
			logger.Info("created", slog.String("file", r.OutputPath))
			continue
		}

		if multi {
			fmt.Fprintf(env.Stdout, "==> %s <==\n", r.InputPath)
		}
		_, _ = env.Stdout.Write(r.Output)
	}

	if multi {
		logger.Info("done", slog.Int("succeeded", summary.Succeeded), slog.Int("failed", summary.Failed))
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d input(s) failed: %w", summary.Failed, len(results), errors.Join(errs...))
	}
	return nil
}
