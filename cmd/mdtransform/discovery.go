package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teamup/mdtransform/internal/config"
	"github.com/teamup/mdtransform/internal/fileutil"
)

// stdinName selects standard input as a source.
const stdinName = "-"

// outputExtensions maps each output format to its file extension.
var outputExtensions = map[string]string{
	config.FormatTree: "tree",
	config.FormatJSON: "json",
	config.FormatHTML: "html",
}

// FileToProcess represents a single input to process.
type FileToProcess struct {
	InputPath  string // stdinName for standard input
	OutputPath string // empty writes to stdout
}

// discoverFiles expands args into inputs. No args reads standard input;
// directories are walked for markdown files in lexical order.
func discoverFiles(args []string, outputDir, format string) ([]FileToProcess, error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}

	var files []FileToProcess
	for _, arg := range args {
		if arg == stdinName {
			files = append(files, FileToProcess{
				InputPath:  stdinName,
				OutputPath: resolveOutputPath("stdin", outputDir, "", format),
			})
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		}
		if !info.IsDir() {
			files = append(files, FileToProcess{
				InputPath:  arg,
				OutputPath: resolveOutputPath(arg, outputDir, "", format),
			})
			continue
		}

		found, err := walkMarkdown(arg)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			files = append(files, FileToProcess{
				InputPath:  path,
				OutputPath: resolveOutputPath(path, outputDir, arg, format),
			})
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, strings.Join(args, ", "))
	}
	return files, nil
}

// walkMarkdown returns the markdown files under dir, sorted.
func walkMarkdown(dir string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && fileutil.IsMarkdown(path) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %w", ErrReadMarkdown, dir, err)
	}
	sort.Strings(found)
	return found, nil
}

// resolveOutputPath returns where the result for inputPath is written.
// Files found under baseInputDir keep their relative layout in outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir, format string) string {
	if outputDir == "" {
		return ""
	}

	rel := filepath.Base(inputPath)
	if baseInputDir != "" {
		if r, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			rel = r
		}
	}

	out, err := fileutil.ReplaceExtension(filepath.Join(outputDir, rel), outputExtensions[format])
	if err != nil {
		return filepath.Join(outputDir, rel)
	}
	return out
}
