package main

import (
	"errors"
	"os"

	md2conf "github.com/alnah/go-md2conf"
	"github.com/alnah/go-md2conf/internal/config"
	"github.com/alnah/go-md2conf/internal/confluence"
)

// Exit codes for the md2conf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitUpload  = 4 // Confluence API errors
)

// errUsage marks flag parsing failures.
var errUsage = errors.New("invalid usage")

// Sentinel errors for CLI file handling.
var (
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrPageIDWithBatch  = errors.New("--page-id requires exactly one input file")
	ErrMissingToken     = errors.New("API token not set in environment")
)

// exitCodeFor maps an error onto the CLI exit code. Callers must wrap errors
// with %w for errors.Is to see through.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Upload errors (exit 4)
	if errors.Is(err, confluence.ErrNotFound) ||
		errors.Is(err, confluence.ErrUnauthorized) ||
		errors.Is(err, confluence.ErrStatus) ||
		errors.Is(err, confluence.ErrMissingBaseURL) ||
		errors.Is(err, confluence.ErrMissingAuth) {
		return ExitUpload
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrPageIDWithBatch) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrMissingBaseURL) ||
		errors.Is(err, config.ErrMissingSpace) ||
		errors.Is(err, md2conf.ErrEmptyMarkdown) ||
		errors.Is(err, md2conf.ErrInvalidNestingDepth) {
		return ExitUsage
	}

	return ExitGeneral
}
