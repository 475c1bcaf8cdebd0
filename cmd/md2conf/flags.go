package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ErrNoInput is returned when no markdown files are given.
var ErrNoInput = errors.New("no input files: usage: md2conf [flags] <file.md> [file.md ...]")

// cliFlags holds all command-line options.
type cliFlags struct {
	config   string
	outDir   string
	workers  int
	maxDepth int
	upload   bool
	pageID   string
	spaceKey string
	title    string
	verbose  bool
	version  bool
}

// parseFlags parses args (excluding the program name) into flags and the
// remaining input paths.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2conf", flag.ContinueOnError)
	fs.StringVarP(&flags.config, "config", "c", "", "path to YAML config file")
	fs.StringVarP(&flags.outDir, "out-dir", "o", "", "directory for converted output (default: next to source)")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "parallel conversions (0 = one per CPU)")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "nesting depth budget (0 = library default)")
	fs.BoolVar(&flags.upload, "upload", false, "upload converted documents to Confluence")
	fs.StringVar(&flags.pageID, "page-id", "", "update this page instead of creating one (single input only)")
	fs.StringVar(&flags.spaceKey, "space", "", "space key for created pages (overrides config)")
	fs.StringVar(&flags.title, "title", "", "page title (default: derived from the file name)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return flags, fs.Args(), nil
}
