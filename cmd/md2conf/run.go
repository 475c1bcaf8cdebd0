package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	md2conf "github.com/alnah/go-md2conf"
	"github.com/alnah/go-md2conf/internal/config"
	"github.com/alnah/go-md2conf/internal/confluence"
)

// outputExtension is used for converted storage-dialect files.
const outputExtension = ".xhtml"

// run converts every input file and, when requested, uploads the results.
// Per-file failures are aggregated so one bad document does not abort the
// batch; the combined error decides the exit code.
func run(ctx context.Context, flags *cliFlags, inputs []string, log *zap.Logger) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if flags.pageID != "" && len(inputs) != 1 {
		return ErrPageIDWithBatch
	}
	if flags.maxDepth < 0 {
		return fmt.Errorf("%w: %d", md2conf.ErrInvalidNestingDepth, flags.maxDepth)
	}
	for _, path := range inputs {
		if err := validateMarkdownExtension(path); err != nil {
			return err
		}
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	mergeFlags(cfg, flags)

	var client *confluence.Client
	if flags.upload {
		client, err = newUploadClient(cfg, flags, log)
		if err != nil {
			return err
		}
	}

	var opts []md2conf.Option
	if cfg.Convert.MaxNestingDepth > 0 {
		opts = append(opts, md2conf.WithMaxNestingDepth(cfg.Convert.MaxNestingDepth))
	}
	workers := cfg.Convert.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}
	pool := md2conf.NewServicePool(workers, opts...)

	log.Debug("starting batch",
		zap.Int("files", len(inputs)),
		zap.Int("workers", workers))

	type outcome struct {
		path string
		err  error
	}
	results := make([]outcome, len(inputs))

	var wg sync.WaitGroup
	for i, path := range inputs {
		i, path := i, path
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = outcome{path: path, err: processFile(ctx, pool, client, cfg, flags, path, log)}
		}()
	}
	wg.Wait()

	var errs error
	for _, r := range results {
		if r.err != nil {
			log.Error("conversion failed", zap.String("file", r.path), zap.Error(r.err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.path, r.err))
		}
	}
	return errs
}

// processFile converts one markdown file, writes the dialect output and
// optionally uploads it.
func processFile(ctx context.Context, pool *md2conf.ServicePool, client *confluence.Client,
	cfg *config.Config, flags *cliFlags, path string, log *zap.Logger) error {

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	svc := pool.Acquire()
	storage, err := svc.Convert(ctx, md2conf.Input{Markdown: string(source)})
	pool.Release(svc)
	if err != nil {
		return err
	}

	outPath := outputPath(path, cfg.Convert.OutputDir)
	if err := os.WriteFile(outPath, []byte(storage), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	log.Info("converted", zap.String("source", path), zap.String("output", outPath))

	if client == nil {
		return nil
	}
	return upload(ctx, client, cfg, flags, path, storage)
}

// upload updates an existing page when --page-id is set, otherwise creates a
// page titled after the source file.
func upload(ctx context.Context, client *confluence.Client, cfg *config.Config,
	flags *cliFlags, path, storage string) error {

	if flags.pageID != "" {
		page, err := client.GetPage(ctx, flags.pageID)
		if err != nil {
			return err
		}
		if flags.title != "" {
			page.Title = flags.title
		}
		_, err = client.UpdatePage(ctx, page, storage)
		return err
	}

	title := flags.title
	if title == "" {
		title = pageTitle(path)
	}
	_, err := client.CreatePage(ctx, cfg.Confluence.SpaceKey, title, storage, cfg.Confluence.ParentID)
	return err
}

func newUploadClient(cfg *config.Config, flags *cliFlags, log *zap.Logger) (*confluence.Client, error) {
	if err := cfg.ValidateForUpload(flags.pageID == ""); err != nil {
		return nil, err
	}
	token := os.Getenv(cfg.Confluence.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingToken, cfg.Confluence.TokenEnv)
	}
	return confluence.NewClient(cfg.Confluence.BaseURL, cfg.Confluence.Email, token,
		confluence.WithLogger(log))
}

// mergeFlags lets explicit flags override file configuration.
func mergeFlags(cfg *config.Config, flags *cliFlags) {
	if flags.outDir != "" {
		cfg.Convert.OutputDir = flags.outDir
	}
	if flags.workers > 0 {
		cfg.Convert.Workers = flags.workers
	}
	if flags.maxDepth > 0 {
		cfg.Convert.MaxNestingDepth = flags.maxDepth
	}
	if flags.spaceKey != "" {
		cfg.Confluence.SpaceKey = flags.spaceKey
	}
}

// validateMarkdownExtension checks that the file has a markdown extension.
func validateMarkdownExtension(path string) error {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// outputPath places the converted file next to the source, or in outDir when
// set, swapping the extension.
func outputPath(path, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + outputExtension
	if outDir == "" {
		return filepath.Join(filepath.Dir(path), base)
	}
	return filepath.Join(outDir, base)
}

// pageTitle derives a human title from the source file name.
func pageTitle(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}
