package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	md2conf "github.com/alnah/go-md2conf"
	"github.com/alnah/go-md2conf/internal/config"
)

func TestValidateMarkdownExtension(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"doc.md", false},
		{"doc.markdown", false},
		{"dir/nested.md", false},
		{"doc.txt", true},
		{"doc", true},
		{"doc.MD", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateMarkdownExtension(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateMarkdownExtension(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidExtension) {
				t.Errorf("error = %v, want ErrInvalidExtension", err)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		outDir string
		want   string
	}{
		{"next to source", filepath.Join("docs", "guide.md"), "", filepath.Join("docs", "guide.xhtml")},
		{"explicit dir", filepath.Join("docs", "guide.md"), "out", filepath.Join("out", "guide.xhtml")},
		{"markdown extension", "notes.markdown", "", "notes.xhtml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.path, tt.outDir); got != tt.want {
				t.Errorf("outputPath(%q, %q) = %q, want %q", tt.path, tt.outDir, got, tt.want)
			}
		})
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"docs/getting-started.md", "getting started"},
		{"release_notes.md", "release notes"},
		{"README.md", "README"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := pageTitle(tt.path); got != tt.want {
				t.Errorf("pageTitle(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMergeFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Convert.OutputDir = "from-config"
	cfg.Confluence.SpaceKey = "CFG"

	mergeFlags(cfg, &cliFlags{outDir: "from-flag", workers: 2, maxDepth: 16, spaceKey: "FLG"})

	if cfg.Convert.OutputDir != "from-flag" {
		t.Errorf("OutputDir = %q", cfg.Convert.OutputDir)
	}
	if cfg.Convert.Workers != 2 || cfg.Convert.MaxNestingDepth != 16 {
		t.Errorf("Convert = %+v", cfg.Convert)
	}
	if cfg.Confluence.SpaceKey != "FLG" {
		t.Errorf("SpaceKey = %q", cfg.Confluence.SpaceKey)
	}
}

func TestMergeFlagsKeepsConfigWhenFlagsUnset(t *testing.T) {
	cfg := config.Default()
	cfg.Convert.OutputDir = "from-config"
	cfg.Convert.Workers = 5
	cfg.Confluence.SpaceKey = "CFG"

	mergeFlags(cfg, &cliFlags{})

	if cfg.Convert.OutputDir != "from-config" || cfg.Convert.Workers != 5 || cfg.Confluence.SpaceKey != "CFG" {
		t.Errorf("unset flags overwrote config: %+v", cfg)
	}
}

func TestRunValidation(t *testing.T) {
	log := zap.NewNop()

	t.Run("no inputs", func(t *testing.T) {
		err := run(context.Background(), &cliFlags{}, nil, log)
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("run() error = %v, want ErrNoInput", err)
		}
	})

	t.Run("page id with multiple inputs", func(t *testing.T) {
		err := run(context.Background(), &cliFlags{pageID: "1"}, []string{"a.md", "b.md"}, log)
		if !errors.Is(err, ErrPageIDWithBatch) {
			t.Errorf("run() error = %v, want ErrPageIDWithBatch", err)
		}
	})

	t.Run("negative max depth", func(t *testing.T) {
		err := run(context.Background(), &cliFlags{maxDepth: -1}, []string{"a.md"}, log)
		if !errors.Is(err, md2conf.ErrInvalidNestingDepth) {
			t.Errorf("run() error = %v, want ErrInvalidNestingDepth", err)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		err := run(context.Background(), &cliFlags{}, []string{"a.txt"}, log)
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("run() error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		err := run(context.Background(), &cliFlags{config: filepath.Join(t.TempDir(), "nope.yaml")}, []string{"a.md"}, log)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("run() error = %v, want ErrConfigNotFound", err)
		}
	})
}

func TestRunConvertsBatch(t *testing.T) {
	dir := t.TempDir()
	log := zap.NewNop()

	paths := make([]string, 2)
	for i, name := range []string{"one.md", "two.md"} {
		paths[i] = filepath.Join(dir, name)
		if err := os.WriteFile(paths[i], []byte("# "+name+"\n\nbody\n"), 0o644); err != nil {
			t.Fatalf("writing input: %v", err)
		}
	}

	if err := run(context.Background(), &cliFlags{outDir: dir}, paths, log); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"one.xhtml", "two.xhtml"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading output %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestRunAggregatesFailures(t *testing.T) {
	dir := t.TempDir()
	log := zap.NewNop()

	good := filepath.Join(dir, "good.md")
	if err := os.WriteFile(good, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	missing := filepath.Join(dir, "missing.md")

	err := run(context.Background(), &cliFlags{outDir: dir}, []string{good, missing}, log)
	if !errors.Is(err, ErrReadMarkdown) {
		t.Errorf("run() error = %v, want ErrReadMarkdown", err)
	}

	// The good file still converts despite the batch failure.
	if _, statErr := os.Stat(filepath.Join(dir, "good.xhtml")); statErr != nil {
		t.Errorf("good.xhtml missing: %v", statErr)
	}
}
