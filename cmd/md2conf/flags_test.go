package main

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	flags, inputs, err := parseFlags([]string{
		"--config", "cfg.yaml",
		"-o", "out",
		"-w", "4",
		"--max-depth", "64",
		"--upload",
		"--page-id", "123",
		"--space", "OPS",
		"--title", "Runbook",
		"-v",
		"doc.md",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	want := cliFlags{
		config:   "cfg.yaml",
		outDir:   "out",
		workers:  4,
		maxDepth: 64,
		upload:   true,
		pageID:   "123",
		spaceKey: "OPS",
		title:    "Runbook",
		verbose:  true,
	}
	if *flags != want {
		t.Errorf("flags = %+v, want %+v", *flags, want)
	}
	if len(inputs) != 1 || inputs[0] != "doc.md" {
		t.Errorf("inputs = %v, want [doc.md]", inputs)
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	flags, inputs, err := parseFlags([]string{"a.md", "b.md"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if *flags != (cliFlags{}) {
		t.Errorf("flags = %+v, want zero value", *flags)
	}
	if len(inputs) != 2 {
		t.Errorf("inputs = %v", inputs)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	_, _, err := parseFlags([]string{"--bogus"})
	if !errors.Is(err, errUsage) {
		t.Errorf("parseFlags() error = %v, want errUsage", err)
	}
}
