package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerboseReportsMissingEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("HONEYCOMB_ROOMGEN_API_KEY", "")

	out := filepath.Join(t.TempDir(), "roomgen.yaml")

	var stderr bytes.Buffer
	if err := run(context.Background(), &stderr, []string{"--verbose", "config", "-o", out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr.String(), "no .env file loaded") {
		t.Errorf("debug line missing from verbose output:\n%s", stderr.String())
	}

	stderr.Reset()
	if err := run(context.Background(), &stderr, []string{"config", "-o", out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(stderr.String(), "no .env file loaded") {
		t.Errorf("debug line shown without --verbose:\n%s", stderr.String())
	}
}
