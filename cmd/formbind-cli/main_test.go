package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestRun_Definition(t *testing.T) {
	dir := t.TempDir()
	values := filepath.Join(dir, "values.yaml")
	if err := os.WriteFile(values, []byte("title: From values\n"), 0o644); err != nil {
		t.Fatalf("write values: %v", err)
	}

	html, err := run(context.Background(), zap.NewNop(), options{
		definition: filepath.Join("..", "..", "testdata", "article.yaml"),
		values:     values,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, fragment := range []string{`<form id="article"`, `value="From values"`, `<option value="draft" selected>draft</option>`} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestRun_OpenAPI(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "openapi.yaml")
	payload := `
openapi: 3.0.3
info: {title: Notes, version: 1.0.0}
paths: {}
components:
  schemas:
    Note:
      type: object
      properties:
        pinned:
          type: boolean
          default: true
`
	if err := os.WriteFile(doc, []byte(payload), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	html, err := run(context.Background(), zap.NewNop(), options{openapi: doc, schema: "Note", action: "/notes"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, fragment := range []string{`<form id="note" method="post" action="/notes">`, `type="checkbox"`, ` checked`} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestLoadDefinition_RequiresSource(t *testing.T) {
	if _, err := loadDefinition(context.Background(), options{}); err == nil {
		t.Fatalf("expected error without a source")
	}
	if _, err := loadDefinition(context.Background(), options{openapi: "doc.yaml"}); err == nil {
		t.Fatalf("expected error without -schema")
	}
}
