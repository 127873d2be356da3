// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := make(map[string]struct{})
	flattenYAML("", map[string]any{
		"flat.key": "v",
		"top":      map[string]any{"sub": "value"},
	}, keys)
	for _, want := range []string{"flat.key", "top.sub"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("expected %s in %v", want, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cmd", "a.go"), `package cmd
func f() {
	_ = i18n.T("add.success", name)
	_ = i18n.T("get.unknown")
}`)
	writeFile(t, filepath.Join(root, "cmd", "a_test.go"), `package cmd
var _ = i18n.T("test.only")`)
	writeFile(t, filepath.Join(root, "_vendorish", "b.go"), `package b
var _ = i18n.T("ignored.key")`)

	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, primaryLocale), "add.success: \"Stored %s.\"\nunused.key: \"x\"\n")
	writeFile(t, filepath.Join(locales, "active.de.yaml"), "add.success: \"Gespeichert %s.\"\n")

	rep, err := lint(root, locales)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if !slices.Equal(rep.Used, []string{"add.success", "get.unknown"}) {
		t.Fatalf("unexpected used IDs: %v", rep.Used)
	}
	if !slices.Equal(rep.Unknown, []string{"get.unknown"}) {
		t.Fatalf("unexpected unknown IDs: %v", rep.Unknown)
	}
	if !slices.Equal(rep.Orphaned, []string{"unused.key"}) {
		t.Fatalf("unexpected orphaned IDs: %v", rep.Orphaned)
	}
	if !slices.Equal(rep.Missing["active.de.yaml"], []string{"unused.key"}) {
		t.Fatalf("unexpected missing IDs: %v", rep.Missing)
	}
	if !rep.Failed() {
		t.Fatalf("expected report to fail")
	}

	var out bytes.Buffer
	printReport(&out, rep)
	if !strings.Contains(out.String(), "unknown: get.unknown") || !strings.Contains(out.String(), "inconsistent") {
		t.Fatalf("unexpected report output: %q", out.String())
	}
}

// TestRepositoryLocales runs the linter over this repository.
func TestRepositoryLocales(t *testing.T) {
	root := filepath.Join("..", "..")
	rep, err := lint(root, filepath.Join(root, localesDir))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if rep.Failed() {
		var out bytes.Buffer
		printReport(&out, rep)
		t.Fatalf("locale files inconsistent:\n%s", out.String())
	}
}
