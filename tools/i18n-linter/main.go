// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every message ID passed to i18n.T exists in the
// primary locale, that every locale carries the primary locale's IDs, and
// reports IDs nobody uses. It exits non-zero on unknown or missing IDs.
//
// Usage:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

var keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// Report is the outcome of one lint run. All slices are sorted.
type Report struct {
	Used     []string            // IDs referenced from Go code
	Unknown  []string            // used but absent from the primary locale
	Orphaned []string            // in the primary locale but never used
	Missing  map[string][]string // locale file -> IDs it lacks
}

// Failed reports whether the run found problems that should fail a build.
// Orphaned IDs only warn.
func (r Report) Failed() bool {
	if len(r.Unknown) > 0 {
		return true
	}
	for _, ids := range r.Missing {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}

func main() {
	rep, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, rep)
	if rep.Failed() {
		os.Exit(1)
	}
}

// lint scans root for used IDs and compares them with the locale files in
// locales.
func lint(root, locales string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("loading primary locale: %w", err)
	}

	rep := Report{Used: sortedKeys(used), Missing: map[string][]string{}}
	for _, id := range rep.Used {
		if _, ok := primary[id]; !ok {
			rep.Unknown = append(rep.Unknown, id)
		}
	}
	for _, id := range sortedKeys(primary) {
		if _, ok := used[id]; !ok {
			rep.Orphaned = append(rep.Orphaned, id)
		}
	}

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for _, id := range sortedKeys(primary) {
			if _, ok := keys[id]; !ok {
				missing = append(missing, id)
			}
		}
		rep.Missing[filepath.Base(file)] = missing
	}
	return rep, nil
}

func printReport(w io.Writer, rep Report) {
	fmt.Fprintf(w, "%d message IDs used in source code.\n", len(rep.Used))
	for _, id := range rep.Unknown {
		fmt.Fprintf(w, "  unknown: %s\n", id)
	}
	for _, id := range rep.Orphaned {
		fmt.Fprintf(w, "  orphaned: %s\n", id)
	}
	for _, file := range sortedKeys(rep.Missing) {
		for _, id := range rep.Missing[file] {
			fmt.Fprintf(w, "  missing in %s: %s\n", file, id)
		}
	}
	if rep.Failed() {
		fmt.Fprintln(w, "Locale files are inconsistent.")
	} else {
		fmt.Fprintln(w, "Locale files are consistent.")
	}
}

// findUsedKeys collects the literal IDs of i18n.T calls in non-test Go files
// below root. Hidden and underscore-prefixed directories and tools/ are
// skipped, the same set the go tool ignores plus this linter's own home.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML locale and returns its flattened IDs.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated IDs. Message IDs in this
// project are flat, but nested files are accepted.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flattenYAML(k, val, keys)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
