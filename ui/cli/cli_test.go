// Copyright (c) 2026 ToeiRei
// Cricketstats - cricket player statistics store
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/cricketstats/internal/db"
	"github.com/toeirei/cricketstats/internal/model"
)

const kumarJSON = `{
  "name": "A Kumar",
  "country": "India",
  "image": "x.jpg",
  "role": "Bowler",
  "batting_stats": {
    "ODI": {"matches": "10", "runs": "250", "highest_score": "45*",
            "average": "25.0", "strike_rate": "88.5", "hundreds": "0", "fifties": "2"}
  },
  "bowling_stats": {}
}`

// isolate points config lookup and the working directory at a fresh temp
// dir and returns the DSN of a file database inside it.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)

	prev := writeDefaultConfig
	writeDefaultConfig = false
	t.Cleanup(func() { writeDefaultConfig = prev })

	return filepath.Join(dir, "players.db")
}

func run(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--database.dsn", dsn}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestInitCommand(t *testing.T) {
	dsn := isolate(t)

	out, err := run(t, dsn, "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Database tables created successfully.") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := os.Stat(dsn); err != nil {
		t.Fatalf("expected database file: %v", err)
	}

	// The bare root command initializes as well and is idempotent.
	if _, err := run(t, dsn); err != nil {
		t.Fatalf("root run failed: %v", err)
	}
}

func TestAddAndGet(t *testing.T) {
	dsn := isolate(t)
	input := filepath.Join(filepath.Dir(dsn), "kumar.json")
	if err := os.WriteFile(input, []byte(kumarJSON), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := run(t, dsn, "add", input)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Stored player A Kumar.") || !strings.Contains(out, "Stored 1 player record(s).") {
		t.Fatalf("unexpected add output: %q", out)
	}

	out, err = run(t, dsn, "get", "A Kumar")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	for _, want := range []string{"A Kumar (India)", "Role: Bowler", "ODI", "45*", "25.00", "88.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("get output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, dsn, "get", "--json", "A Kumar")
	if err != nil {
		t.Fatalf("get --json failed: %v", err)
	}
	var ps model.PlayerStats
	if err := json.Unmarshal([]byte(out), &ps); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if ps.Player.Name != "A Kumar" || len(ps.Batting) != 1 || len(ps.Bowling) != 0 {
		t.Fatalf("unexpected json record: %+v", ps)
	}
	if b := ps.Batting[0]; b.Matches != 10 || b.Runs != 250 || b.Average != 25.0 || b.StrikeRate != 88.5 {
		t.Fatalf("unexpected coerced batting row: %+v", b)
	}
}

func TestAddRequiresInput(t *testing.T) {
	dsn := isolate(t)
	if _, err := run(t, dsn, "add"); err == nil {
		t.Fatalf("expected error without input files")
	}
}

func TestAddRejectsIncompleteRecord(t *testing.T) {
	dsn := isolate(t)
	input := filepath.Join(filepath.Dir(dsn), "broken.yaml")
	if err := os.WriteFile(input, []byte("name: A Kumar\ncountry: India\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	_, err := run(t, dsn, "add", input)
	if err == nil || !strings.Contains(err.Error(), "image") {
		t.Fatalf("expected missing field error naming image, got %v", err)
	}
}

func TestGetUnknownPlayer(t *testing.T) {
	dsn := isolate(t)
	if _, err := run(t, dsn, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	_, err := run(t, dsn, "get", "Nobody")
	if !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), `"Nobody"`) {
		t.Fatalf("expected the name in the message, got %v", err)
	}
}

func TestMaintenanceCommand(t *testing.T) {
	dsn := isolate(t)
	if _, err := run(t, dsn, "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	out, err := run(t, dsn, "maintenance", "--timeout", "30")
	if err != nil {
		t.Fatalf("maintenance failed: %v", err)
	}
	if !strings.Contains(out, "Maintenance completed successfully.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestUnsupportedDatabaseType(t *testing.T) {
	dsn := isolate(t)
	_, err := run(t, dsn, "--database.type", "oracle", "init")
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported database error, got %v", err)
	}
}

func TestLanguageFlag(t *testing.T) {
	dsn := isolate(t)
	out, err := run(t, dsn, "--language", "de", "init")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if strings.Contains(out, "Database tables created successfully.") {
		t.Fatalf("expected german output, got %q", out)
	}
	// Restore English for the remaining tests in this process.
	if _, err := run(t, dsn, "--language", "en", "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	dsn := isolate(t)
	_, err := run(t, dsn, "--config", filepath.Join(filepath.Dir(dsn), "nope.yaml"), "init")
	if err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestConfigFileSelectsDatabase(t *testing.T) {
	dir := filepath.Dir(isolate(t))
	dsn := filepath.Join(dir, "from-config.db")
	cfg := filepath.Join(dir, "custom.yaml")
	content := "database:\n  type: sqlite\n  dsn: " + dsn + "\n"
	if err := os.WriteFile(cfg, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "init"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(dsn); err != nil {
		t.Fatalf("expected database at configured DSN: %v", err)
	}
}
