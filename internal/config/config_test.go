package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "base = 4\nformat = \"json\"\nraw_bytes = true\nworkers = 2\n")
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Base = 4
	want.Format = FormatJSON
	want.RawBytes = true
	want.Workers = 2
	want.Path = path
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "base = \n", "parse error"},
		{"unknown key", "colour = true\n", "unknown key"},
		{"bad format", "format = \"xml\"\n", "unknown format"},
		{"bad level", "log_level = \"loud\"\n", "unknown log level"},
		{"negative workers", "workers = -1\n", "workers"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(write(t, t.TempDir(), tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" {
		// a jvmdis.toml above the temp dir would be picked up here
		t.Skipf("found unrelated config %s", cfg.Path)
	}

	path := write(t, root, "lint = true\n")
	cfg, err = FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != path || !cfg.Lint {
		t.Errorf("FindAndLoad = %+v, want lint from %s", cfg, path)
	}
}
