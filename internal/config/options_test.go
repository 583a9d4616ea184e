package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    Options
		wantErr string
	}{
		{
			name: "yaml",
			path: "funvec.yaml",
			content: `log_level: debug
collation: de
exact: na
warn_as_error: true
max_print: 20
`,
			want: Options{LogLevel: "debug", Color: true, Collation: "de", Exact: "na", WarnAsError: true, KeepAttributes: true, MaxPrint: 20},
		},
		{
			name: "toml",
			path: "funvec.toml",
			content: `log_level = "info"
color = false
keep_attributes = false
`,
			want: Options{LogLevel: "info", Color: false, Collation: CollationC, Exact: ExactTrue, KeepAttributes: false, MaxPrint: 1000},
		},
		{
			name:    "bad level",
			path:    "x.yml",
			content: "log_level: loud\n",
			wantErr: "invalid log_level",
		},
		{
			name:    "bad exact",
			path:    "x.toml",
			content: "exact = \"maybe\"\n",
			wantErr: "invalid exact",
		},
		{
			name:    "unknown extension",
			path:    "x.json",
			content: "{}",
			wantErr: "unsupported option file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions([]byte(tt.content), tt.path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseOptions() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("ParseOptions() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestLoadOptionsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	if err := os.WriteFile(path, []byte("exact: \"false\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.Exact != ExactFalse {
		t.Errorf("Exact = %q, want %q", opts.Exact, ExactFalse)
	}

	if _, err := LoadOptions(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "trace")
	t.Setenv(EnvNoColor, "1")
	opts := DefaultOptions()
	opts.ApplyEnv()
	if opts.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want trace", opts.LogLevel)
	}
	if opts.Color {
		t.Error("Color should be disabled by NO_COLOR")
	}
}
