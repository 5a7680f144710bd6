package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRelativeHTMLPath(t *testing.T) {
	tests := []struct {
		name      string
		inputPath string
		inputRoot string
		want      string
		wantErr   error
	}{
		{
			name:      "file at root",
			inputPath: filepath.Join("in", "a.ttl"),
			inputRoot: "in",
			want:      "a.html",
		},
		{
			name:      "nested file keeps structure",
			inputPath: filepath.Join("in", "a", "b.ttl"),
			inputRoot: "in",
			want:      "a/b.html",
		},
		{
			name:      "outside the root",
			inputPath: filepath.Join("elsewhere", "a.ttl"),
			inputRoot: "in",
			wantErr:   ErrOutsideRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeHTMLPath(tt.inputPath, tt.inputRoot)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RelativeHTMLPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RelativeHTMLPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	got, err := OutputPath(filepath.Join("in", "a", "b.ttl"), "in", "out")
	if err != nil {
		t.Fatalf("OutputPath() error = %v", err)
	}
	want := filepath.Join("out", "a", "b.html")
	if got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestSwapExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.ttl", "a.html"},
		{"a/b.ttl", "a/b.html"},
		{"noext", "noext.html"},
		{"two.dots.ttl", "two.dots.html"},
	}

	for _, tt := range tests {
		if got := SwapExtension(tt.path, HTMLExt); got != tt.want {
			t.Errorf("SwapExtension(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestIsTurtleFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.ttl", true},
		{"a.TTL", true},
		{"dir/a.Ttl", true},
		{"a.txt", false},
		{"a.ttl.bak", false},
		{"ttl", false},
	}

	for _, tt := range tests {
		if got := IsTurtleFile(tt.path); got != tt.want {
			t.Errorf("IsTurtleFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(existing file) = false")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true")
	}
}
