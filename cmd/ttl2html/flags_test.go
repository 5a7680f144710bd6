package main

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want convertFlags
	}{
		{
			name: "short flags",
			args: []string{"-i", "in", "-o", "out"},
			want: convertFlags{input: "in", output: "out"},
		},
		{
			name: "long flags",
			args: []string{"--input", "in", "--output", "out", "--title", "T", "--strict"},
			want: convertFlags{input: "in", output: "out", title: "T", strict: true},
		},
		{
			name: "positional input",
			args: []string{"in", "-o", "out"},
			want: convertFlags{input: "in", output: "out"},
		},
		{
			name: "explicit input wins over positional",
			args: []string{"-i", "explicit", "positional", "-o", "out"},
			want: convertFlags{input: "explicit", output: "out"},
		},
		{
			name: "index and readme toggles",
			args: []string{"-i", "in", "-o", "out", "--no-index", "--no-readme"},
			want: convertFlags{input: "in", output: "out", noIndex: true, noReadme: true},
		},
		{
			name: "output controls",
			args: []string{"-i", "in", "-o", "out", "-q", "-v"},
			want: convertFlags{input: "in", output: "out", quiet: true, verbose: true},
		},
		{
			name: "version",
			args: []string{"--version"},
			want: convertFlags{version: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseFlagsUnknown(t *testing.T) {
	if _, err := parseFlags([]string{"--bogus"}); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}
