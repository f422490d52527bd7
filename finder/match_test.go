package finder

import (
	"context"
	"regexp"
	"testing"
)

func TestNamePredicate(t *testing.T) {
	pred := Name("file.html", "readme.md")

	tests := []struct {
		path string
		want bool
	}{
		{"/files/file.html", true},
		{"/elsewhere/readme.md", true},
		{"/files/file.md", false},
		{"/files/FILE.HTML", false}, // exact match, case-sensitive
	}
	for _, tt := range tests {
		got, err := pred(context.Background(), tt.path)
		if err != nil {
			t.Fatalf("Name predicate on %s: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Name(...) on %s = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNameRegexpPredicate(t *testing.T) {
	pred := NameRegexp(regexp.MustCompile(`^plan-\d+`), regexp.MustCompile(`\.yaml$`))

	tests := []struct {
		path string
		want bool
	}{
		{"/p/plan-001.md", true},
		{"/p/config.yaml", true},
		{"/p/plan-.md", false},
		{"/plan-1/other.md", false}, // only the basename is matched
	}
	for _, tt := range tests {
		got, err := pred(context.Background(), tt.path)
		if err != nil {
			t.Fatalf("NameRegexp predicate on %s: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("NameRegexp(...) on %s = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNameGlobPredicate(t *testing.T) {
	pred := NameGlob("file.*", "plan-??.md")

	tests := []struct {
		path string
		want bool
	}{
		{"/files/file.html", true},
		{"/files/file.md", true},
		{"/files/plan-01.md", true},
		{"/files/plan-001.md", false},
		{"/files/profile.md", false},
	}
	for _, tt := range tests {
		got, err := pred(context.Background(), tt.path)
		if err != nil {
			t.Fatalf("NameGlob predicate on %s: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("NameGlob(...) on %s = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNameGlobInvalidPattern(t *testing.T) {
	pred := NameGlob("[unterminated")

	_, err := pred(context.Background(), "/files/file.md")
	if err == nil {
		t.Fatal("malformed glob must surface as the predicate's error")
	}
}

func TestExtensionPredicate(t *testing.T) {
	tests := []struct {
		name string
		exts []string
		path string
		want bool
	}{
		{"with dot", []string{".md"}, "/d/file.md", true},
		{"without dot", []string{"md"}, "/d/file.md", true},
		{"case-insensitive pattern", []string{".MD"}, "/d/file.md", true},
		{"case-insensitive path", []string{".md"}, "/d/Setup.MD", true},
		{"several extensions", []string{".md", ".yaml"}, "/d/conf.yaml", true},
		{"no extension", []string{".md"}, "/d/Makefile", false},
		{"wrong extension", []string{".md"}, "/d/file.html", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extension(tt.exts...)(context.Background(), tt.path)
			if err != nil {
				t.Fatalf("Extension predicate: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extension(%v) on %s = %v, want %v", tt.exts, tt.path, got, tt.want)
			}
		})
	}
}
