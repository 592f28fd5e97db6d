package manifest

import (
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile(t *testing.T) {
	p, err := ParseFile(testPath("valid.json"))
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if p.Name != "my-app" {
		t.Errorf("Name = %q, want %q", p.Name, "my-app")
	}
	if !p.IsModule() {
		t.Error("expected module type")
	}
	if !p.HasScript(DevScript) {
		t.Error("expected dev script")
	}
	if dep, ok := p.Dependency("smoothjs"); !ok || dep != "^1.0.0" {
		t.Errorf("Dependency(smoothjs) = %q, %v", dep, ok)
	}

	legacy, err := ParseFile(testPath("commonjs.json"))
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if legacy.IsModule() || legacy.HasScript(DevScript) {
		t.Error("commonjs manifest should not be a module nor have a dev script")
	}
}

func TestParseFile_Errors(t *testing.T) {
	if _, err := ParseFile(testPath("not-json.json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := ParseFile(testPath("nonexistent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		file      string
		wantValid bool
		wantPaths []string
	}{
		{"valid.json", true, nil},
		{"commonjs.json", true, nil},
		{"bad-fields.json", false, []string{"/name", "/type", "/scripts/dev"}},
		{"missing-version.json", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", tt.file, err)
			}
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.wantValid, result.Issues)
			}
			if !tt.wantValid && len(result.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			for _, want := range tt.wantPaths {
				found := false
				for _, issue := range result.Issues {
					if issue.Path == want {
						found = true
						if issue.Message == "" {
							t.Errorf("issue at %s has empty message", want)
						}
					}
				}
				if !found {
					t.Errorf("expected an issue at %s, got %v", want, result.Issues)
				}
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := ValidateFile(testPath("not-json.json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestValidationIssueString(t *testing.T) {
	if got := (ValidationIssue{Path: "/name", Message: "bad"}).String(); got != "/name: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}

func TestParse_ToleratesMistypedFields(t *testing.T) {
	p, err := Parse([]byte(`{"name": "shop", "version": "1.0.0", "private": "true", "scripts": {"dev": 1, "build": "vite build"}}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Name != "shop" || p.Version != "1.0.0" {
		t.Errorf("Name, Version = %q, %q", p.Name, p.Version)
	}
	if p.Private {
		t.Error("Private should stay false for a string value")
	}
	if !p.HasScript("build") {
		t.Errorf("Scripts = %v, want build kept", p.Scripts)
	}
}

func TestParse_RejectsNonObjects(t *testing.T) {
	for _, in := range []string{`[1, 2]`, `null`, `"x"`, `{ nope`} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%s) should fail", in)
		}
	}
}
