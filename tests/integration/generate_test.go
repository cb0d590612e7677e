package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// normalizeYAML parses a template body so comparisons ignore formatting
// details like quoting style and indentation.
func normalizeYAML(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, data)
	}
	return parsed
}

// compareWithGoldenFile compares a generated template with a golden file.
func compareWithGoldenFile(t *testing.T, actual []byte, goldenPath string) {
	t.Helper()
	goldenFile := filepath.Join("testdata", goldenPath)

	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", goldenFile, err)
	}

	if diff := cmp.Diff(normalizeYAML(t, expected), normalizeYAML(t, actual)); diff != "" {
		t.Errorf("template mismatch (-expected +actual):\n%s", diff)
	}
}

func TestGenerateSingleTemplate(t *testing.T) {
	binary := buildHelper(t)
	workDir := t.TempDir()

	stdout, stderr, err := runCommand(workDir, binary, "generate",
		"--instance", "ssoins-1234",
		"-g", "g-1111",
		"-u", "u-2222",
		"-p", "arn:aws:sso:::permissionSet/ssoins-1234/ps-aaaa",
		"-p", "ps-bbbb",
		"-a", "111111111111",
		"-a", "!Ref=AccountParam",
	)
	if err != nil {
		t.Fatalf("generate failed: %v\nstdout: %s\nstderr: %s", err, stdout, stderr)
	}

	data, err := os.ReadFile(filepath.Join(workDir, "template.yaml"))
	if err != nil {
		t.Fatalf("failed to read generated template: %v", err)
	}
	compareWithGoldenFile(t, data, "single_template.yaml")
}

func TestGenerateMultipleTemplates(t *testing.T) {
	binary := buildHelper(t)
	workDir := t.TempDir()

	stdout, stderr, err := runCommand(workDir, binary, "generate",
		"--instance", "ssoins-1234",
		"-g", "g-1111",
		"-u", "u-2222",
		"-p", "ps-aaaa",
		"-p", "ps-bbbb",
		"-a", "111111111111",
		"-a", "222222222222",
		"--max-resources-per-template", "3",
	)
	if err != nil {
		t.Fatalf("generate failed: %v\nstdout: %s\nstderr: %s", err, stdout, stderr)
	}

	// 2 principals x 2 permission sets x 2 accounts = 8 records in chunks
	// of 3: template01 through template03 with sizes 3, 3, 2.
	wantSizes := map[string]int{
		"template01.yaml": 3,
		"template02.yaml": 3,
		"template03.yaml": 2,
	}
	if _, err := os.Stat(filepath.Join(workDir, "template.yaml")); err == nil {
		t.Error("unnumbered template.yaml written alongside numbered templates")
	}

	seen := make(map[string]bool)
	for name, wantSize := range wantSizes {
		data, err := os.ReadFile(filepath.Join(workDir, name))
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		parsed := normalizeYAML(t, data)
		resources, ok := parsed["Resources"].(map[string]interface{})
		if !ok {
			t.Fatalf("%s has no Resources mapping", name)
		}
		if len(resources) != wantSize {
			t.Errorf("%s has %d resources, want %d", name, len(resources), wantSize)
		}
		for id := range resources {
			if seen[id] {
				t.Errorf("logical id %s appears in more than one template", id)
			}
			seen[id] = true
		}
	}

	// Numbering is global and contiguous across templates.
	for _, id := range []string{
		"Assignment001", "Assignment002", "Assignment003", "Assignment004",
		"Assignment005", "Assignment006", "Assignment007", "Assignment008",
	} {
		if !seen[id] {
			t.Errorf("logical id %s missing from output", id)
		}
	}
}

func TestGenerateFromInputFile(t *testing.T) {
	binary := buildHelper(t)
	workDir := t.TempDir()

	inputPath := filepath.Join(workDir, "input.ini")
	input := `[instance]
ssoins-1234

[groups]
g-1111

[permission-sets]
ps-bbbb

[accounts]
!Ref = AccountParam
`
	if err := os.WriteFile(inputPath, []byte(input), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	stdout, stderr, err := runCommand(workDir, binary, "generate", "--input-file", inputPath)
	if err != nil {
		t.Fatalf("generate failed: %v\nstdout: %s\nstderr: %s", err, stdout, stderr)
	}

	data, err := os.ReadFile(filepath.Join(workDir, "template.yaml"))
	if err != nil {
		t.Fatalf("failed to read generated template: %v", err)
	}
	compareWithGoldenFile(t, data, "input_file_template.yaml")
}

func TestGenerateFailures(t *testing.T) {
	binary := buildHelper(t)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "Non Positive Max Per Template",
			args: []string{"generate", "--instance", "ssoins-1234",
				"-g", "g-1111", "-p", "ps-aaaa", "-a", "111111111111",
				"--max-resources-per-template", "0"},
		},
		{
			name: "No Principals",
			args: []string{"generate", "--instance", "ssoins-1234",
				"-p", "ps-aaaa", "-a", "111111111111"},
		},
		{
			name: "No Permission Sets",
			args: []string{"generate", "--instance", "ssoins-1234",
				"-g", "g-1111", "-a", "111111111111"},
		},
		{
			name: "No Targets",
			args: []string{"generate", "--instance", "ssoins-1234",
				"-g", "g-1111", "-p", "ps-aaaa"},
		},
		{
			name: "Reference OU",
			args: []string{"generate", "--instance", "ssoins-1234",
				"-g", "g-1111", "-p", "ps-aaaa", "-o", "!Ref=OUParam"},
		},
		{
			name: "Input File Combined With Flags",
			args: []string{"generate", "--input-file", "input.ini",
				"-g", "g-1111"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := t.TempDir()
			stdout, stderr, err := runCommand(workDir, binary, tt.args...)
			if err == nil {
				t.Fatalf("generate succeeded, want failure\nstdout: %s\nstderr: %s", stdout, stderr)
			}

			// A failed run must not leave partial templates behind.
			entries, readErr := os.ReadDir(workDir)
			if readErr != nil {
				t.Fatalf("failed to list work dir: %v", readErr)
			}
			for _, entry := range entries {
				if filepath.Ext(entry.Name()) == ".yaml" {
					t.Errorf("failed run wrote %s", entry.Name())
				}
			}
		})
	}
}
