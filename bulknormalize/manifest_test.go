package bulknormalize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCurateManifest(t *testing.T) {
	dir := t.TempDir()

	manifest := filepath.Join(dir, "manifest.tsv")
	contents := "input_file\tflight\n" +
		"A_C_1_16BIT.PNG\tFL12\n" +
		"A_C_2_16BIT.PNG\tFL12\n" +
		"ignored_README.md\tFL12\n"
	if err := os.WriteFile(manifest, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	tasks, err := CurateManifest(manifest, dir, dir, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, expected 2", len(tasks))
	}

	if base := filepath.Base(tasks[0].OutputPath); base != "A_C_1_16BIT-N.PNG" {
		t.Errorf("got output %s, expected A_C_1_16BIT-N.PNG", base)
	}
}

func TestCurateManifestMissingColumn(t *testing.T) {
	dir := t.TempDir()

	manifest := filepath.Join(dir, "manifest.tsv")
	if err := os.WriteFile(manifest, []byte("file\nA_C_1_16BIT.PNG\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := CurateManifest(manifest, dir, dir, false); err == nil {
		t.Fatal("expected an error for a manifest without an input_file column")
	}
}
