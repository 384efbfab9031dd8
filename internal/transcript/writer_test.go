package transcript

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	snippets := []Snippet{
		{Text: "첫 번째 자막", Start: 0.5, Duration: 2},
		{Text: "두 번째 자막", Start: 3, Duration: 1.5},
	}

	path, err := WriteFile(dir, "ABC123", snippets)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if want := filepath.Join(dir, "transcript_ABC123.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "첫 번째 자막\n두 번째 자막\n"
	if string(data) != want {
		t.Errorf("content = %q, want %q", string(data), want)
	}
}
