package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes each snippet's text on its own line to
// transcript_{videoID}.txt under dir and returns the file path.
func WriteFile(dir, videoID string, snippets []Snippet) (string, error) {
	var b strings.Builder
	for _, s := range snippets {
		b.WriteString(s.Text)
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, fmt.Sprintf("transcript_%s.txt", videoID))
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write transcript file: %w", err)
	}
	return path, nil
}
