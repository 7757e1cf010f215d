package extract

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// extractText reads a plain-text file as UTF-8.
func extractText(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	return &Result{
		Text:        text,
		ContentType: ContentText,
		Metadata: map[string]string{
			"path":  path,
			"bytes": strconv.Itoa(len(data)),
		},
	}, nil
}
