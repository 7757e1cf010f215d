package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		path string
		want ContentType
	}{
		{"notes.txt", ContentText},
		{"README.md", ContentText},
		{"slides.PPTX", ContentSlides},
		{"paper.pdf", ContentPDF},
		{"lecture.mp3", ContentAudio},
		{"talk.mkv", ContentVideo},
		{"archive.zip", ContentUnknown},
		{"noextension", ContentUnknown},
	}
	for _, tt := range tests {
		if got := DetectContentType(tt.path); got != tt.want {
			t.Errorf("DetectContentType(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestExtractTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lecture.md")
	content := "  # The Water Cycle\n\nEvaporation, condensation, precipitation.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if res.ContentType != ContentText {
		t.Errorf("ContentType = %s, want text", res.ContentType)
	}
	if res.Text != "# The Water Cycle\n\nEvaporation, condensation, precipitation." {
		t.Errorf("unexpected text: %q", res.Text)
	}
	if res.Metadata["path"] != path {
		t.Errorf("metadata path = %q", res.Metadata["path"])
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("talk.mp4")
	var uerr *UnsupportedFormatError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if uerr.ContentType != ContentVideo {
		t.Errorf("ContentType = %s, want video", uerr.ContentType)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
