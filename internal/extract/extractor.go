package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ContentType is the coarse media category of an input file.
type ContentType string

const (
	ContentText    ContentType = "text"
	ContentPDF     ContentType = "pdf"
	ContentSlides  ContentType = "slides"
	ContentAudio   ContentType = "audio"
	ContentVideo   ContentType = "video"
	ContentUnknown ContentType = "unknown"
)

// contentTypes maps lowercase file extensions to their category.
var contentTypes = map[string]ContentType{
	".txt":  ContentText,
	".md":   ContentText,
	".rtf":  ContentText,
	".pdf":  ContentPDF,
	".ppt":  ContentSlides,
	".pptx": ContentSlides,
	".mp3":  ContentAudio,
	".wav":  ContentAudio,
	".ogg":  ContentAudio,
	".flac": ContentAudio,
	".mp4":  ContentVideo,
	".avi":  ContentVideo,
	".mov":  ContentVideo,
	".mkv":  ContentVideo,
}

// Result is the outcome of extracting text from an input file.
type Result struct {
	// Text is the extracted plain text.
	Text string

	// ContentType is the detected media category.
	ContentType ContentType

	// Metadata carries extractor-specific details such as the source
	// path and byte size.
	Metadata map[string]string
}

// UnsupportedFormatError indicates the file's media category has no
// extractor wired in.
type UnsupportedFormatError struct {
	Path        string
	ContentType ContentType
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no text extractor for %s content: %s", e.ContentType, e.Path)
}

// DetectContentType classifies a file by its extension.
func DetectContentType(path string) ContentType {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return ContentUnknown
}

// Extract reads path and returns its textual content. Only text formats
// are handled directly; other categories report UnsupportedFormatError
// so the caller can tell the user what kind of input was recognized.
func Extract(path string) (*Result, error) {
	ct := DetectContentType(path)
	switch ct {
	case ContentText:
		return extractText(path)
	default:
		return nil, &UnsupportedFormatError{Path: path, ContentType: ct}
	}
}
