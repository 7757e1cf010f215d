package quizgen

import (
	"encoding/json"
	"strings"
)

// missingIndex marks a draft whose payload omitted correct_option, so the
// validator can distinguish it from an explicit 0.
const missingIndex = -1

// draftPayload mirrors the model's JSON shape. CorrectOption is a pointer
// so an absent field is distinguishable from answer A.
type draftPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption *int     `json:"correct_option"`
	Explanation   string   `json:"explanation"`
}

// Parse extracts question drafts from raw model output. It tolerates
// surrounding prose and markdown fences: a ```json fence is preferred, then
// any fence, then the whole response is treated as the payload. The payload
// may be a JSON array or a single object. Elements that do not decode onto
// the draft shape are silently dropped; Parse fails with ParseError only
// when no well-formed element remains.
func Parse(raw string) ([]QuestionDraft, error) {
	payload := extractPayload(raw)

	elements, err := splitElements(payload)
	if err != nil {
		return nil, &ParseError{Reason: "no structured payload found", Err: err}
	}

	var drafts []QuestionDraft
	for _, el := range elements {
		var p draftPayload
		if err := json.Unmarshal(el, &p); err != nil {
			continue
		}
		d := QuestionDraft{
			Question:     strings.TrimSpace(p.Question),
			Options:      p.Options,
			CorrectIndex: missingIndex,
			Explanation:  strings.TrimSpace(p.Explanation),
		}
		if p.CorrectOption != nil {
			d.CorrectIndex = *p.CorrectOption
		}
		drafts = append(drafts, d)
	}

	if len(drafts) == 0 {
		return nil, &ParseError{Reason: "no well-formed question objects in response"}
	}
	return drafts, nil
}

// extractPayload locates the JSON payload inside raw model output.
func extractPayload(raw string) string {
	if body, ok := fencedBlock(raw, "```json"); ok {
		return body
	}
	if body, ok := fencedBlock(raw, "```"); ok {
		return body
	}
	return strings.TrimSpace(raw)
}

// fencedBlock returns the content of the first fence opened by marker.
func fencedBlock(raw, marker string) (string, bool) {
	start := strings.Index(raw, marker)
	if start < 0 {
		return "", false
	}
	body := raw[start+len(marker):]
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "", false
	}
	return body, true
}

// splitElements decodes the payload into individual JSON elements.
// Accepts a top-level array (generation) or a single object (improvement).
func splitElements(payload string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(payload)

	if strings.HasPrefix(trimmed, "{") {
		var single json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
			return nil, err
		}
		return []json.RawMessage{single}, nil
	}

	var many []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &many); err != nil {
		return nil, err
	}
	return many, nil
}
