package loyalty

import (
	"bytes"
	"encoding/json"

	pkgerrors "github.com/rewardplus/loyalty-console/pkg/errors"
)

// envelope is the outer wrapper every loyalty API response shares.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      *apiError       `json:"error"`
	Timestamp  string          `json:"timestamp"`
	Pagination *Pagination     `json:"pagination"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// Pagination mirrors the API's page metadata for list responses.
type Pagination struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// normalizeListPayload accepts the three list shapes the API emits:
// a bare array, a page object with a "content" array, or null/absent
// data. It returns the raw array, or nil when the payload carries no
// rows. Anything else is a shape error.
func normalizeListPayload(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		return trimmed, nil
	case '{':
		var page struct {
			Content json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeShape, err, "decode page payload")
		}
		content := bytes.TrimSpace(page.Content)
		if len(content) == 0 || bytes.Equal(content, []byte("null")) {
			return nil, nil
		}
		if content[0] != '[' {
			return nil, pkgerrors.New(pkgerrors.CodeShape, "page content is not a list")
		}
		return content, nil
	default:
		return nil, pkgerrors.New(pkgerrors.CodeShape, "payload is neither a list nor a page")
	}
}

// decodeListInto applies list normalization and unmarshals the rows
// into the provided slice pointer. Empty payloads leave the slice nil.
func decodeListInto(raw json.RawMessage, out any) error {
	payload, err := normalizeListPayload(raw)
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeShape, err, "decode list rows")
	}
	return nil
}

// decodeObjectInto unmarshals a single-object payload. A null payload
// is a shape error: object endpoints always return a body on success.
func decodeObjectInto(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return pkgerrors.New(pkgerrors.CodeShape, "missing object payload")
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeShape, err, "decode object payload")
	}
	return nil
}
