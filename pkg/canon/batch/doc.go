package batch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cognicore/canon/pkg/canon/internalerr"
)

// Doc is one unit of batch input.
type Doc struct {
	Source string `json:"source,omitempty"`
	Text   string `json:"text"`
}

// Validate checks if the document has required fields
func (d *Doc) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return fmt.Errorf("%w: doc text is required", internalerr.ErrInvalidInput)
	}
	return nil
}

// ParseLine reads one input line: a JSON object is decoded as a Doc, anything
// else is taken as plain text.
func ParseLine(line string) (Doc, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Doc{Text: line}, nil
	}
	var d Doc
	if err := json.Unmarshal([]byte(trimmed), &d); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
	}
	return d, nil
}
