package orchestration

import (
	"encoding/json"
	"fmt"
)

// DefaultCombiner is the stock combination function. It measures the JSON
// encoding of the input and every payload and reports the total size. The
// encoding sorts map keys, so the output is reproducible for identical
// arguments and succeeds even when every payload is empty.
func DefaultCombiner(input string, payloads []map[string]any) (string, error) {
	doc := struct {
		Input    string           `json:"input"`
		Enriched []map[string]any `json:"enriched"`
	}{Input: input, Enriched: payloads}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding combined document: %w", err)
	}
	return fmt.Sprintf("Processed: %d characters of data", len(encoded)), nil
}
