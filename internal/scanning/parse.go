package scanning

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseFieldsJSON parses the model's JSON reply into Fields. Values that
// arrive as numbers are rendered back to text, missing or null keys
// become empty strings. Nothing is ever invented for an unreadable
// field: a receipt with no visible date keeps an empty date.
func parseFieldsJSON(text string) (*Fields, error) {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	// Find the JSON object boundaries - look for first { and last }
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	endIdx := strings.LastIndex(text, "}")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON object in response")
	}

	text = text[startIdx : endIdx+1]

	raw := map[string]any{}
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	return &Fields{
		Sender:      stringField(raw, "emisor"),
		Amount:      stringField(raw, "monto"),
		Recipient:   stringField(raw, "destinatario"),
		OperationID: stringField(raw, "id_operacion"),
		Date:        stringField(raw, "fecha"),
		Time:        stringField(raw, "horario"),
	}, nil
}

// stringField reads one key from the decoded reply, tolerating models
// that answer with numbers where the prompt asked for strings.
func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
