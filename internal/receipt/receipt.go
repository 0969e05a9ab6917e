package receipt

import (
	"time"

	"github.com/sidera-dev/comprobantes/internal/scanning"
)

// Record is the processed outcome for one receipt: the paste-ready
// spreadsheet line plus everything needed to audit how it was produced.
// The JSON keys match the legacy results format.
type Record struct {
	File        string          `json:"archivo"`
	Line        string          `json:"linea"`
	Sender      string          `json:"emisor"`
	Amount      string          `json:"monto"`
	OperationID string          `json:"id_operacion"`
	Raw         scanning.Fields `json:"datos_raw"`
	Warnings    []string        `json:"advertencias,omitempty"`
}

// Batch is one processing run over an ordered set of receipts. Records
// keep intake order; DuplicateIDs lists operation ids that occurred more
// than once within this batch.
type Batch struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Records      []Record  `json:"resultados"`
	DuplicateIDs []string  `json:"duplicados"`
}

// Lines returns the output lines in intake order.
func (b *Batch) Lines() []string {
	lines := make([]string, len(b.Records))
	for i, record := range b.Records {
		lines[i] = record.Line
	}
	return lines
}

// IsDuplicate reports whether an operation id recurred in this batch.
func (b *Batch) IsDuplicate(operationID string) bool {
	for _, id := range b.DuplicateIDs {
		if id == operationID {
			return true
		}
	}
	return false
}

// Summary is the list view of a stored batch.
type Summary struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	ReceiptCount   int       `json:"receipt_count"`
	DuplicateCount int       `json:"duplicate_count"`
}

// Summary condenses the batch for list endpoints.
func (b *Batch) Summary() Summary {
	return Summary{
		ID:             b.ID,
		CreatedAt:      b.CreatedAt,
		ReceiptCount:   len(b.Records),
		DuplicateCount: len(b.DuplicateIDs),
	}
}
