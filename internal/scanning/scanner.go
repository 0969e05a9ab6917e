package scanning

// Fields holds the six raw values extracted from one transfer receipt.
// Every key is always present; a field the model could not read is the
// empty string, never absent or null.
type Fields struct {
	Sender      string `json:"emisor"`
	Amount      string `json:"monto"`
	Recipient   string `json:"destinatario"`
	OperationID string `json:"id_operacion"`
	Date        string `json:"fecha"`   // YYYY-MM-DD when readable
	Time        string `json:"horario"` // HH:MM:SS when readable
}

// Scanner defines the interface for receipt field extraction
type Scanner interface {
	// ScanReceipt analyzes a receipt image/PDF and extracts the transfer fields
	ScanReceipt(imageData []byte, contentType string) (*Fields, error)
	// Close closes the scanner and releases resources
	Close() error
}
