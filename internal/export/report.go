package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Row is the audit detail for one receipt in the XLSX report.
type Row struct {
	File        string
	Sender      string
	Amount      string
	Recipient   string
	OperationID string
	Date        string
	Time        string
	Line        string
	Duplicate   bool
	Warnings    []string
}

// Text joins the sheet lines into the paste-ready blob.
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}

// TextFileName names the TXT download after the batch timestamp.
func TextFileName(t time.Time) string {
	return fmt.Sprintf("comprobantes_%s.txt", t.Format("20060102_150405"))
}

// ReportFileName names the XLSX download after the batch timestamp.
func ReportFileName(t time.Time) string {
	return fmt.Sprintf("comprobantes_%s.xlsx", t.Format("20060102_150405"))
}

var detailHeader = []string{"Archivo", "Emisor", "Monto", "Destinatario", "ID Operación", "Fecha", "Horario", "Línea", "Duplicado", "Advertencias"}

// Report renders a batch as a workbook. The Planilla sheet mirrors the
// paste-ready lines one per row; the Detalle sheet carries the audit
// columns, flagging duplicates and warnings per receipt.
func Report(lines []string, rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const planilla = "Planilla"
	if err := f.SetSheetName("Sheet1", planilla); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	for i, line := range lines {
		if err := setCell(f, planilla, 1, i+1, line); err != nil {
			return nil, err
		}
	}

	const detalle = "Detalle"
	if _, err := f.NewSheet(detalle); err != nil {
		return nil, fmt.Errorf("creating detail sheet: %w", err)
	}
	for col, title := range detailHeader {
		if err := setCell(f, detalle, col+1, 1, title); err != nil {
			return nil, err
		}
	}
	for i, row := range rows {
		values := []any{
			row.File,
			row.Sender,
			amountCell(row.Amount),
			row.Recipient,
			row.OperationID,
			row.Date,
			row.Time,
			row.Line,
			duplicateCell(row.Duplicate),
			strings.Join(row.Warnings, "; "),
		}
		for col, value := range values {
			if err := setCell(f, detalle, col+1, i+2, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("addressing cell: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("writing cell %s: %w", cell, err)
	}
	return nil
}

// amountCell prefers a numeric cell so spreadsheet sums work. Canonical
// amounts use a decimal comma, which parses once swapped to a point;
// anything unparseable stays text.
func amountCell(amount string) any {
	d, err := decimal.NewFromString(strings.ReplaceAll(amount, ",", "."))
	if err != nil {
		return amount
	}
	return d.InexactFloat64()
}

func duplicateCell(duplicate bool) string {
	if duplicate {
		return "sí"
	}
	return ""
}
