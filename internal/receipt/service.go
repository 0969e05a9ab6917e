package receipt

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sidera-dev/comprobantes/internal/export"
	"github.com/sidera-dev/comprobantes/internal/intake"
	"github.com/sidera-dev/comprobantes/internal/scanning"
	"github.com/sidera-dev/comprobantes/internal/sheet"
)

// IDGenerator generates unique IDs for batches
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates random UUID batch ids
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return uuid.NewString()
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service turns uploaded receipt files into stored, exportable batches
type Service struct {
	db          DB
	scanner     scanning.Scanner
	storage     Storage
	rules       sheet.RuleSet
	workers     int
	idGenerator IDGenerator
	timeSource  TimeSource
}

// NewService creates a new Service with default ID generator and time source
func NewService(db DB, scanner scanning.Scanner, storage Storage, rules sheet.RuleSet, workers int) *Service {
	return NewServiceWithDeps(db, scanner, storage, rules, workers, &defaultIDGenerator{}, &defaultTimeSource{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, scanner scanning.Scanner, storage Storage, rules sheet.RuleSet, workers int, idGen IDGenerator, timeSrc TimeSource) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		db:          db,
		scanner:     scanner,
		storage:     storage,
		rules:       rules,
		workers:     workers,
		idGenerator: idGen,
		timeSource:  timeSrc,
	}
}

func sheetFileName(batchID string) string {
	return batchID + "_planilla.txt"
}

func reportFileName(batchID string) string {
	return batchID + "_reporte.xlsx"
}

// ProcessBatch runs extraction and formatting over the files of one
// upload, in order. Extraction runs on a bounded worker pool, but each
// result is written back by position, so records always mirror intake
// order and duplicate detection sees the complete ordered batch. A
// receipt whose extraction fails degrades to empty fields; it never
// aborts the batch.
func (s *Service) ProcessBatch(files []intake.File) (*Batch, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to process")
	}

	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	records := make([]Record, len(files))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file intake.File) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			records[i] = s.processOne(file)
		}(i, file)
	}
	wg.Wait()

	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.OperationID
	}
	duplicates := sheet.DuplicateIDs(ids)
	if duplicates == nil {
		duplicates = []string{}
	}

	batch := &Batch{
		ID:           id,
		CreatedAt:    now,
		Records:      records,
		DuplicateIDs: duplicates,
	}

	if err := s.archiveExports(batch); err != nil {
		return nil, err
	}

	if err := s.db.SaveBatch(batch); err != nil {
		// Clean up archived exports if the database save fails
		s.storage.Delete(sheetFileName(id))
		s.storage.Delete(reportFileName(id))
		return nil, fmt.Errorf("saving batch to database: %w", err)
	}

	return batch, nil
}

// processOne extracts one receipt and formats its record. Scan failures
// are logged and degrade to all-empty fields, leaving the rest of the
// batch unaffected.
func (s *Service) processOne(file intake.File) Record {
	fields := &scanning.Fields{}
	scanned, err := s.scanner.ScanReceipt(file.Data, file.ContentType)
	if err != nil {
		slog.Error("Failed to scan receipt",
			"filename", file.Name,
			"content_type", file.ContentType,
			"file_size", len(file.Data),
			"error", err,
		)
	} else {
		fields = scanned
	}

	sender := sheet.ResolveSender(fields.Sender, fields.OperationID, fields.Date, fields.Time)
	amount := sheet.NormalizeAmount(fields.Amount)
	line := sheet.FormatLine(s.rules, sender, amount, fields.Recipient)

	return Record{
		File:        file.Name,
		Line:        line,
		Sender:      sender,
		Amount:      amount,
		OperationID: fields.OperationID,
		Raw:         *fields,
		Warnings:    sheet.CheckFields(amount, fields.Date, fields.Time),
	}
}

// archiveExports writes the paste-ready text and the XLSX report for a
// batch into storage, cleaning up after itself on failure.
func (s *Service) archiveExports(batch *Batch) error {
	lines := batch.Lines()

	if err := s.storage.Save(sheetFileName(batch.ID), []byte(export.Text(lines))); err != nil {
		return fmt.Errorf("archiving sheet text: %w", err)
	}

	workbook, err := export.Report(lines, s.reportRows(batch))
	if err != nil {
		s.storage.Delete(sheetFileName(batch.ID))
		return fmt.Errorf("building report: %w", err)
	}
	if err := s.storage.Save(reportFileName(batch.ID), workbook); err != nil {
		s.storage.Delete(sheetFileName(batch.ID))
		return fmt.Errorf("archiving report: %w", err)
	}

	return nil
}

func (s *Service) reportRows(batch *Batch) []export.Row {
	rows := make([]export.Row, len(batch.Records))
	for i, record := range batch.Records {
		rows[i] = export.Row{
			File:        record.File,
			Sender:      record.Sender,
			Amount:      record.Amount,
			Recipient:   record.Raw.Recipient,
			OperationID: record.OperationID,
			Date:        record.Raw.Date,
			Time:        record.Raw.Time,
			Line:        record.Line,
			Duplicate:   batch.IsDuplicate(record.OperationID),
			Warnings:    record.Warnings,
		}
	}
	return rows
}

// GetBatch retrieves a batch by ID
func (s *Service) GetBatch(id string) (*Batch, error) {
	batch, err := s.db.GetBatch(id)
	if err != nil {
		return nil, fmt.Errorf("getting batch: %w", err)
	}
	return batch, nil
}

// ListBatches returns summaries of all stored batches, newest first
func (s *Service) ListBatches() ([]Summary, error) {
	batches, err := s.db.ListBatches()
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}

	summaries := make([]Summary, 0, len(batches))
	for _, batch := range batches {
		summaries = append(summaries, batch.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

// SheetText returns the archived paste-ready text for a batch along
// with the download filename
func (s *Service) SheetText(id string) ([]byte, string, error) {
	batch, err := s.db.GetBatch(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting batch: %w", err)
	}

	data, err := s.storage.Get(sheetFileName(id))
	if err != nil {
		return nil, "", fmt.Errorf("getting sheet text: %w", err)
	}

	return data, export.TextFileName(batch.CreatedAt), nil
}

// Report returns the archived XLSX report for a batch along with the
// download filename
func (s *Service) Report(id string) ([]byte, string, error) {
	batch, err := s.db.GetBatch(id)
	if err != nil {
		return nil, "", fmt.Errorf("getting batch: %w", err)
	}

	data, err := s.storage.Get(reportFileName(id))
	if err != nil {
		return nil, "", fmt.Errorf("getting report: %w", err)
	}

	return data, export.ReportFileName(batch.CreatedAt), nil
}

// DeleteBatch removes a batch and its archived exports
func (s *Service) DeleteBatch(id string) error {
	if _, err := s.db.GetBatch(id); err != nil {
		return fmt.Errorf("getting batch for deletion: %w", err)
	}

	for _, name := range []string{sheetFileName(id), reportFileName(id)} {
		if err := s.storage.Delete(name); err != nil {
			// Log error but continue with database deletion
			slog.Warn("Failed to delete archived export", "filename", name, "error", err)
		}
	}

	if err := s.db.DeleteBatch(id); err != nil {
		return fmt.Errorf("deleting batch from database: %w", err)
	}
	return nil
}
