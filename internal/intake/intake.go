package intake

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// File is one receipt document ready for extraction: its original name,
// raw bytes and a MIME-type hint.
type File struct {
	Name        string
	Data        []byte
	ContentType string
}

// Expand flattens a sequence of uploads into the receipts to process.
// Files keep their upload order; a ZIP upload is replaced in place by
// its entries in archive listing order. A broken archive is logged and
// skipped, keeping whatever entries were already read, so one bad
// upload never sinks the batch.
func Expand(uploads []File) []File {
	var files []File
	for _, upload := range uploads {
		if strings.HasSuffix(strings.ToLower(upload.Name), ".zip") {
			entries, err := FromZip(upload.Data)
			if err != nil {
				slog.Warn("skipping unreadable archive", "file", upload.Name, "error", err)
			}
			files = append(files, entries...)
			continue
		}
		files = append(files, upload)
	}
	return files
}

// FromZip reads every regular file inside a ZIP archive in listing
// order. On a read error it returns the entries collected so far along
// with the error.
func FromZip(data []byte) ([]File, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening zip: %w", err)
	}

	var files []File
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return files, fmt.Errorf("opening zip entry %s: %w", entry.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return files, fmt.Errorf("reading zip entry %s: %w", entry.Name, err)
		}

		files = append(files, File{
			Name:        entry.Name,
			Data:        content,
			ContentType: DetectContentType(entry.Name),
		})
	}
	return files, nil
}

// DetectContentType maps a filename extension to the MIME hint the
// extraction step expects.
func DetectContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	case ".heic", ".heif":
		return "image/heic"
	default:
		return "application/octet-stream"
	}
}
