package constants

import (
	"path/filepath"
	"strings"
)

const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
)

const (
	MIMECSV  = "text/csv; charset=utf-8"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// NormalizeExportFormat maps ?format= (or a file name) to csv|xlsx; ok=false for anything else.
func NormalizeExportFormat(raw string) (string, bool) {
	f := strings.ToLower(strings.TrimSpace(raw))
	if ext := filepath.Ext(f); ext != "" {
		f = strings.TrimPrefix(ext, ".")
	}
	switch f {
	case "", ExportCSV:
		return ExportCSV, true
	case ExportXLSX, "excel":
		return ExportXLSX, true
	default:
		return "", false
	}
}

func ExportContentType(format string) string {
	if format == ExportXLSX {
		return MIMEXLSX
	}
	return MIMECSV
}
