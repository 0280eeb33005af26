// Package export renders monthly summary rows as CSV or XLSX.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"attendance_backend/internals/features/attendance/reports/dto"
)

const SheetName = "Attendance"

var Header = []string{
	"Employee Name",
	"Employee ID",
	"Present Days",
	"Absent Days",
	"Leave Days",
	"Holiday Days",
	"Total Days",
	"Attendance %",
}

// Filename is attendance_report_{year}_{month}.{ext}, month not zero-padded.
func Filename(year, month int, ext string) string {
	return fmt.Sprintf("attendance_report_%d_%d.%s", year, month, ext)
}

func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}

func record(r dto.SummaryRow) []string {
	return []string{
		r.Employee.Name,
		r.Employee.Code,
		strconv.Itoa(r.Present),
		strconv.Itoa(r.Absent),
		strconv.Itoa(r.Leave),
		strconv.Itoa(r.Holiday),
		strconv.Itoa(r.TotalDays),
		FormatPercentage(r.Percentage),
	}
}

func WriteCSV(w io.Writer, rows []dto.SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ToCSV(rows []dto.SummaryRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToXLSX writes the same table as ToCSV onto a single sheet with a bold header.
// Counts are stored as numbers.
func ToXLSX(rows []dto.SummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Header))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			r.Employee.Name,
			r.Employee.Code,
			r.Present,
			r.Absent,
			r.Leave,
			r.Holiday,
			r.TotalDays,
			r.Percentage,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, err
		}
	}
	if len(rows) > 0 {
		pctFmt := `0.00"%"`
		pct, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, lastCol+"2", fmt.Sprintf("%s%d", lastCol, len(rows)+1), pct); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "B", lastCol, 14); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
