// Package export renders processed contacts as an XLSX workbook, the
// operator-facing artifact for audits and manual list repair.
package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tunde-ajayi/cardscan/internal/entity"
)

// Service produces XLSX bytes for contact exports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ContactsXLSX returns an XLSX workbook (as bytes) listing the given
// contact records in order, one row per record, skipped records included
// so the operator can see why a card never reached the list.
func (s *Service) ContactsXLSX(records []*entity.ContactRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Contacts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop excelize's default sheet
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Name",
		"Title",
		"Company",
		"Email",
		"Phones",
		"Website",
		"Outcome",
		"Skip Reason",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		if r == nil {
			continue
		}
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Name)
		write(2, r.Title)
		write(3, r.Company)
		write(4, r.Email)
		write(5, strings.Join(r.Phones, ", "))
		write(6, r.Website)
		write(7, string(r.Outcome))
		write(8, r.SkipReason)
		write(9, r.SourceFileID)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "C", 28) // title, company
	_ = f.SetColWidth(sheet, "D", "D", 32) // email
	_ = f.SetColWidth(sheet, "E", "E", 24) // phones
	_ = f.SetColWidth(sheet, "F", "F", 28) // website
	_ = f.SetColWidth(sheet, "G", "H", 14) // outcome, reason
	_ = f.SetColWidth(sheet, "I", "I", 66) // source id

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
