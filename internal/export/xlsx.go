// Package export writes stored survey entries to a spreadsheet.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/parisxmas/qanda/internal/models"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Answers"

// WriteXLSX writes one row per entry: id, submittedAt and one column per
// question in question order. Responses for questions that are not in the
// entry, or that are null, are left blank.
func WriteXLSX(w io.Writer, questions []models.Question, entries []models.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, len(questions)+2)
	header = append(header, "id", "submittedAt")
	for _, q := range questions {
		header = append(header, q.ID)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		byQuestion := make(map[string]json.RawMessage, len(e.Responses))
		for _, r := range e.Responses {
			byQuestion[r.QuestionID] = r.Response
		}

		row := make([]any, 0, len(questions)+2)
		row = append(row, e.ID, e.SubmittedAt)
		for _, q := range questions {
			row = append(row, CellValue(byQuestion[q.ID]))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// CellValue renders a raw response as spreadsheet text. Strings are
// unquoted, arrays of strings are joined with "; ", null is empty and
// anything else keeps its JSON form.
func CellValue(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return string(raw)
}
