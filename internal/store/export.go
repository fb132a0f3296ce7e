package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goaci/internal/beam"
)

// ExportXLSX writes the history (newest first) to an Excel workbook
func (s *Store) ExportXLSX(path string) error {
	records, err := s.List(0)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "History"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"ID", "Timestamp", "Units",
		"f'c", "fy", "Es", "beta1", "b", "h", "d", "Bars", "Bar Area",
		"As", "a", "c", "eps_s", "Steel Yields", "fs",
		"Mn", "phi", "phiMn", "As,min", "As,min OK",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, rec := range records {
		labels := beam.Labels(rec.Input.Units)
		values := []interface{}{
			rec.ID,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Input.Units.String(),
			rec.Input.FcPrime,
			rec.Input.Fy,
			rec.Input.Es,
			rec.Input.Beta1,
			rec.Input.Width,
			rec.Input.Height,
			rec.Input.EffectiveDepth,
			rec.Input.NumBars,
			rec.Input.BarArea,
			rec.Result.As,
			rec.Result.A,
			rec.Result.C,
			rec.Result.EpsilonS,
			rec.Result.SteelYields,
			rec.Result.Fs,
			fmt.Sprintf("%.2f %s", rec.Result.MnDisplay, labels.MomentDisplay),
			rec.Result.Phi,
			fmt.Sprintf("%.2f %s", rec.Result.PhiMnDisplay, labels.MomentDisplay),
			rec.Result.AsMin,
			rec.Result.AsMinOK,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// ExportJSON writes the history (newest first) to a JSON file
func (s *Store) ExportJSON(path string) error {
	records, err := s.List(0)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
