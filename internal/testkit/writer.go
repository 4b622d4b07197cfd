package testkit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bedflow/domain/hospital"

	"github.com/xuri/excelize/v2"
)

// recordHeaders is the canonical column order for generated fixtures
var recordHeaders = []string{
	"week", "service", "requests", "admissions", "refusals",
	"beds", "staff", "utilization", "morale", "satisfaction", "events",
}

// WriteCSV writes records as a weekly services CSV fixture
func WriteCSV(path string, records []hospital.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(recordHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(recordRowStrings(rec)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes records as a single-sheet Excel fixture
func WriteXLSX(path string, records []hospital.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range recordHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	for row, rec := range records {
		for col, value := range recordRowStrings(rec) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func recordRowStrings(rec hospital.Record) []string {
	events := make([]string, len(rec.Events))
	for i, ev := range rec.Events {
		events[i] = string(ev)
	}
	return []string{
		strconv.Itoa(rec.Week),
		rec.Service,
		strconv.Itoa(rec.Requests),
		strconv.Itoa(rec.Admitted),
		strconv.Itoa(rec.Refused),
		strconv.Itoa(rec.Beds),
		strconv.Itoa(rec.Staff),
		strconv.FormatFloat(rec.Utilization, 'f', 4, 64),
		strconv.FormatFloat(rec.Morale, 'f', 2, 64),
		strconv.FormatFloat(rec.Satisfaction, 'f', 2, 64),
		strings.Join(events, ";"),
	}
}
