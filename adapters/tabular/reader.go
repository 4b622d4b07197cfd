package tabular

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bedflow/domain/hospital"
	"bedflow/internal"

	"github.com/xuri/excelize/v2"
)

// Reader loads weekly service records from a CSV or XLSX file
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given file. The format is picked
// from the file extension; anything that is not .csv is treated as xlsx.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads and coerces all rows into hospital records. Column positions
// are detected from the header row, so files from different exports load
// without renaming headers first.
func (r *Reader) Read() ([]hospital.Record, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("data file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%s must have a header row and at least one data row", r.filePath)
	}

	cols := DetectColumns(rows[0])
	if !cols.Complete() {
		return nil, fmt.Errorf("could not detect week and service columns in %s, headers: %v",
			filepath.Base(r.filePath), rows[0])
	}
	if missing := missingMetricColumns(cols); len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns in %s: %s",
			filepath.Base(r.filePath), strings.Join(missing, ", "))
	}

	records := make([]hospital.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := r.coerceRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}

	internal.DefaultLogger.Info("[Tabular] loaded %d records from %s", len(records), filepath.Base(r.filePath))
	return records, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets: %s", r.filePath)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// coerceRow turns one raw row into a record, deriving fields the file
// does not carry: refused from requests and admissions, utilization
// from admitted and beds.
func (r *Reader) coerceRow(cols ColumnMap, row []string) (hospital.Record, error) {
	week, err := intCell(row, cols.Week, "week")
	if err != nil {
		return hospital.Record{}, err
	}
	requests, err := intCell(row, cols.Requests, "requests")
	if err != nil {
		return hospital.Record{}, err
	}
	admitted, err := intCell(row, cols.Admissions, "admissions")
	if err != nil {
		return hospital.Record{}, err
	}
	beds, err := intCell(row, cols.Beds, "beds")
	if err != nil {
		return hospital.Record{}, err
	}
	staff, err := intCell(row, cols.Staff, "staff")
	if err != nil {
		return hospital.Record{}, err
	}

	refused := requests - admitted
	if cols.Refusals >= 0 {
		refused, err = intCell(row, cols.Refusals, "refusals")
		if err != nil {
			return hospital.Record{}, err
		}
	}

	var utilization float64
	if cols.Utilization >= 0 {
		utilization, err = floatCell(row, cols.Utilization, "utilization")
		if err != nil {
			return hospital.Record{}, err
		}
	} else if beds > 0 {
		utilization = math.Min(float64(admitted)/float64(beds), 1)
	}

	morale := 0.0
	if cols.Morale >= 0 {
		morale, err = floatCell(row, cols.Morale, "morale")
		if err != nil {
			return hospital.Record{}, err
		}
	}
	satisfaction := 0.0
	if cols.Satisfaction >= 0 {
		satisfaction, err = floatCell(row, cols.Satisfaction, "satisfaction")
		if err != nil {
			return hospital.Record{}, err
		}
	}

	var events []hospital.EventType
	if cols.Events >= 0 {
		events = parseEvents(cell(row, cols.Events))
	}

	return hospital.Record{
		Service:      strings.TrimSpace(cell(row, cols.Service)),
		Week:         week,
		Requests:     requests,
		Admitted:     admitted,
		Refused:      refused,
		Beds:         beds,
		Staff:        staff,
		Utilization:  utilization,
		Morale:       morale,
		Satisfaction: satisfaction,
		Events:       events,
	}, nil
}

// missingMetricColumns lists detected-as-absent columns the record
// invariants cannot do without
func missingMetricColumns(cols ColumnMap) []string {
	var missing []string
	if cols.Requests < 0 {
		missing = append(missing, "requests")
	}
	if cols.Admissions < 0 {
		missing = append(missing, "admissions")
	}
	if cols.Beds < 0 {
		missing = append(missing, "beds")
	}
	if cols.Staff < 0 {
		missing = append(missing, "staff")
	}
	return missing
}

// parseEvents splits an events cell like "flu;strike" or "flu, strike"
func parseEvents(raw string) []hospital.EventType {
	raw = strings.ReplaceAll(raw, ";", ",")
	var events []hospital.EventType
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" || part == "none" {
			continue
		}
		events = append(events, hospital.EventType(part))
	}
	return events
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func intCell(row []string, idx int, field string) (int, error) {
	raw := strings.TrimSpace(cell(row, idx))
	if raw == "" {
		return 0, fmt.Errorf("empty %s cell", field)
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	// Some exports write counts as floats like "200.0"
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", field, raw)
	}
	return int(math.Round(f)), nil
}

func floatCell(row []string, idx int, field string) (float64, error) {
	raw := strings.TrimSpace(cell(row, idx))
	if raw == "" {
		return 0, fmt.Errorf("empty %s cell", field)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", field, raw)
	}
	return f, nil
}
