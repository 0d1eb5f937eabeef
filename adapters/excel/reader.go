package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"salestat/domain/table"
	"salestat/internal/errors"
)

// DataReader reads Excel and CSV sales files into an immutable Table.
// This is the data-loading collaborator: the engine itself never touches
// files.
type DataReader struct {
	config   ReaderConfig
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(config ReaderConfig) *DataReader {
	if config.Sheet == "" {
		config.Sheet = DefaultSheet
	}
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{config: config, fileType: fileType}
}

// ReadTable reads the source file into a Table and validates that the
// numeric contract columns are present and fully populated.
func (r *DataReader) ReadTable() (*table.Table, error) {
	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, errors.DataLoadError(r.config.FilePath, fmt.Errorf("%s file not found", strings.ToUpper(r.fileType)))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		err = fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, errors.DataLoadError(r.config.FilePath, err)
	}

	t, err := buildTable(rows)
	if err != nil {
		return nil, errors.DataLoadError(r.config.FilePath, err)
	}
	if err := validateContract(t); err != nil {
		return nil, errors.DataLoadError(r.config.FilePath, err)
	}
	return t, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.config.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.config.Sheet, err)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// buildTable converts raw string rows into a typed Table. The first row
// supplies trimmed headers; a column is numeric when every populated cell
// parses as a number, otherwise it stays a string column. Blank cells are
// missing regardless of type.
func buildTable(rows [][]string) (*table.Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	dataRows := rows[1:]
	fields := make([]table.Field, len(headers))
	cells := make([][]table.Cell, len(headers))

	for col, name := range headers {
		fields[col] = table.Field{Name: name, Type: table.TypeNumeric}
		cells[col] = make([]table.Cell, len(dataRows))

		numeric := true
		populated := 0
		for row, raw := range dataRows {
			text := ""
			if col < len(raw) {
				text = strings.TrimSpace(raw[col])
			}
			if text == "" {
				cells[col][row] = table.MissingCell()
				continue
			}
			populated++
			if v, err := parseNumber(text); err == nil {
				cells[col][row] = table.NumberCell(v)
			} else {
				numeric = false
				cells[col][row] = table.TextCell(text)
			}
		}

		if !numeric || populated == 0 {
			fields[col].Type = table.TypeString
			// Re-walk so numeric-looking cells in a string column keep
			// their original text form.
			for row, raw := range dataRows {
				text := ""
				if col < len(raw) {
					text = strings.TrimSpace(raw[col])
				}
				if text == "" {
					cells[col][row] = table.MissingCell()
				} else {
					cells[col][row] = table.TextCell(text)
				}
			}
		}
	}

	return table.New(fields, cells)
}

// parseNumber parses a numeric cell, tolerating currency formatting
// ("$1,234.50") the way the sales exports write amounts
func parseNumber(text string) (float64, error) {
	clean := strings.TrimPrefix(text, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	return strconv.ParseFloat(clean, 64)
}

// validateContract enforces the loading contract: the fixed numeric
// columns exist, are numeric, and are fully populated.
func validateContract(t *table.Table) error {
	for _, name := range []string{table.ColBoxesShipped, table.ColAmount} {
		if !t.HasColumn(name) {
			return fmt.Errorf("contract column %q missing from file", name)
		}
		col, err := t.Extract(name)
		if err != nil {
			return fmt.Errorf("contract column %q is not numeric: %w", name, err)
		}
		if col.Len() != t.RowCount() {
			return fmt.Errorf("contract column %q has %d missing values", name, t.RowCount()-col.Len())
		}
	}
	return nil
}
