package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a header row plus data rows, as read from a spreadsheet.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable loads the first sheet of an .xlsx file, or a .csv file with a
// comma or semicolon separator.
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	// Raw values, so a "#,##0.00" display format never reaches ParseAmount.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return newTable(rows)
}

// ReadCSV parses CSV text, stripping a UTF-8 BOM and detecting ';' as the
// separator when the header line has more semicolons than commas.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	first, _ := bufio.NewReader(bytes.NewReader(data)).ReadString('\n')
	cr := csv.NewReader(bytes.NewReader(data))
	if strings.Count(first, ";") > strings.Count(first, ",") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	return newTable(rows)
}

func newTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// columns maps canonical field names to header positions.
type columns map[string]int

func (c columns) get(row []string, field string) string {
	i, ok := c[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c columns) has(field string) bool {
	_, ok := c[field]
	return ok
}

// resolveColumns matches header cells against aliases; the first matching
// column wins.
func resolveColumns(header []string, aliases map[string]string) columns {
	cols := make(columns)
	for i, h := range header {
		field, ok := aliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, dup := cols[field]; !dup {
			cols[field] = i
		}
	}
	return cols
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "°", "", "º", "",
)

func normalizeHeader(h string) string {
	s := strings.ToLower(strings.TrimSpace(h))
	s = accentReplacer.Replace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Join(strings.Fields(s), "_")
	return s
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
