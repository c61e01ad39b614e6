// Package lookup loads the static reference tables used by the design
// calculators: materials, pipe schedules, flange pressure-temperature
// ratings, allowable pipe stresses and inch thread geometry.
//
// Tables are read from an fs.FS on every call and never cached. Each table
// is a CSV file, or an XLSX workbook (first sheet) with the same layout when
// no CSV of that name exists.
package lookup

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/logging"
)

// Reference table names, without extension.
const (
	MaterialsTable = "materials_list"
	PipeTable      = "pipe_schedules"
	ThreadTable    = "ANSI_inch_threads"
	FlangePrefix   = "ASME_B16_5_flange_ratings_group_"
	StressPrefix   = "ASME_B31_3_stress_limits_"
)

//go:embed data/*.csv
var embedded embed.FS

// Tables reads reference tables from a file system.
type Tables struct {
	fsys   fs.FS
	root   string
	logger *zap.Logger
}

// New reads tables from the root of fsys. A nil logger discards output.
func New(fsys fs.FS, logger *zap.Logger) *Tables {
	return &Tables{fsys: fsys, root: ".", logger: logging.OrNop(logger)}
}

// Embedded serves the reference data compiled into the library.
func Embedded(logger *zap.Logger) *Tables {
	t := New(embedded, logger)
	t.root = "data"
	return t
}

// Dir reads tables from a directory on disk.
func Dir(dir string, logger *zap.Logger) *Tables {
	return New(os.DirFS(dir), logger)
}

// Logger is the logger advisory warnings are written to.
func (t *Tables) Logger() *zap.Logger { return t.logger }

// table is one loaded file: header row plus data rows.
type table struct {
	file   string
	header []string
	rows   [][]string
}

// column returns the index of the named header cell.
func (tb *table) column(name string) (int, error) {
	for i, h := range tb.header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, &errs.Error{
		Kind:    errs.ErrMissingColumn,
		Subject: name,
		Msg:     fmt.Sprintf("%s has no %s column", tb.file, name),
	}
}

// cell returns row[i] or "" for short rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// load reads name.csv, falling back to name.xlsx, and requires data rows.
func (t *Tables) load(name string) (*table, error) {
	records, file, err := t.records(name + ".csv")
	if errors.Is(err, errs.ErrFileNotFound) {
		records, _, err = t.records(name + ".xlsx")
		if errors.Is(err, errs.ErrFileNotFound) {
			return nil, &errs.Error{
				Kind:    errs.ErrFileNotFound,
				Subject: file,
				Msg:     file + " does not exist",
				Err:     fs.ErrNotExist,
			}
		}
		file = name + ".xlsx"
	}
	if err != nil {
		return nil, err
	}
	return newTable(file, records)
}

// loadFile reads one file by its full name; the extension picks the format.
func (t *Tables) loadFile(file string) (*table, error) {
	records, _, err := t.records(file)
	if err != nil {
		return nil, err
	}
	return newTable(file, records)
}

func newTable(file string, records [][]string) (*table, error) {
	var rows [][]string
	for _, r := range records[min(1, len(records)):] {
		if !blank(r) {
			rows = append(rows, r)
		}
	}
	if len(records) == 0 || len(rows) == 0 {
		return nil, &errs.Error{Kind: errs.ErrEmptyTable, Subject: file, Msg: file + " is empty"}
	}
	return &table{file: file, header: records[0], rows: rows}, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (t *Tables) records(file string) ([][]string, string, error) {
	f, err := t.fsys.Open(path.Join(t.root, file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, file, &errs.Error{Kind: errs.ErrFileNotFound, Subject: file, Msg: file + " does not exist", Err: err}
		}
		return nil, file, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	if strings.EqualFold(path.Ext(file), ".xlsx") {
		wb, err := excelize.OpenReader(f)
		if err != nil {
			return nil, file, fmt.Errorf("open workbook %s: %w", file, err)
		}
		defer wb.Close()
		rows, err := wb.GetRows(wb.GetSheetName(0))
		if err != nil {
			return nil, file, fmt.Errorf("read workbook %s: %w", file, err)
		}
		return rows, file, nil
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, file, fmt.Errorf("parse %s: %w", file, err)
	}
	return rows, file, nil
}

// number parses a numeric cell. Anything that is not a finite number is
// coerced to zero.
func (t *Tables) number(file, s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		t.logger.Debug("non-numeric table cell coerced to zero",
			zap.String("file", file), zap.String("cell", s))
		return 0
	}
	return v
}

// files lists the names in the table directory.
func (t *Tables) files() ([]string, error) {
	entries, err := fs.ReadDir(t.fsys, t.root)
	if err != nil {
		return nil, fmt.Errorf("list reference files: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
