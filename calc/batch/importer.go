package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
)

type Import struct {
	Count   int      `json:"count"`
	Results []Result `json:"results"`
	// 1-based sheet rows that could not be parsed or evaluated
	Skipped []int `json:"skipped,omitempty"`
}

// ImportWorkbook evaluates the cases on the first sheet of an XLSX
// workbook. The first row is a header; columns are material, schedule,
// size, CJ speed in m/s and an optional band fraction. Bad rows are skipped.
func ImportWorkbook(tables *lookup.Tables, r io.Reader) (Import, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Import{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Import{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return Import{}, &errs.Error{Kind: errs.ErrEmptyTable, Subject: sheet, Msg: "empty sheet"}
	}

	var out Import
	for i := 1; i < len(rows); i++ {
		c, err := parseRow(rows[i])
		if err == nil {
			var res Result
			if res, err = runCase(tables, c); err == nil {
				out.Results = append(out.Results, res)
				continue
			}
		}
		tables.Logger().Debug("skipping workbook row", zap.Int("row", i+1), zap.Error(err))
		out.Skipped = append(out.Skipped, i+1)
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseRow(row []string) (Case, error) {
	// expected: material, schedule, size, cj_speed_m_s, plus_or_minus(optional)
	if len(row) < 4 {
		return Case{}, fmt.Errorf("bad row")
	}
	speed, err := toFloat(row[3])
	if err != nil {
		return Case{}, err
	}
	band := 0.0
	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		if band, err = toFloat(row[4]); err != nil {
			return Case{}, err
		}
	}
	return Case{
		Name:        fmt.Sprintf("%s sch %s NPS %s", row[0], row[1], row[2]),
		Material:    lookup.MaterialName(strings.TrimSpace(row[0])),
		Schedule:    strings.TrimSpace(row[1]),
		Size:        strings.TrimSpace(row[2]),
		CJSpeed:     fmt.Sprintf("%g m/s", speed),
		PlusOrMinus: band,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%g", &v)
	return v, err
}
