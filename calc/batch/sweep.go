package batch

import (
	"fmt"

	"github.com/SoftwareDevEngResearch/BeaverDet/calc/dlf"
	"github.com/SoftwareDevEngResearch/BeaverDet/calc/pipe"
	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/lookup"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

type SweepInput struct {
	Material    string            `json:"material"`
	Schedule    string            `json:"schedule"`
	CJSpeed     quantity.Quantity `json:"-"`
	PlusOrMinus float64           `json:"plus_or_minus"`
}

type SweepRow struct {
	Size       string          `json:"size"`
	Dimensions pipe.Dimensions `json:"dimensions"`
	DLF        dlf.Result      `json:"dlf"`
}

// Sweep evaluates the load factor of every size tabulated for a schedule.
func Sweep(tables *lookup.Tables, in SweepInput) ([]SweepRow, error) {
	sizes, err := pipe.AvailableSizes(tables, in.Schedule)
	if err != nil {
		return nil, err
	}
	out := make([]SweepRow, 0, len(sizes))
	for _, size := range sizes {
		dims, err := pipe.Lookup(tables, in.Schedule, size)
		if err != nil {
			return nil, err
		}
		res, err := dlf.Calculate(tables, dlf.Input{
			Material:    in.Material,
			Schedule:    in.Schedule,
			Size:        size,
			CJSpeed:     in.CJSpeed,
			PlusOrMinus: band(in.PlusOrMinus),
		})
		if err != nil {
			return nil, fmt.Errorf("size %s: %w", size, err)
		}
		out = append(out, SweepRow{Size: size, Dimensions: dims, DLF: res})
	}
	return out, nil
}

// Recommend picks the smallest swept size whose CJ speed stays out of the
// resonance band.
func Recommend(rows []SweepRow) (SweepRow, error) {
	for _, r := range rows {
		if r.DLF.Factor != dlf.Inside {
			return r, nil
		}
	}
	return SweepRow{}, &errs.Error{Kind: errs.ErrSizeNotFound, Msg: "every size resonates at this CJ speed"}
}
