package lookup

import (
	"fmt"
	"strings"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Thread is the diameter tolerance band of one thread size and class.
// Classes ending in A are external (bolt) threads, B internal (plate).
type Thread struct {
	Size     string
	Class    string
	MajorMax quantity.Quantity
	MajorMin quantity.Quantity
	PitchMax quantity.Quantity
	PitchMin quantity.Quantity
	MinorMax quantity.Quantity
	MinorMin quantity.Quantity
}

// TPI is the thread count per inch, taken from sizes like "1/4-28".
func (th Thread) TPI() (float64, error) {
	_, pitch, ok := strings.Cut(th.Size, "-")
	var n float64
	if ok {
		_, err := fmt.Sscanf(pitch, "%g", &n)
		ok = err == nil && n > 0
	}
	if !ok {
		return 0, &errs.Error{Kind: errs.ErrThreadNotFound, Subject: th.Size, Msg: "no thread count in size " + th.Size}
	}
	return n, nil
}

// Threads loads the inch thread table.
func (t *Tables) Threads() ([]Thread, error) {
	tb, err := t.load(ThreadTable)
	if err != nil {
		return nil, err
	}
	names := []string{
		"thread size", "thread class",
		"major diameter max", "major diameter min",
		"pitch diameter max", "pitch diameter min",
		"minor diameter max", "minor diameter min",
	}
	cols := make([]int, len(names))
	for i, n := range names {
		if cols[i], err = tb.column(n); err != nil {
			return nil, err
		}
	}

	inch := func(row []string, i int) quantity.Quantity {
		return quantity.New(t.number(tb.file, cell(row, cols[i])), quantity.Inch)
	}
	out := make([]Thread, 0, len(tb.rows))
	for _, row := range tb.rows {
		out = append(out, Thread{
			Size:     cell(row, cols[0]),
			Class:    cell(row, cols[1]),
			MajorMax: inch(row, 2),
			MajorMin: inch(row, 3),
			PitchMax: inch(row, 4),
			PitchMin: inch(row, 5),
			MinorMax: inch(row, 6),
			MinorMin: inch(row, 7),
		})
	}
	return out, nil
}

// ThreadPair returns the external and internal threads of a size for a
// numeric class such as "2".
func (t *Tables) ThreadPair(size, class string) (external, internal Thread, err error) {
	all, err := t.Threads()
	if err != nil {
		return external, internal, err
	}
	var foundA, foundB bool
	for _, th := range all {
		if th.Size != size {
			continue
		}
		switch th.Class {
		case class + "A":
			external, foundA = th, true
		case class + "B":
			internal, foundB = th, true
		}
	}
	if !foundA || !foundB {
		return external, internal, &errs.Error{
			Kind:    errs.ErrThreadNotFound,
			Subject: size,
			Msg:     fmt.Sprintf("thread %s class %s not found", size, class),
		}
	}
	return external, internal, nil
}
