package lookup

import (
	"fmt"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

// Schedules holds nominal pipe sizes with their outer diameters and the
// wall thickness of each schedule. Dimensions are tabulated in inches and a
// blank cell means the size is not made in that schedule.
type Schedules struct {
	sizes     []string
	schedules []string
	outer     map[string]quantity.Quantity
	walls     map[string]map[string]quantity.Quantity
}

// PipeSchedules loads the pipe schedule table.
func (t *Tables) PipeSchedules() (*Schedules, error) {
	tb, err := t.load(PipeTable)
	if err != nil {
		return nil, err
	}
	sizeCol, err := tb.column("Size")
	if err != nil {
		return nil, err
	}
	odCol, err := tb.column("OD")
	if err != nil {
		return nil, err
	}

	s := &Schedules{
		outer: map[string]quantity.Quantity{},
		walls: map[string]map[string]quantity.Quantity{},
	}
	schedCols := map[string]int{}
	for i := range tb.header {
		if i == sizeCol || i == odCol {
			continue
		}
		name := cell(tb.header, i)
		s.schedules = append(s.schedules, name)
		schedCols[name] = i
		s.walls[name] = map[string]quantity.Quantity{}
	}

	for _, row := range tb.rows {
		size := cell(row, sizeCol)
		if size == "" {
			continue
		}
		od := t.number(tb.file, cell(row, odCol))
		if od < 0 {
			return nil, negative(tb.file, "Outer diameter")
		}
		s.sizes = append(s.sizes, size)
		s.outer[size] = quantity.New(od, quantity.Inch)
		for name, i := range schedCols {
			raw := cell(row, i)
			if raw == "" {
				continue
			}
			w := t.number(tb.file, raw)
			if w < 0 {
				return nil, negative(tb.file, "Wall thickness")
			}
			s.walls[name][size] = quantity.New(w, quantity.Inch)
		}
	}
	return s, nil
}

// Names lists the schedules in table order.
func (s *Schedules) Names() []string { return append([]string(nil), s.schedules...) }

// Sizes lists the nominal sizes available in schedule, in table order.
func (s *Schedules) Sizes(schedule string) ([]string, error) {
	walls, ok := s.walls[schedule]
	if !ok {
		return nil, scheduleNotFound(schedule)
	}
	var out []string
	for _, size := range s.sizes {
		if _, ok := walls[size]; ok {
			out = append(out, size)
		}
	}
	return out, nil
}

// Dimensions returns the outer diameter and wall thickness of a nominal
// size in a schedule.
func (s *Schedules) Dimensions(size, schedule string) (outer, wall quantity.Quantity, err error) {
	walls, ok := s.walls[schedule]
	if !ok {
		return outer, wall, scheduleNotFound(schedule)
	}
	wall, ok = walls[size]
	if !ok {
		return outer, wall, &errs.Error{
			Kind:    errs.ErrSizeNotFound,
			Subject: size,
			Msg:     fmt.Sprintf("size %s not available in schedule %s", size, schedule),
		}
	}
	return s.outer[size], wall, nil
}

func scheduleNotFound(schedule string) error {
	return &errs.Error{
		Kind:    errs.ErrScheduleNotFound,
		Subject: schedule,
		Msg:     fmt.Sprintf("schedule %s not found", schedule),
	}
}

func negative(file, what string) error {
	return &errs.Error{
		Kind:    errs.ErrNegativeTabulatedValue,
		Subject: file,
		Msg:     what + " less than zero.",
	}
}
