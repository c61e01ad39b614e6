package lookup

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/SoftwareDevEngResearch/BeaverDet/errs"
)

// CoverageReport lists the files VerifyCoverage inspected and any advisory
// warnings it raised.
type CoverageReport struct {
	FlangeFiles []string
	StressFiles []string
	Warnings    []string
}

// VerifyCoverage checks that every material group in the materials list has
// a flange rating file and that every stress file tabulates every material.
func (t *Tables) VerifyCoverage() (*CoverageReport, error) {
	groups, err := t.MaterialGroups()
	if err != nil {
		return nil, err
	}
	names, err := t.files()
	if err != nil {
		return nil, err
	}

	rep := &CoverageReport{}
	for _, n := range names {
		lower := strings.ToLower(n)
		if strings.Contains(lower, "flange") {
			rep.FlangeFiles = append(rep.FlangeFiles, n)
		}
		if strings.Contains(lower, "stress") {
			rep.StressFiles = append(rep.StressFiles, n)
		}
	}
	if len(rep.FlangeFiles) == 0 || len(rep.StressFiles) == 0 {
		return nil, &errs.Error{
			Kind: errs.ErrNoReferenceFilesFound,
			Msg:  `no files containing "flange" or "stress" found`,
		}
	}

	grades := make([]string, 0, len(groups))
	seen := map[string]bool{}
	var distinct []string
	for grade, group := range groups {
		grades = append(grades, grade)
		if !seen[group] {
			seen[group] = true
			distinct = append(distinct, group)
		}
	}
	sort.Strings(grades)
	sort.Strings(distinct)

	flanges := map[string]bool{}
	for _, f := range rep.FlangeFiles {
		flanges[strings.TrimSuffix(f, path.Ext(f))] = true
	}
	for _, group := range distinct {
		if !flanges[FlangePrefix+group] {
			return nil, &errs.Error{
				Kind:    errs.ErrMissingMaterialGroupFile,
				Subject: group,
				Msg:     fmt.Sprintf("material group %s not found", group),
			}
		}
	}

	for _, f := range rep.StressFiles {
		lower := strings.ToLower(f)
		if !strings.Contains(lower, "welded") && !strings.Contains(lower, "seamless") {
			msg := f + " does not indicate whether it is welded or seamless"
			t.logger.Warn(msg, zap.String("file", f))
			rep.Warnings = append(rep.Warnings, msg)
		}
		tb, err := t.loadFile(f)
		if err != nil {
			return nil, err
		}
		have := map[string]bool{}
		for _, h := range tb.header[1:] {
			have[strings.TrimSpace(h)] = true
		}
		for _, grade := range grades {
			if !have[grade] {
				return nil, &errs.Error{
					Kind:    errs.ErrMaterialNotFoundInStressFile,
					Subject: grade,
					Msg:     fmt.Sprintf("Material %s not found in %s", grade, f),
				}
			}
		}
	}
	return rep, nil
}
