// Package pipeline loads the periodic demographic and enrollment source
// tables, reconciles region names through the normalize tables, and
// aggregates everything into the immutable master dataset the feature and
// risk engines consume. A load is all-or-nothing: any unreadable file or
// unparsable cell aborts the refresh and leaves the previously published
// snapshot serving.
package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lakshitasisodia/Ni3S/normalize"
)

// DemographicRecord is one parsed row of a population-by-age-band source,
// with state and district already normalized. Finer geography (pincode) is
// not carried: it is not part of the aggregation key.
type DemographicRecord struct {
	State    string
	District string
	Date     time.Time
	Youth    float64 // demo_age_5_17
	Adult    float64 // demo_age_17_
}

// EnrollmentRecord is one parsed row of an enrollment-by-age-band source.
type EnrollmentRecord struct {
	State    string
	District string
	Date     time.Time
	Child    float64 // age_0_5
	Youth    float64 // age_5_17
	Adult    float64 // age_18_greater
}

// Column-name synonyms seen across source drops, trim-and-lowered.
var columnSynonyms = map[string]string{
	"state":         "state",
	"state name":    "state",
	"district":      "district",
	"district name": "district",
	"date":          "date",
	"snapshot date": "date",
	"demo_age_5_17": "demo_age_5_17",
	"demo_age_17_":  "demo_age_17_",
	"demo_age_17+":  "demo_age_17_",
	"age_0_5":       "age_0_5",
	"age_5_17":      "age_5_17",
	"age_18_greater": "age_18_greater",
	"age_18+":        "age_18_greater",
}

var spaceRE = regexp.MustCompile(`\s+`)

func normHeader(s string) string {
	return spaceRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

var demographicColumns = []string{"state", "district", "date", "demo_age_5_17", "demo_age_17_"}
var enrollmentColumns = []string{"state", "district", "date", "age_0_5", "age_5_17", "age_18_greater"}

// headerIndex resolves a raw header row to canonical column positions.
// Every required column must be present; extra columns (pincode and the
// like) are ignored.
func headerIndex(file string, header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if canon, ok := columnSynonyms[normHeader(h)]; ok {
			idx[canon] = i
		}
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, &DataError{File: file, Column: col, Err: errors.New("required column missing")}
		}
	}
	return idx, nil
}

// Source dates are recorded day-first; ISO is accepted for re-exported
// files.
var dateLayouts = []string{"02-01-2006", "02/01/2006", "2006-01-02"}

func parseDate(file string, row int, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &DataError{File: file, Row: row, Column: "date",
		Err: fmt.Errorf("unparsable date %q", raw)}
}

func parseCount(file string, row int, column, raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		// Missing cells become zero at merge time anyway.
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &DataError{File: file, Row: row, Column: column,
			Err: fmt.Errorf("unparsable number %q", raw)}
	}
	return v, nil
}

// DiscoverSources finds the demographic and enrollment source files under
// dir. Files follow the DEMOGRAPHIC_* / ENROLLMENT_* naming of the data
// drops, in CSV or XLSX form. An unreadable directory or an empty file set
// is a ConfigError.
func DiscoverSources(dir string) (demo, enroll []string, err error) {
	info, statErr := os.Stat(dir)
	if statErr != nil {
		return nil, nil, &ConfigError{Path: dir, Err: statErr}
	}
	if !info.IsDir() {
		return nil, nil, &ConfigError{Path: dir, Err: errors.New("not a directory")}
	}

	for _, pattern := range []string{"DEMOGRAPHIC_*.csv", "DEMOGRAPHIC_*.xlsx"} {
		matches, _ := filepath.Glob(filepath.Join(dir, pattern))
		demo = append(demo, matches...)
	}
	for _, pattern := range []string{"ENROLLMENT_*.csv", "ENROLLMENT_*.xlsx"} {
		matches, _ := filepath.Glob(filepath.Join(dir, pattern))
		enroll = append(enroll, matches...)
	}
	sort.Strings(demo)
	sort.Strings(enroll)

	if len(demo) == 0 {
		return nil, nil, &ConfigError{Path: dir, Err: errors.New("no DEMOGRAPHIC_* source files")}
	}
	if len(enroll) == 0 {
		return nil, nil, &ConfigError{Path: dir, Err: errors.New("no ENROLLMENT_* source files")}
	}
	return demo, enroll, nil
}

// readTable returns the header row and data rows of a CSV or XLSX file.
func readTable(path string) ([]string, [][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	return readCSV(path)
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, &DataError{File: filepath.Base(path), Err: fmt.Errorf("reading header: %w", err)}
	}

	var rows [][]string
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &DataError{File: filepath.Base(path), Row: line - 1,
				Err: fmt.Errorf("reading row: %w", err)}
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, &DataError{File: filepath.Base(path), Err: errors.New("workbook has no sheets")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, &DataError{File: filepath.Base(path), Err: err}
	}
	if len(rows) == 0 {
		return nil, nil, &DataError{File: filepath.Base(path), Err: errors.New("empty sheet")}
	}
	return rows[0], rows[1:], nil
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// ReadDemographicFile parses one demographic source file, normalizing
// region names on every row.
func ReadDemographicFile(path string) ([]DemographicRecord, error) {
	file := filepath.Base(path)
	header, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(file, header, demographicColumns)
	if err != nil {
		return nil, err
	}

	records := make([]DemographicRecord, 0, len(rows))
	for i, rec := range rows {
		row := i + 1
		date, err := parseDate(file, row, cell(rec, idx["date"]))
		if err != nil {
			return nil, err
		}
		youth, err := parseCount(file, row, "demo_age_5_17", cell(rec, idx["demo_age_5_17"]))
		if err != nil {
			return nil, err
		}
		adult, err := parseCount(file, row, "demo_age_17_", cell(rec, idx["demo_age_17_"]))
		if err != nil {
			return nil, err
		}
		records = append(records, DemographicRecord{
			State:    normalize.State(cell(rec, idx["state"])),
			District: normalize.District(cell(rec, idx["district"])),
			Date:     date,
			Youth:    youth,
			Adult:    adult,
		})
	}
	return records, nil
}

// ReadEnrollmentFile parses one enrollment source file, normalizing region
// names on every row.
func ReadEnrollmentFile(path string) ([]EnrollmentRecord, error) {
	file := filepath.Base(path)
	header, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	idx, err := headerIndex(file, header, enrollmentColumns)
	if err != nil {
		return nil, err
	}

	records := make([]EnrollmentRecord, 0, len(rows))
	for i, rec := range rows {
		row := i + 1
		date, err := parseDate(file, row, cell(rec, idx["date"]))
		if err != nil {
			return nil, err
		}
		child, err := parseCount(file, row, "age_0_5", cell(rec, idx["age_0_5"]))
		if err != nil {
			return nil, err
		}
		youth, err := parseCount(file, row, "age_5_17", cell(rec, idx["age_5_17"]))
		if err != nil {
			return nil, err
		}
		adult, err := parseCount(file, row, "age_18_greater", cell(rec, idx["age_18_greater"]))
		if err != nil {
			return nil, err
		}
		records = append(records, EnrollmentRecord{
			State:    normalize.State(cell(rec, idx["state"])),
			District: normalize.District(cell(rec, idx["district"])),
			Date:     date,
			Child:    child,
			Youth:    youth,
			Adult:    adult,
		})
	}
	return records, nil
}

// LoadSources reads every discovered source file under dir and returns the
// concatenated demographic and enrollment series plus the file names that
// went into them.
func LoadSources(dir string) ([]DemographicRecord, []EnrollmentRecord, []string, error) {
	demoFiles, enrollFiles, err := DiscoverSources(dir)
	if err != nil {
		return nil, nil, nil, err
	}

	var demo []DemographicRecord
	for _, path := range demoFiles {
		records, err := ReadDemographicFile(path)
		if err != nil {
			return nil, nil, nil, err
		}
		demo = append(demo, records...)
	}

	var enroll []EnrollmentRecord
	for _, path := range enrollFiles {
		records, err := ReadEnrollmentFile(path)
		if err != nil {
			return nil, nil, nil, err
		}
		enroll = append(enroll, records...)
	}

	files := make([]string, 0, len(demoFiles)+len(enrollFiles))
	for _, p := range append(demoFiles, enrollFiles...) {
		files = append(files, filepath.Base(p))
	}
	return demo, enroll, files, nil
}
