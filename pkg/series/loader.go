package series

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/rangecurve/pkg/curve"
)

// Loader errors.
var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .yaml/.yml, .json, and .csv.
	ErrUnsupportedFormat = errors.New("unsupported series file format")

	// ErrNoSeries is returned when a file contains no series.
	ErrNoSeries = errors.New("no series in file")

	// ErrBadRecord is returned for a CSV record that is not an x,y pair.
	ErrBadRecord = errors.New("bad csv record")
)

// csvFieldCount is the expected number of fields per CSV record.
const csvFieldCount = 2

// document is the YAML/JSON wire shape of a series file.
type document struct {
	Series []seriesDoc `yaml:"series" json:"series"`
}

type seriesDoc struct {
	Name   string     `yaml:"name"   json:"name"`
	Points []pointDoc `yaml:"points" json:"points"`
}

// pointDoc is one sample; a null or omitted y is a gap.
type pointDoc struct {
	X float64  `yaml:"x" json:"x"`
	Y *float64 `yaml:"y" json:"y"`
}

// Load reads all series from path, picking the format by file extension.
// Every returned series is validated.
func Load(path string) ([]Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series file: %w", err)
	}

	defer f.Close()

	var (
		list    []Series
		loadErr error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		list, loadErr = LoadYAML(f)
	case ".json":
		list, loadErr = LoadJSON(f)
	case ".csv":
		var s Series

		s, loadErr = LoadCSV(f, strings.TrimSuffix(filepath.Base(path), ext))
		list = []Series{s}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if loadErr != nil {
		return nil, fmt.Errorf("load %s: %w", path, loadErr)
	}

	return list, nil
}

// LoadYAML reads series from a YAML document with the shape
//
//	series:
//	  - name: temperature
//	    points:
//	      - {x: 0, y: 1.5}
//	      - {x: 1}        # gap
func LoadYAML(r io.Reader) ([]Series, error) {
	var doc document

	decodeErr := yaml.NewDecoder(r).Decode(&doc)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode yaml: %w", decodeErr)
	}

	return fromDocument(doc)
}

// LoadJSON reads series from a JSON document with the same shape as the
// YAML format.
func LoadJSON(r io.Reader) ([]Series, error) {
	var doc document

	decodeErr := json.NewDecoder(r).Decode(&doc)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode json: %w", decodeErr)
	}

	return fromDocument(doc)
}

// LoadCSV reads a single series from two-column x,y records. An empty y
// field is a gap. A leading "x,y" header row is skipped.
func LoadCSV(r io.Reader, name string) (Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = csvFieldCount

	s := Series{Name: name}

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Series{}, fmt.Errorf("read csv: %w", err)
		}

		x, parseErr := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if parseErr != nil {
			if line == 1 {
				// Header row.
				continue
			}

			return Series{}, fmt.Errorf("%w at line %d: x %q", ErrBadRecord, line, record[0])
		}

		y, gapped, yErr := parseYField(record[1])
		if yErr != nil {
			return Series{}, fmt.Errorf("%w at line %d: y %q", ErrBadRecord, line, record[1])
		}

		s.Xs = append(s.Xs, x)

		if gapped {
			s.Ys = append(s.Ys, curve.Gap())
		} else {
			s.Ys = append(s.Ys, curve.Y(y))
		}
	}

	validateErr := s.Validate()
	if validateErr != nil {
		return Series{}, validateErr
	}

	return s, nil
}

// parseYField parses a CSV y field; an empty field is a gap.
func parseYField(field string) (y float64, gapped bool, err error) {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return 0, true, nil
	}

	y, err = strconv.ParseFloat(trimmed, 64)

	return y, false, err
}

// fromDocument converts and validates the wire shape.
func fromDocument(doc document) ([]Series, error) {
	if len(doc.Series) == 0 {
		return nil, ErrNoSeries
	}

	list := make([]Series, 0, len(doc.Series))

	for _, sd := range doc.Series {
		s := Series{Name: sd.Name}

		for _, p := range sd.Points {
			s.Xs = append(s.Xs, p.X)

			if p.Y == nil {
				s.Ys = append(s.Ys, curve.Gap())
			} else {
				s.Ys = append(s.Ys, curve.Y(*p.Y))
			}
		}

		validateErr := s.Validate()
		if validateErr != nil {
			return nil, validateErr
		}

		list = append(list, s)
	}

	return list, nil
}
