package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	TimeColumn string // Column name for timestamps (default: "time")
	UColumn    string // Column name for the (first) value column (default: "u")
	VColumn    string // Column name for the second component (optional)
	TimeFormat string // Timestamp format (default: "2006-01-02 15:04:05")
	HasHeader  bool   // Whether CSV has header row (default: true)
	Delimiter  rune   // Field delimiter (default: ',')
	SkipRows   int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		TimeColumn: "time",
		UColumn:    "u",
		TimeFormat: "2006-01-02 15:04:05",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// timeFormats tried after CSVOptions.TimeFormat, in order.
var timeFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadCSV loads a scalar time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadCSVFromReader(file, opts)
}

// LoadVectorCSV loads a two-component current record from a CSV file. The
// VColumn option must name the second component's column.
func LoadVectorCSV(filename string, opts *CSVOptions) (*VectorSeries, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadVectorCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a scalar time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	timestamps, u, _, err := readColumns(r, opts, false)
	if err != nil {
		return nil, err
	}
	return &Series{Timestamps: timestamps, Values: u}, nil
}

// LoadVectorCSVFromReader loads a two-component record from an io.Reader.
func LoadVectorCSVFromReader(r io.Reader, opts *CSVOptions) (*VectorSeries, error) {
	timestamps, u, v, err := readColumns(r, opts, true)
	if err != nil {
		return nil, err
	}
	return &VectorSeries{Timestamps: timestamps, U: u, V: v}, nil
}

func readColumns(r io.Reader, opts *CSVOptions, wantV bool) ([]time.Time, []float64, []float64, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if wantV && opts.VColumn == "" {
		return nil, nil, nil, errors.New("VColumn must be set to load a two-component record")
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, nil, err
		}
	}

	timeIdx, uIdx, vIdx := 0, 1, 2
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, nil, nil, err
		}
		timeIdx, uIdx, vIdx = -1, -1, -1
		for i, h := range header {
			switch strings.TrimSpace(strings.Trim(h, "\"")) {
			case opts.TimeColumn:
				timeIdx = i
			case opts.UColumn:
				uIdx = i
			case opts.VColumn:
				if opts.VColumn != "" {
					vIdx = i
				}
			}
		}
		if timeIdx < 0 || uIdx < 0 {
			return nil, nil, nil, errors.New("time or value column not found in CSV header")
		}
		if wantV && vIdx < 0 {
			return nil, nil, nil, errors.New("second component column not found in CSV header")
		}
	}

	var timestamps []time.Time
	var u, v []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil, err
		}
		if timeIdx >= len(record) || uIdx >= len(record) {
			continue
		}

		ts, ok := parseTime(record[timeIdx], opts.TimeFormat)
		if !ok {
			continue
		}
		uv, err := parseValue(record[uIdx])
		if err != nil {
			continue
		}
		var vv float64
		if wantV {
			if vIdx >= len(record) {
				continue
			}
			vv, err = parseValue(record[vIdx])
			if err != nil {
				continue
			}
		}

		timestamps = append(timestamps, ts)
		u = append(u, uv)
		if wantV {
			v = append(v, vv)
		}
	}

	if len(u) == 0 {
		return nil, nil, nil, errors.New("no valid data found in CSV")
	}
	return timestamps, u, v, nil
}

func parseTime(field, preferred string) (time.Time, bool) {
	s := strings.TrimSpace(strings.Trim(field, "\""))
	formats := append([]string{preferred}, timeFormats...)
	for _, f := range formats {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseValue(field string) (float64, error) {
	s := strings.TrimSpace(strings.Trim(field, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, errors.New("missing value")
	}
	return strconv.ParseFloat(s, 64)
}

// SaveCSV saves a scalar time series to a CSV file with a time,u header.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("time,u\n")
	for i, v := range series.Values {
		writer.WriteString(series.Timestamps[i].UTC().Format("2006-01-02 15:04:05"))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}
	return nil
}
