package timeseries

import (
	"errors"
	"math"
	"time"
)

// TidalEpoch is the origin of the numeric time axis used throughout the
// library: 1899-12-31 12:00 UT, the Schureman reference epoch.
var TidalEpoch = time.Date(1899, 12, 31, 12, 0, 0, 0, time.UTC)

// Hours converts timestamps to hours since the tidal epoch.
func Hours(timestamps []time.Time) []float64 {
	out := make([]float64, len(timestamps))
	for i, ts := range timestamps {
		out[i] = ts.Sub(TidalEpoch).Hours()
	}
	return out
}

// Series represents a scalar time series with timestamps and values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series with hourly timestamps starting at 2000-01-01 00:00
// UT. Intended for quick experiments and tests.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Hours returns the time axis as hours since the tidal epoch.
func (s *Series) Hours() []float64 {
	return Hours(s.Timestamps)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// VectorSeries represents a two-component (current velocity) time series.
type VectorSeries struct {
	Timestamps []time.Time
	U          []float64 // eastward component
	V          []float64 // northward component
	Name       string
}

// NewVector creates a two-component series with explicit timestamps.
func NewVector(timestamps []time.Time, u, v []float64) (*VectorSeries, error) {
	if len(timestamps) != len(u) {
		return nil, errors.New("timestamps and u must have the same length")
	}
	if len(u) != len(v) {
		return nil, errors.New("u and v must have the same length")
	}
	return &VectorSeries{
		Timestamps: timestamps,
		U:          u,
		V:          v,
	}, nil
}

// Len returns the length of the series.
func (s *VectorSeries) Len() int {
	return len(s.U)
}

// Hours returns the time axis as hours since the tidal epoch.
func (s *VectorSeries) Hours() []float64 {
	return Hours(s.Timestamps)
}

// Batch holds a set of co-located series sharing one time base, e.g. the
// records of a spatial grid of current meters. U (and V, for vector data)
// are indexed [series][sample]; the sample axis is aligned 1:1 with
// Timestamps. V is nil for scalar batches.
type Batch struct {
	Timestamps []time.Time
	U          [][]float64
	V          [][]float64
}

// NewBatch creates a batch, validating that every series matches the time
// base and that U and V, when both present, are congruent.
func NewBatch(timestamps []time.Time, u, v [][]float64) (*Batch, error) {
	if len(u) == 0 {
		return nil, errors.New("batch must contain at least one series")
	}
	for _, s := range u {
		if len(s) != len(timestamps) {
			return nil, errors.New("every series must match the time base length")
		}
	}
	if v != nil {
		if len(v) != len(u) {
			return nil, errors.New("u and v must hold the same number of series")
		}
		for _, s := range v {
			if len(s) != len(timestamps) {
				return nil, errors.New("every series must match the time base length")
			}
		}
	}
	return &Batch{Timestamps: timestamps, U: u, V: v}, nil
}

// Len returns the number of samples per series.
func (b *Batch) Len() int {
	return len(b.Timestamps)
}

// Size returns the number of series in the batch.
func (b *Batch) Size() int {
	return len(b.U)
}

// Hours returns the shared time axis as hours since the tidal epoch.
func (b *Batch) Hours() []float64 {
	return Hours(b.Timestamps)
}
