// Package timeseries provides time series containers and ingestion for
// tidal analysis.
//
// The harmonic and astro packages work on a numeric time axis of hours
// since the tidal epoch (1899-12-31 12:00 UT). This package holds observed
// records with their wall-clock timestamps and converts them to that axis:
//
//	s, err := timeseries.NewWithTimestamps(stamps, levels)
//	coef, err := harmonic.SolveSeries(s.Hours(), s.Values, nil, lat, nil)
//
// VectorSeries carries a two-component current record, and Batch carries a
// set of co-located records sharing one time base, matching the batched
// form of harmonic.Solve. LoadCSV and LoadVectorCSV read simple
// time/value CSV exports.
package timeseries
