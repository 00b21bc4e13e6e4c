// Package main demonstrates tidal harmonic analysis: fitting a synthetic
// sea-level record, predicting from the fitted coefficients, and running a
// batched analysis of a small current-meter grid.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/coastref/gotide/constituent"
	"github.com/coastref/gotide/harmonic"
	"github.com/coastref/gotide/timeseries"
)

func main() {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("GoTide Demonstration - Harmonic Tidal Analysis")
	fmt.Println(strings.Repeat("=", 72))

	scalarDemo()
	batchDemo()
	currentDemo()
}

// scalarDemo fits a 60-day hourly sea-level record built from three known
// constituents plus noise, then predicts the following week.
func scalarDemo() {
	fmt.Println("\n--- Sea level: solve and reconstruct ---")

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	n := 60 * 24
	stamps := make([]time.Time, n)
	for i := range stamps {
		stamps[i] = start.Add(time.Duration(i) * time.Hour)
	}
	t := timeseries.Hours(stamps)

	rng := rand.New(rand.NewSource(7))
	truth := map[string]struct{ amp, phase float64 }{
		"M2": {1.20, 40},
		"S2": {0.45, 75},
		"K1": {0.25, 210},
	}
	h := make([]float64, n)
	for i, ti := range t {
		h[i] = 0.30
		for name, tr := range truth {
			c, _ := constituent.Lookup(name)
			h[i] += tr.amp * math.Cos(2*math.Pi*c.Frequency()*ti-tr.phase*math.Pi/180)
		}
		h[i] += 0.02 * rng.NormFloat64()
	}

	coef, err := harmonic.SolveSeries(t, h, nil, 47.3, nil)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("%d samples, %d constituents selected, %.1f%% variance explained\n",
		n, len(coef.Names), coef.VarExplained[0])
	fmt.Printf("mean = %.3f m, trend = %.2e m/h\n", coef.Mean[0], coef.Slope[0])
	fmt.Printf("\n%-6s %-12s %-10s %-10s %-9s %-8s\n", "name", "freq (cph)", "A (m)", "A ci", "g (deg)", "SNR")
	for i, name := range coef.Names {
		if coef.SNR[0][i] < 2 {
			continue
		}
		fmt.Printf("%-6s %-12.7f %-10.4f %-10.4f %-9.1f %-8.0f\n",
			name, coef.Aux.Freq[i], coef.A[0][i], coef.ACI[0][i], coef.G[0][i], coef.SNR[0][i])
	}

	// Predict the following week.
	future := make([]float64, 7*24)
	for i := range future {
		future[i] = t[n-1] + float64(i+1)
	}
	tide, _, err := harmonic.ReconstructSeries(future, coef, nil)
	if err != nil {
		fmt.Println("reconstruct failed:", err)
		return
	}
	fmt.Printf("\npredicted range over next week: %.3f .. %.3f m\n",
		minOf(tide), maxOf(tide))
}

// batchDemo shows that a batch of identical series matches the
// single-series result while sharing one design matrix.
func batchDemo() {
	fmt.Println("\n--- Batched analysis ---")

	n := 30 * 24
	t := make([]float64, n)
	for i := range t {
		t[i] = 1.0e6 + float64(i)
	}
	m2, _ := constituent.Lookup("M2")

	const size = 16
	batch := make([][]float64, size)
	for j := range batch {
		amp := 0.5 + 0.1*float64(j)
		batch[j] = make([]float64, n)
		for i, ti := range t {
			batch[j][i] = amp * math.Cos(2*math.Pi*m2.Frequency()*ti)
		}
	}

	opts := harmonic.DefaultOptions()
	opts.Constituents = []string{"M2", "K1"}
	opts.Trend = false
	coef, err := harmonic.Solve(t, batch, nil, 45, opts)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	k := 0
	for i, name := range coef.Names {
		if name == "M2" {
			k = i
		}
	}
	fmt.Printf("%d series fit in one call; M2 amplitudes:\n", coef.NSeries)
	for j := 0; j < coef.NSeries; j += 5 {
		fmt.Printf("  series %2d: A = %.4f\n", j, coef.A[j][k])
	}
}

// currentDemo fits a rotary current record and prints ellipse parameters.
func currentDemo() {
	fmt.Println("\n--- Current ellipse ---")

	n := 40 * 24
	t := make([]float64, n)
	for i := range t {
		t[i] = 1.1e6 + float64(i)
	}
	m2, _ := constituent.Lookup("M2")

	u := make([]float64, n)
	v := make([]float64, n)
	for i, ti := range t {
		th := 2 * math.Pi * m2.Frequency() * ti
		u[i] = 0.8 * math.Cos(th)
		v[i] = 0.3 * math.Sin(th)
	}

	opts := harmonic.DefaultOptions()
	opts.Constituents = []string{"M2"}
	opts.Trend = false
	opts.Nodal = false
	coef, err := harmonic.SolveSeries(t, u, v, 45, opts)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Printf("M2 ellipse: Lsmaj = %.3f, Lsmin = %.3f, theta = %.1f deg, g = %.1f deg\n",
		coef.Lsmaj[0][0], coef.Lsmin[0][0], coef.Theta[0][0], coef.G[0][0])
}

func minOf(x []float64) float64 {
	m := x[0]
	for _, v := range x[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(x []float64) float64 {
	m := x[0]
	for _, v := range x[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
