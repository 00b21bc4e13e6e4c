package constituent

import (
	"sort"
	"strings"
)

// Linear rates of the fundamental astronomical arguments, in degrees per
// hour, derived from the linear terms of the Schureman polynomials for the
// mean longitudes (see the astro package). Constituent frequencies are
// always computed from these rates and the Doodson coefficients, never
// entered per constituent.
const (
	RateS  = 13.1763965268 / 24 // mean longitude of the moon
	RateH  = 0.9856473354 / 24  // mean longitude of the sun
	RateP  = 0.1114040803 / 24  // longitude of the lunar perigee
	RateNP = 0.0529539222 / 24  // negative longitude of the ascending lunar node
	RatePP = 0.0000470684 / 24  // longitude of the solar perigee

	// RateTau is the rate of lunar time, tau = (solar hour angle) - s + h.
	RateTau = 15.0 - RateS + RateH
)

// Formula identifies the nodal correction family a constituent belongs to.
// The astro package maps each family to its node-cosine series for the
// amplitude factor f and phase correction u.
type Formula int

// Nodal correction families.
const (
	FormulaNone Formula = iota // no nodal modulation (solar constituents)
	FormulaMm
	FormulaMf
	FormulaO1
	FormulaK1
	FormulaJ1
	FormulaOO1
	FormulaM1
	FormulaM2
	FormulaK2
	FormulaL2
)

// Component is one term of a compound (shallow-water) constituent's
// composition: Factor times the parent constituent.
type Component struct {
	Name   string
	Factor float64
}

// Constituent is one immutable catalog record.
//
// Doodson holds the integer coefficients of the equilibrium argument over
// (tau, s, h, p, N', p'), where tau is lunar time and N' is the negative of
// the lunar node longitude. Semi is the phase constant in cycles. Rank is
// the selection priority: lower outranks higher when two constituents fail
// the Rayleigh criterion against each other. Shallow, when non-empty,
// declares the record compound; Doodson and Semi are then unused and every
// derived quantity comes from the parents.
type Constituent struct {
	Name    string
	Doodson [6]int
	Semi    float64
	Formula Formula
	Rank    int
	Shallow []Component
}

// Frequency returns the constituent frequency in cycles per hour.
func (c *Constituent) Frequency() float64 {
	if len(c.Shallow) > 0 {
		sum := 0.0
		for _, p := range c.Shallow {
			parent, ok := Lookup(p.Name)
			if !ok {
				continue
			}
			sum += p.Factor * parent.Frequency()
		}
		return sum
	}
	d := c.Doodson
	deg := float64(d[0])*RateTau + float64(d[1])*RateS + float64(d[2])*RateH +
		float64(d[3])*RateP + float64(d[4])*RateNP + float64(d[5])*RatePP
	return deg / 360
}

// Compound reports whether the constituent is defined by composition of
// parent constituents.
func (c *Constituent) Compound() bool { return len(c.Shallow) > 0 }

// The reference table. Doodson coefficients, phase constants, and formula
// families follow the standard Schureman/Darwin development as tabulated for
// t_tide and UTide. Ranks order the constituents by astronomical importance;
// shallow-water and minor constituents rank below the major ones.
var table = []Constituent{
	// Long period.
	{Name: "SA", Doodson: [6]int{0, 0, 1, 0, 0, -1}, Rank: 21},
	{Name: "SSA", Doodson: [6]int{0, 0, 2, 0, 0, 0}, Rank: 20},
	{Name: "MM", Doodson: [6]int{0, 1, 0, -1, 0, 0}, Formula: FormulaMm, Rank: 18},
	{Name: "MSF", Shallow: []Component{{"S2", 1}, {"M2", -1}}, Rank: 22},
	{Name: "MF", Doodson: [6]int{0, 2, 0, 0, 0, 0}, Formula: FormulaMf, Rank: 15},

	// Diurnal.
	{Name: "2Q1", Doodson: [6]int{1, -3, 0, 2, 0, 0}, Semi: -0.25, Formula: FormulaO1, Rank: 19},
	{Name: "Q1", Doodson: [6]int{1, -2, 0, 1, 0, 0}, Semi: -0.25, Formula: FormulaO1, Rank: 8},
	{Name: "RHO1", Doodson: [6]int{1, -2, 2, -1, 0, 0}, Semi: -0.25, Formula: FormulaO1, Rank: 17},
	{Name: "O1", Doodson: [6]int{1, -1, 0, 0, 0, 0}, Semi: -0.25, Formula: FormulaO1, Rank: 4},
	{Name: "M1", Doodson: [6]int{1, 0, 0, 1, 0, 0}, Semi: -0.25, Formula: FormulaM1, Rank: 23},
	{Name: "P1", Doodson: [6]int{1, 1, -2, 0, 0, 0}, Semi: -0.25, Rank: 6},
	{Name: "K1", Doodson: [6]int{1, 1, 0, 0, 0, 0}, Semi: -0.75, Formula: FormulaK1, Rank: 3},
	{Name: "J1", Doodson: [6]int{1, 2, 0, -1, 0, 0}, Semi: -0.75, Formula: FormulaJ1, Rank: 14},
	{Name: "OO1", Doodson: [6]int{1, 3, 0, 0, 0, 0}, Semi: -0.75, Formula: FormulaOO1, Rank: 16},

	// Semidiurnal.
	{Name: "2N2", Doodson: [6]int{2, -2, 0, 2, 0, 0}, Formula: FormulaM2, Rank: 12},
	{Name: "MU2", Doodson: [6]int{2, -2, 2, 0, 0, 0}, Formula: FormulaM2, Rank: 13},
	{Name: "N2", Doodson: [6]int{2, -1, 0, 1, 0, 0}, Formula: FormulaM2, Rank: 5},
	{Name: "NU2", Doodson: [6]int{2, -1, 2, -1, 0, 0}, Formula: FormulaM2, Rank: 9},
	{Name: "M2", Doodson: [6]int{2, 0, 0, 0, 0, 0}, Formula: FormulaM2, Rank: 1},
	{Name: "LDA2", Doodson: [6]int{2, 1, -2, 1, 0, 0}, Semi: -0.5, Formula: FormulaM2, Rank: 24},
	{Name: "L2", Doodson: [6]int{2, 1, 0, -1, 0, 0}, Semi: -0.5, Formula: FormulaL2, Rank: 10},
	{Name: "T2", Doodson: [6]int{2, 2, -3, 0, 0, 1}, Rank: 11},
	{Name: "S2", Doodson: [6]int{2, 2, -2, 0, 0, 0}, Rank: 2},
	{Name: "R2", Doodson: [6]int{2, 2, -1, 0, 0, -1}, Semi: -0.5, Rank: 25},
	{Name: "K2", Doodson: [6]int{2, 2, 0, 0, 0, 0}, Formula: FormulaK2, Rank: 7},

	// Shallow water / compound.
	{Name: "M3", Shallow: []Component{{"M2", 1.5}}, Rank: 26},
	{Name: "MO3", Shallow: []Component{{"M2", 1}, {"O1", 1}}, Rank: 27},
	{Name: "MK3", Shallow: []Component{{"M2", 1}, {"K1", 1}}, Rank: 28},
	{Name: "MN4", Shallow: []Component{{"M2", 1}, {"N2", 1}}, Rank: 31},
	{Name: "M4", Shallow: []Component{{"M2", 2}}, Rank: 29},
	{Name: "MS4", Shallow: []Component{{"M2", 1}, {"S2", 1}}, Rank: 30},
	{Name: "S4", Shallow: []Component{{"S2", 2}}, Rank: 33},
	{Name: "M6", Shallow: []Component{{"M2", 3}}, Rank: 32},
	{Name: "2MS6", Shallow: []Component{{"M2", 2}, {"S2", 1}}, Rank: 34},
	{Name: "M8", Shallow: []Component{{"M2", 4}}, Rank: 35},
}

var (
	catalog []*Constituent
	byName  map[string]*Constituent
)

func init() {
	byName = make(map[string]*Constituent, len(table))
	for i := range table {
		byName[table[i].Name] = &table[i]
	}
	catalog = make([]*Constituent, 0, len(table))
	for i := range table {
		catalog = append(catalog, &table[i])
	}
	sort.SliceStable(catalog, func(i, j int) bool {
		fi, fj := catalog[i].Frequency(), catalog[j].Frequency()
		if fi != fj {
			return fi < fj
		}
		return catalog[i].Name < catalog[j].Name
	})
}

// Catalog returns the full constituent catalog in canonical order:
// ascending frequency, ties broken by name. The returned slice is a fresh
// copy; the records it points to are shared and must not be modified.
func Catalog() []*Constituent {
	out := make([]*Constituent, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the catalog names in canonical order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, c := range catalog {
		out[i] = c.Name
	}
	return out
}

// Lookup finds a constituent by name. Matching is case-insensitive.
func Lookup(name string) (*Constituent, bool) {
	c, ok := byName[strings.ToUpper(name)]
	return c, ok
}
