// Package constituent defines the static catalog of tidal constituents.
//
// Each constituent is described by its Doodson-style coefficients over the
// six fundamental astronomical arguments, a phase constant, the nodal
// correction formula family it belongs to, and a selection priority used to
// resolve Rayleigh-criterion conflicts. Shallow-water and compound
// constituents are described by their composition in terms of parent
// constituents; their frequencies, phases, and nodal corrections all derive
// from the parents.
//
// The catalog is loaded once at init and is immutable afterward; it may be
// read concurrently without synchronization.
//
// # Basic Usage
//
//	m2, ok := constituent.Lookup("M2")
//	if !ok {
//	    // unknown name
//	}
//	fmt.Printf("M2 frequency: %.7f cycles/hour\n", m2.Frequency())
//
//	for _, c := range constituent.Catalog() {
//	    fmt.Println(c.Name, c.Frequency())
//	}
//
// Catalog order is canonical: ascending frequency, ties broken by name. All
// analysis output in the harmonic package follows this order.
package constituent
