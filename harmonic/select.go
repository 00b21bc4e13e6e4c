package harmonic

import (
	"fmt"
	"sort"

	"github.com/coastref/gotide/constituent"
)

// selectConstituents picks the constituents to fit over a record of the
// given span (hours). With no requested names the candidate pool is the
// full catalog; otherwise it is the named subset. Any two candidates whose
// frequency difference times the span falls short of rmin cycles are in
// conflict; the lower-priority one is dropped (or, for an explicit list
// with autoDrop disabled, the conflict is an error). The result is in
// canonical catalog order and is deterministic for identical inputs.
func selectConstituents(span float64, requested []string, rmin float64, autoDrop bool) ([]*constituent.Constituent, error) {
	if span <= 0 {
		return nil, &InvalidTimeSpanError{Span: span}
	}

	explicit := len(requested) > 0
	var pool []*constituent.Constituent
	if explicit {
		pool = make([]*constituent.Constituent, 0, len(requested))
		seen := make(map[string]bool, len(requested))
		for _, name := range requested {
			c, ok := constituent.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("harmonic: unknown constituent %q", name)
			}
			if seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			pool = append(pool, c)
		}
	} else {
		pool = constituent.Catalog()
	}

	// Greedy acceptance in priority order: a candidate survives only if it
	// is resolvable against everything already kept, so of any conflicting
	// pair exactly the lower-priority member is dropped. Ties in rank
	// break lexically for determinism.
	byPriority := make([]*constituent.Constituent, len(pool))
	copy(byPriority, pool)
	sort.SliceStable(byPriority, func(i, j int) bool {
		if byPriority[i].Rank != byPriority[j].Rank {
			return byPriority[i].Rank < byPriority[j].Rank
		}
		return byPriority[i].Name < byPriority[j].Name
	})

	kept := make(map[string]bool, len(byPriority))
	var keptList []*constituent.Constituent
	for _, c := range byPriority {
		conflict := (*constituent.Constituent)(nil)
		for _, k := range keptList {
			df := c.Frequency() - k.Frequency()
			if df < 0 {
				df = -df
			}
			if df*span < rmin {
				conflict = k
				break
			}
		}
		if conflict != nil {
			if explicit && !autoDrop {
				return nil, &ConstituentConflictError{Kept: conflict.Name, Dropped: c.Name}
			}
			continue
		}
		kept[c.Name] = true
		keptList = append(keptList, c)
	}

	// Restrict canonical catalog order to the survivors.
	out := make([]*constituent.Constituent, 0, len(keptList))
	for _, c := range constituent.Catalog() {
		if kept[c.Name] {
			out = append(out, c)
		}
	}
	return out, nil
}
