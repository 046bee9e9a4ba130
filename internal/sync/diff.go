package sync

import "slices"

// partition splits two identity-keyed sets into the keys only the cache
// holds (obsolete), the keys only the page holds (added), and the keys
// both hold (retained). Reconciliation is set algebra over identities:
// obsolete rows are deleted, added rows inserted, retained rows updated.
func partition[K comparable, E any, P any](existing map[K]E, parsed map[K]P) (obsolete, added, retained []K) {
	for key := range existing {
		if _, ok := parsed[key]; ok {
			retained = append(retained, key)
		} else {
			obsolete = append(obsolete, key)
		}
	}
	for key := range parsed {
		if _, ok := existing[key]; !ok {
			added = append(added, key)
		}
	}
	return obsolete, added, retained
}

// sortIDs orders an id slice so batch statements run deterministically.
func sortIDs(ids []int64) []int64 {
	slices.Sort(ids)
	return ids
}
