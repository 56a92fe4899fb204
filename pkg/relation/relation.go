// Package relation resolves indirect relationships between records in memory.
//
// A parent owns link records and every link references exactly one leaf. The
// caller fetches links, fetches the referenced leaves, and Resolve joins the
// two into the distinct leaves in first-referenced order.
package relation

// Distinct returns items with duplicate keys removed, keeping the first
// occurrence of each key. The result is a new, non-nil slice.
func Distinct[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}

	return out
}

// Keys returns the distinct leaf keys referenced by links in the order they
// are first referenced.
func Keys[L any, K comparable](links []L, leaf func(L) K) []K {
	keys := make([]K, len(links))
	for i, l := range links {
		keys[i] = leaf(l)
	}
	return Distinct(keys, func(k K) K { return k })
}

// Resolve returns the leaves referenced by links, deduplicated by key and
// ordered by first reference. Links whose leaf is missing from leaves are
// skipped.
func Resolve[L, E any, K comparable](links []L, leaf func(L) K, leaves []E, key func(E) K) []E {
	index := make(map[K]E, len(leaves))
	for _, e := range leaves {
		index[key(e)] = e
	}

	ids := Keys(links, leaf)
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		if e, ok := index[id]; ok {
			out = append(out, e)
		}
	}

	return out
}
