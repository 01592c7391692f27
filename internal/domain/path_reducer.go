package domain

import "strings"

// Invocation chain node separators.
const (
	chainArrow = "→"
	chainASCII = "->"
)

// ReducePaths collapses invocation chains into the smallest set in which no
// chain is contained in another. A chain contained in an existing entry is
// dropped; an entry contained in a new chain is replaced by it in place.
// The result keeps insertion order.
func ReducePaths(paths []string) []string {
	var reduced []string

	for _, s := range paths {
		if s == "" {
			continue
		}

		covered := false

		for i, p := range reduced {
			if chainContains(p, s) {
				covered = true
				break
			}

			if chainContains(s, p) {
				reduced[i] = s
				reduced = dropCoveredBy(reduced, i)
				covered = true

				break
			}
		}

		if !covered {
			reduced = append(reduced, s)
		}
	}

	return reduced
}

// dropCoveredBy removes entries after keep that are contained in reduced[keep].
// Entries before keep were already checked against the same chain.
func dropCoveredBy(reduced []string, keep int) []string {
	out := reduced[:keep+1]

	for _, p := range reduced[keep+1:] {
		if !chainContains(reduced[keep], p) {
			out = append(out, p)
		}
	}

	return out
}

// chainContains reports whether inner is covered by outer: either an
// unanchored substring of it, or its nodes appear in outer in the same order.
// The ordered match lets t→a→b→m1 replace t→a→m1, which plain substring
// matching misses. Chains that only share their endpoints, such as t→a→m1
// and t→b→a→c→m1, collapse as well.
func chainContains(outer, inner string) bool {
	if strings.Contains(outer, inner) {
		return true
	}

	outerNodes := chainNodes(outer)
	innerNodes := chainNodes(inner)

	if len(innerNodes) > len(outerNodes) {
		return false
	}

	i := 0
	for _, node := range outerNodes {
		if i < len(innerNodes) && node == innerNodes[i] {
			i++
		}
	}

	return i == len(innerNodes)
}

func chainNodes(chain string) []string {
	parts := strings.Split(strings.ReplaceAll(chain, chainASCII, chainArrow), chainArrow)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}
