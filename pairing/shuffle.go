/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package pairing

// Shuffle returns a seeded Fisher-Yates permutation of items. The input
// slice is left untouched.
func Shuffle(items []string, seed string) []string {
	out := make([]string, len(items))
	copy(out, items)

	g := NewGenerator(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := g.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Partition splits an ordered roster into consecutive pairs. An odd
// trailing member joins the pair before it, so the only group that can
// hold three people is the last one. A roster of one yields a single
// group of one.
func Partition(order []string) [][]string {
	groups := make([][]string, 0, (len(order)+1)/2)

	for i := 0; i < len(order); i += 2 {
		if i+1 < len(order) {
			groups = append(groups, []string{order[i], order[i+1]})
		} else {
			groups = append(groups, []string{order[i]})
		}
	}

	n := len(groups)
	if n >= 2 && len(groups[n-1]) == 1 {
		last := groups[n-1][0]
		prev := groups[n-2]
		groups = append(groups[:n-2], []string{prev[0], prev[1], last})
	}

	return groups
}
