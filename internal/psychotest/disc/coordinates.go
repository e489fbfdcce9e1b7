package disc

import "sort"

type coordinateTable struct {
	rows     map[int][4]float64
	keys     []int
	min, max int
}

func newCoordinateTable(rows map[int][4]float64) coordinateTable {
	keys := make([]int, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return coordinateTable{rows: rows, keys: keys, min: keys[0], max: keys[len(keys)-1]}
}

// row clamps raw into the table domain and returns its coordinates. A key
// missing from a sparse table resolves to the nearest key; on equal distance
// the lower key wins because keys are scanned in ascending order.
func (t coordinateTable) row(raw int) [4]float64 {
	if raw < t.min {
		raw = t.min
	}
	if raw > t.max {
		raw = t.max
	}
	if r, ok := t.rows[raw]; ok {
		return r
	}
	best, bestDist := t.keys[0], abs(t.keys[0]-raw)
	for _, k := range t.keys[1:] {
		if d := abs(k - raw); d < bestDist {
			best, bestDist = k, d
		}
	}
	return t.rows[best]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func tableFor(line Line) coordinateTable {
	switch line {
	case LineLeast:
		return leastTable
	case LineChange:
		return changeTable
	default:
		return mostTable
	}
}

// Lookup returns the plotted value of dim for a raw count on the given line.
// Raw values outside the table domain are clamped first.
func Lookup(line Line, raw int, dim Dimension) float64 {
	if dim < D || dim > C {
		return 0
	}
	return tableFor(line).row(raw)[dim]
}

func plot(line Line, c Counts) Point {
	t := tableFor(line)
	return Point{
		D: t.row(c.D)[D],
		I: t.row(c.I)[I],
		S: t.row(c.S)[S],
		C: t.row(c.C)[C],
	}
}
