package disc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		d, i, s, c float64
		want       int
	}{
		{"all zero stays undefined", 0, 0, 0, 0, 0},
		{"all negative", -1, -2, -3, -4, 0},
		{"only C positive", -1, 0, -2, 0.5, 1},
		{"only D positive", 3, -1, -1, 0, 2},
		{"D over I", 4, 3, -1, -1, 5},
		{"I over D", 3, 4, -1, -1, 8},
		{"D equals I takes the earlier rule", 3, 3, -1, -1, 5},
		{"S equals C takes the earlier rule", 0, -1, 0.5, 0.5, 13},
		{"D I S", 5, 4, 3, 0, 17},
		{"C S I", -2, 1, 2, 3, 40},
		{"three equal positives", 2, 2, 2, -1, 17},
		{"all equal positives shift to zero", 5, 5, 5, 5, 0},
		{"all positive shift leaves D alone", 7, 5, 5, 5, 2},
		{"all positive shift leaves C S I", 1, 2, 3, 4, 40},
		{"all positive shift leaves two", 6, 1, 1, 4, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.d, tc.i, tc.s, tc.c))
		})
	}
}

func TestWithShiftRetry_RetriesOnce(t *testing.T) {
	var calls [][4]float64
	never := func(d, i, s, c float64) int {
		calls = append(calls, [4]float64{d, i, s, c})
		return 0
	}
	require.Equal(t, 0, withShiftRetry(never, 3, 4, 5, 6))
	require.Equal(t, [][4]float64{{3, 4, 5, 6}, {0, 1, 2, 3}}, calls)

	calls = nil
	require.Equal(t, 0, withShiftRetry(never, 0, 4, 5, 6))
	require.Len(t, calls, 1)
}

// Every catalog type must be reachable through the rule carrying its id.
func TestCatalogMatchesRules(t *testing.T) {
	require.Len(t, patternRules, 40)
	for idx, r := range patternRules {
		require.Equal(t, idx+1, r.id)
	}
	for id := 1; id <= 40; id++ {
		p := Pattern(id)
		require.Equal(t, id, p.ID)
		vals := map[string]float64{"D": -1, "I": -1, "S": -1, "C": -1}
		letters := strings.Split(p.Type, "-")
		for rank, l := range letters {
			vals[l] = float64(len(letters) - rank)
		}
		got := Classify(vals["D"], vals["I"], vals["S"], vals["C"])
		require.Equal(t, id, got, "pattern %s", p.Type)
	}
}

func TestPattern_UnknownIDsFallBackToUndefined(t *testing.T) {
	require.Equal(t, 0, Pattern(-1).ID)
	require.Equal(t, 0, Pattern(41).ID)
	require.Len(t, Patterns(), 41)
}

func TestResultFor_SplitsLists(t *testing.T) {
	r := resultFor(LineMost, 2)
	require.Equal(t, "Establisher", r.Pattern)
	require.Equal(t, []string{"Manajer Proyek", "Wirausaha", "Kepala Cabang", "Supervisor Produksi"}, r.Jobs)
	require.Len(t, r.Behaviour, 5)
	require.Equal(t, "Tegas", r.Behaviour[0])
}

func TestCoordinateTable_NearestKey(t *testing.T) {
	sparse := newCoordinateTable(map[int][4]float64{
		0:  {1, 1, 1, 1},
		4:  {2, 2, 2, 2},
		10: {3, 3, 3, 3},
	})
	require.Equal(t, 1.0, sparse.row(2)[0], "equal distance picks the lower key")
	require.Equal(t, 2.0, sparse.row(3)[0])
	require.Equal(t, 2.0, sparse.row(7)[0])
	require.Equal(t, 3.0, sparse.row(8)[0])
	require.Equal(t, 3.0, sparse.row(50)[0])
	require.Equal(t, 1.0, sparse.row(-5)[0])
}

func TestPersonalityMapCoversAllQuestions(t *testing.T) {
	require.Len(t, personalityMap, 24)
	for q := 1; q <= 24; q++ {
		_, ok := personalityMap[q]
		require.True(t, ok, "question %d", q)
	}
	require.Len(t, mostTable.rows, 21)
	require.Len(t, leastTable.rows, 21)
	require.Len(t, changeTable.rows, 45)
}
