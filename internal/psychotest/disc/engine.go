package disc

import (
	"strconv"
	"strings"
)

// Score tallies answers and classifies each graph. Unknown question numbers
// and option positions outside 1..4 are skipped without error.
func Score(answers []Answer) Analysis {
	a, _ := ScoreWithStats(answers)
	return a
}

// ScoreWithStats is Score plus a count of the answer sides it skipped.
func ScoreWithStats(answers []Answer) (Analysis, Stats) {
	var most, least Counts
	st := Stats{Answers: len(answers)}
	for _, ans := range answers {
		key, ok := personalityMap[ans.QuestionNumber]
		if !ok {
			st.SkippedMost++
			st.SkippedLeast++
			continue
		}
		if dim, ok := pick(key.most, ans.Most); ok {
			most.add(dim)
		} else {
			st.SkippedMost++
		}
		if dim, ok := pick(key.least, ans.Least); ok {
			least.add(dim)
		} else {
			st.SkippedLeast++
		}
	}

	tally := Tally{
		Line1: most,
		Line2: least,
		Line3: Counts{
			D: most.D - least.D,
			I: most.I - least.I,
			S: most.S - least.S,
			C: most.C - least.C,
		},
	}
	graphs := Graphs{
		Line1: plot(LineMost, tally.Line1),
		Line2: plot(LineLeast, tally.Line2),
		Line3: plot(LineChange, tally.Line3),
	}
	return Analysis{
		Tally:  tally,
		Graphs: graphs,
		Results: Results{
			Line1: classifyLine(LineMost, graphs.Line1),
			Line2: classifyLine(LineLeast, graphs.Line2),
			Line3: classifyLine(LineChange, graphs.Line3),
		},
	}, st
}

func pick(row [4]Dimension, option string) (Dimension, bool) {
	pos, err := strconv.Atoi(strings.TrimSpace(option))
	if err != nil {
		return N, false
	}
	idx := pos - 1
	if idx < 0 || idx > 3 {
		return N, false
	}
	return row[idx], true
}

func classifyLine(line Line, p Point) LineResult {
	return resultFor(line, Classify(p.D, p.I, p.S, p.C))
}
