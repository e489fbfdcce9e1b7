// Package disc scores the 24-item DISC forced-choice questionnaire into
// three plotted graphs and a named behavioural pattern per graph.
package disc

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Dimension is one DISC trait. N marks a neutral choice that scores nothing.
type Dimension int

const (
	D Dimension = iota
	I
	S
	C
	N
)

func (d Dimension) String() string {
	switch d {
	case D:
		return "D"
	case I:
		return "I"
	case S:
		return "S"
	case C:
		return "C"
	default:
		return "N"
	}
}

// Line identifies one of the three DISC graphs.
type Line int

const (
	LineMost Line = iota + 1
	LineLeast
	LineChange
)

// Label is the caption shown above the graph in reports.
func (l Line) Label() string {
	switch l {
	case LineMost:
		return "Grafik 1 (Most) - Mask Public Self"
	case LineLeast:
		return "Grafik 2 (Least) - Core Private Self"
	case LineChange:
		return "Grafik 3 (Change) - Mirror Perceived Self"
	default:
		return ""
	}
}

// Answer is one answered question. Most and Least hold the 1-based option
// position ("1".."4"); numeric JSON values are accepted as well. An element
// that is not an object decodes to the zero Answer, which scores as skipped.
type Answer struct {
	QuestionNumber int    `json:"question_number"`
	Most           string `json:"most"`
	Least          string `json:"least"`
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	var raw struct {
		QuestionNumber json.RawMessage `json:"question_number"`
		Most           json.RawMessage `json:"most"`
		Least          json.RawMessage `json:"least"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		*a = Answer{}
		return nil
	}
	q, _ := strconv.Atoi(looseString(raw.QuestionNumber))
	*a = Answer{
		QuestionNumber: q,
		Most:           looseString(raw.Most),
		Least:          looseString(raw.Least),
	}
	return nil
}

// looseString accepts a JSON string or number and returns its text form.
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

type questionKey struct {
	most  [4]Dimension
	least [4]Dimension
}

// Counts holds per-dimension totals for one line.
type Counts struct {
	D int `json:"D"`
	I int `json:"I"`
	S int `json:"S"`
	C int `json:"C"`
	N int `json:"N"`
}

func (c *Counts) add(d Dimension) {
	switch d {
	case D:
		c.D++
	case I:
		c.I++
	case S:
		c.S++
	case C:
		c.C++
	default:
		c.N++
	}
}

// Get returns the count for d.
func (c Counts) Get(d Dimension) int {
	switch d {
	case D:
		return c.D
	case I:
		return c.I
	case S:
		return c.S
	case C:
		return c.C
	default:
		return c.N
	}
}

// Total sums all five counters, neutral included.
func (c Counts) Total() int { return c.D + c.I + c.S + c.C + c.N }

// Tally is the raw result: Most counts, Least counts, and their difference.
type Tally struct {
	Line1 Counts `json:"line1"`
	Line2 Counts `json:"line2"`
	Line3 Counts `json:"line3"`
}

// Point is a plotted graph position.
type Point struct {
	D float64 `json:"d"`
	I float64 `json:"i"`
	S float64 `json:"s"`
	C float64 `json:"c"`
}

type Graphs struct {
	Line1 Point `json:"line1"`
	Line2 Point `json:"line2"`
	Line3 Point `json:"line3"`
}

// LineResult is the presentation-ready classification of one graph.
type LineResult struct {
	Label       string   `json:"label"`
	PatternID   int      `json:"pattern_id"`
	Type        string   `json:"type"`
	Pattern     string   `json:"pattern"`
	Behaviour   []string `json:"behaviour"`
	Description string   `json:"description"`
	Jobs        []string `json:"jobs"`
}

type Results struct {
	Line1 LineResult `json:"line1"`
	Line2 LineResult `json:"line2"`
	Line3 LineResult `json:"line3"`
}

// Analysis is the full derived view of a DISC answer sheet.
type Analysis struct {
	Tally   Tally   `json:"tally"`
	Graphs  Graphs  `json:"graphs"`
	Results Results `json:"results"`
}

// Stats reports how much of the input was actually scored.
type Stats struct {
	Answers      int `json:"answers"`
	SkippedMost  int `json:"skipped_most"`
	SkippedLeast int `json:"skipped_least"`
}

// Skipped is the number of answer sides that did not reach a counter.
func (s Stats) Skipped() int { return s.SkippedMost + s.SkippedLeast }
