package papi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Answer is one answered item, already reduced to the role it selects.
type Answer struct {
	QuestionNumber int `json:"question_number"`
	RoleID         int `json:"selected_role_id"`
}

// RoleResult is the scored and interpreted view of one role.
type RoleResult struct {
	RoleID         int    `json:"role_id"`
	Code           string `json:"code"`
	AspectID       int    `json:"aspect_id"`
	Name           string `json:"name"`
	NameLocalized  string `json:"name_localized"`
	Description    string `json:"description"`
	Score          int    `json:"score"`
	Category       string `json:"category"`
	Label          string `json:"label"`
	Interpretation string `json:"interpretation_text"`
}

type AspectResult struct {
	AspectID int          `json:"aspect_id"`
	Name     string       `json:"name"`
	Roles    []RoleResult `json:"roles"`
}

// Analysis is the full derived view of a PAPI answer sheet.
type Analysis struct {
	Tally         map[int]int    `json:"tally"`
	Roles         []RoleResult   `json:"roles"`
	Aspects       []AspectResult `json:"aspects"`
	DominantRoles []string       `json:"dominant_roles"`
	Summary       string         `json:"summary"`
}

type Stats struct {
	Answers int `json:"answers"`
	Skipped int `json:"skipped"`
}

// Score tallies role selections and interprets every role. Role ids outside
// 1..20 are skipped without error.
func Score(answers []Answer) Analysis {
	a, _ := ScoreWithStats(answers)
	return a
}

func ScoreWithStats(answers []Answer) (Analysis, Stats) {
	st := Stats{Answers: len(answers)}
	tally := make(map[int]int, len(roles))
	for _, r := range roles {
		tally[r.ID] = 0
	}
	for _, ans := range answers {
		if _, ok := tally[ans.RoleID]; !ok {
			st.Skipped++
			continue
		}
		tally[ans.RoleID]++
	}

	results := make([]RoleResult, 0, len(roles))
	byID := make(map[int]RoleResult, len(roles))
	dominant := []string{}
	for _, r := range roles {
		res := interpretRole(r, tally[r.ID])
		results = append(results, res)
		byID[r.ID] = res
		if res.Category == CategoryHigher {
			dominant = append(dominant, fmt.Sprintf("%s (%s)", r.Code, r.NameLocalized))
		}
	}

	grouped := make([]AspectResult, 0, len(aspects))
	for _, asp := range aspects {
		ar := AspectResult{AspectID: asp.ID, Name: asp.Name, Roles: make([]RoleResult, 0, len(asp.RoleIDs))}
		for _, id := range asp.RoleIDs {
			ar.Roles = append(ar.Roles, byID[id])
		}
		grouped = append(grouped, ar)
	}

	summary := summaryNone
	if len(dominant) > 0 {
		summary = summaryPrefix + strings.Join(dominant, ", ") + "."
	}
	return Analysis{
		Tally:         tally,
		Roles:         results,
		Aspects:       grouped,
		DominantRoles: dominant,
		Summary:       summary,
	}, st
}

// InterpretScore returns the band containing score, or the Unknown sentinel
// when none does.
func InterpretScore(score int) Rule {
	for _, r := range rules {
		if score >= r.Low && score <= r.High {
			return r
		}
	}
	return unknownRule
}

func interpretRole(r Role, score int) RoleResult {
	rule := InterpretScore(score)
	text := rule.Template
	if rule.Category != CategoryUnknown {
		text = fmt.Sprintf(rule.Template, r.NameLocalized)
	}
	return RoleResult{
		RoleID:         r.ID,
		Code:           r.Code,
		AspectID:       r.AspectID,
		Name:           r.Name,
		NameLocalized:  r.NameLocalized,
		Description:    r.Description,
		Score:          score,
		Category:       rule.Category,
		Label:          rule.Label,
		Interpretation: text,
	}
}

// NormalizeAnswers reduces loosely shaped input into Answers. Each element
// may be a bare role id (number or numeric string), an Answer, or an object
// carrying selected_role_id. Unreadable elements become role 0 so that Score
// counts them as skipped. Missing question numbers default to the position.
func NormalizeAnswers(raw []any) []Answer {
	out := make([]Answer, 0, len(raw))
	for idx, v := range raw {
		ans := Answer{QuestionNumber: idx + 1}
		switch t := v.(type) {
		case Answer:
			ans = t
		case map[string]any:
			ans.RoleID = toInt(t["selected_role_id"])
			if q := toInt(t["question_number"]); q > 0 {
				ans.QuestionNumber = q
			}
		default:
			ans.RoleID = toInt(t)
		}
		out = append(out, ans)
	}
	return out
}

// DecodeAnswers parses a JSON array in any shape NormalizeAnswers accepts.
func DecodeAnswers(b []byte) ([]Answer, error) {
	var raw []any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return NormalizeAnswers(raw), nil
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		if t != float64(int(t)) {
			return 0
		}
		return int(t)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
