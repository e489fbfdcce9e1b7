package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPAPIFromStdin(t *testing.T) {
	out, err := run(t, `[1,1,1,1,1,1]`, "papi", "--compact")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)

	var res struct {
		Instrument string `json:"instrument"`
		Complete   bool   `json:"complete"`
		Analysis   struct {
			DominantRoles []string `json:"dominant_roles"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, "papi", res.Instrument)
	require.True(t, res.Complete)
	require.Len(t, res.Analysis.DominantRoles, 1)
}

func TestDISCFromFile(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for q := 1; q <= 24; q++ {
		if q > 1 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"question_number":%d,"most":1,"least":2}`, q)
	}
	b.WriteString("]")
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	out, err := run(t, "", "disc", path)
	require.NoError(t, err)
	require.Contains(t, out, `"pattern_id": 10`)
}

func TestStrictAndErrors(t *testing.T) {
	_, err := run(t, `[]`, "disc", "--strict")
	require.ErrorContains(t, err, "incomplete")

	_, err = run(t, `[]`, "disc")
	require.NoError(t, err)

	_, err = run(t, `{oops`, "papi")
	require.Error(t, err)

	_, err = run(t, "", "papi", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "read answers")

	_, err = run(t, "", "mbti")
	require.Error(t, err)
}
