package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/intake"
	"github.com/abhisek/tizhi/internal/report"
)

// run executes a fresh command tree with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root, g := newRootCmd()
	t.Cleanup(g.close)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// filledDoc returns a JSON answer document with every question of the
// bank for sex set to v. The document names sex only when named is set.
func filledDoc(t *testing.T, sex bank.Sex, v int, named bool) string {
	t.Helper()
	b := bank.Effective(sex)
	answers := map[string][]int{}
	for _, c := range bank.AllCategories() {
		vals := make([]int, b.Count(c))
		for i := range vals {
			vals[i] = v
		}
		answers[c.String()] = vals
	}
	doc := map[string]any{"answers": answers}
	if named {
		doc["sex"] = sex.String()
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "tizhi (devel)\n", out)
}

func TestTemplate_JSONRoundTrips(t *testing.T) {
	out, err := run(t, "", "template", "--sex", "male")
	require.NoError(t, err)

	sub, err := intake.Parse("template.json", []byte(out))
	require.NoError(t, err)
	assert.Equal(t, bank.Male, sub.Sex)
	for _, c := range bank.AllCategories() {
		assert.Len(t, sub.Answers[c], bank.Effective(bank.Male).Count(c), "%s", c)
	}
}

func TestTemplate_YAML(t *testing.T) {
	out, err := run(t, "", "template", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "sex: female")
	assert.Contains(t, out, "damp-heat:")
}

func TestTemplate_RejectsReportFormats(t *testing.T) {
	_, err := run(t, "", "template", "--format", "markdown")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestScore_JSON(t *testing.T) {
	path := writeFile(t, "answers.json", filledDoc(t, bank.Female, 3, true))

	out, err := run(t, "", "score", "--format", "json", path)
	require.NoError(t, err)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "female", r.Sex)
	assert.Len(t, r.Scores, bank.CategoryCount)
	for _, cs := range r.Scores {
		assert.Equal(t, 50.0, cs.Score, "%s", cs.Category)
	}
	assert.Len(t, r.Affirmed, 8)
}

func TestScore_SexPrecedence(t *testing.T) {
	path := writeFile(t, "answers.json", filledDoc(t, bank.Female, 2, true))

	out, err := run(t, "", "score", "-f", "json", "--sex", "male", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"sex": "male"`)

	out, err = run(t, "", "score", "-f", "json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"sex": "female"`)

	t.Setenv("TIZHI_RESPONDENT_DEFAULT_SEX", "male")
	anon := writeFile(t, "anon.json", filledDoc(t, bank.Female, 2, false))
	out, err = run(t, "", "score", "-f", "json", anon)
	require.NoError(t, err)
	assert.Contains(t, out, `"sex": "male"`)
}

func TestScore_Stdin(t *testing.T) {
	yamlDoc := "sex: male\nanswers:\n  balanced: [5, 5, 5, 5, 5, 5, 5, 5]\n"
	out, err := run(t, yamlDoc, "score", "--format", "text", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "平和质")
	assert.Contains(t, out, report.Disclaimer)
}

func TestScore_StdinTwice(t *testing.T) {
	_, err := run(t, "{}", "score", "-", "-")
	require.Error(t, err)
}

func TestScore_KeepsArgumentOrderAndReportsFailures(t *testing.T) {
	first := writeFile(t, "first.yaml", "sex: female\nanswers:\n  balanced: [5]\n")
	second := writeFile(t, "second.json", filledDoc(t, bank.Male, 1, true))
	bad := writeFile(t, "bad.json", `{"answers": {"balanced": [9]}}`)
	missing := filepath.Join(t.TempDir(), "missing.json")

	out, err := run(t, "", "score", "-f", "yaml", first, bad, second, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
	assert.Contains(t, err.Error(), "missing.json")

	docs := strings.Split(out, "---\n")
	require.Len(t, docs, 2)
	assert.Contains(t, docs[0], "sex: female")
	assert.Contains(t, docs[1], "sex: male")
}

func TestScore_InvalidFlags(t *testing.T) {
	path := writeFile(t, "answers.json", filledDoc(t, bank.Female, 3, true))

	_, err := run(t, "", "score", "--format", "pdf", path)
	require.ErrorIs(t, err, report.ErrUnknownFormat)

	_, err = run(t, "", "score", "--sex", "other", path)
	require.ErrorIs(t, err, bank.ErrUnknownSex)

	_, err = run(t, "", "score")
	require.Error(t, err)
}

func TestQuestions(t *testing.T) {
	out, err := run(t, "", "questions", "--sex", "male", "--category", "damp-heat")
	require.NoError(t, err)
	assert.Contains(t, out, "湿热质")
	assert.Contains(t, out, "6 of 66 questions (male)")
	assert.NotContains(t, out, "平和质")
}

func TestQuestions_UnknownCategory(t *testing.T) {
	_, err := run(t, "", "questions", "--category", "nope")
	require.ErrorIs(t, err, bank.ErrUnknownCategory)
}

func TestConfigFlag(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "output:\n  format: json\n")
	path := writeFile(t, "answers.json", filledDoc(t, bank.Female, 3, true))

	out, err := run(t, "", "--config", cfgPath, "score", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "config should select JSON output:\n%s", out)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "score", path)
	require.Error(t, err)
}

func TestResolveSex(t *testing.T) {
	male := bank.Male
	tests := []struct {
		name     string
		flag     string
		doc      *bank.Sex
		fallback bank.Sex
		want     bank.Sex
	}{
		{"flag wins", "f", &male, bank.Male, bank.Female},
		{"document next", "", &male, bank.Female, bank.Male},
		{"fallback last", "", nil, bank.Male, bank.Male},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSex(tt.flag, tt.doc, tt.fallback)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
