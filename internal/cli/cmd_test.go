package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/alexanderramin/learnplan/internal/llm"
	"github.com/alexanderramin/learnplan/internal/plan"
	"github.com/alexanderramin/learnplan/internal/subject"
	"github.com/alexanderramin/learnplan/internal/synthesis"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
}

func (m *mockLLMClient) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gemini-2.0-flash-exp"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

type recordingGenerator struct {
	got generation.Request
}

func (g *recordingGenerator) Generate(_ context.Context, req generation.Request) (*generation.Result, error) {
	g.got = req
	return &generation.Result{Plan: plan.Repair(nil), Source: generation.SourceFallback}, nil
}

// testApp wires an App whose model always answers with an in-band error, so
// every plan comes from the curriculum.
func testApp(t *testing.T) *App {
	t.Helper()
	catalog := curriculum.Default()
	classifier := subject.NewClassifier(catalog, nil)
	assembler := plan.NewAssembler(synthesis.NewEngine(catalog))

	return &App{
		Plans:      generation.NewService(&mockLLMClient{response: "Error: quota exceeded"}, classifier, assembler),
		Offline:    generation.NewService(nil, classifier, assembler),
		Catalog:    catalog,
		Classifier: classifier,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func decodePlan(t *testing.T, out string) domain.Plan {
	t.Helper()
	var p domain.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &p), out)
	return p
}

// --- generate ---

func TestGenerateCmd_PrintsJSONWhenNotATerminal(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "generate", "--goal", "Learn React", "--duration", "4 weeks")
	require.NoError(t, err)

	p := decodePlan(t, out)
	assert.Equal(t, "Learn React", p.GoalTitle)
	assert.Equal(t, 28, p.TotalDays)
	assert.Len(t, p.DailyTasks, 28)
	assert.Len(t, p.WeeklyTasks, 4)
	assert.Empty(t, p.MonthlyTasks)
}

func TestGenerateCmd_Offline(t *testing.T) {
	app := testApp(t)
	app.Plans = nil

	out, err := executeCmd(t, app, "generate", "--goal", "Master DSA", "--duration", "2 months", "--offline", "--json")
	require.NoError(t, err)

	p := decodePlan(t, out)
	assert.Len(t, p.MonthlyTasks, 2)
	assert.Len(t, p.WeeklyTasks, 8)
	assert.Len(t, p.DailyTasks, 60)
}

func TestGenerateCmd_PassesFlagsThrough(t *testing.T) {
	gen := &recordingGenerator{}
	app := testApp(t)
	app.Plans = gen

	_, err := executeCmd(t, app, "generate",
		"--goal", "Play jazz standards",
		"--duration", "3 weeks",
		"--category", "Music",
		"--skill", "advanced",
		"--style", "visual",
		"--daily-time", "45 minutes",
		"--interest", "bebop", "--interest", "comping",
		"--practical-goal", "play a gig",
	)
	require.NoError(t, err)

	assert.Equal(t, "Play jazz standards", gen.got.Goal)
	assert.Equal(t, "3 weeks", gen.got.Duration)
	assert.Equal(t, domain.CategoryMusic, gen.got.Category)
	require.NotNil(t, gen.got.Profile)
	assert.Equal(t, "advanced", gen.got.Profile.SkillLevel)
	assert.Equal(t, "visual", gen.got.Profile.LearningStyle)
	assert.Equal(t, "45 minutes", gen.got.Profile.DailyTime)
	assert.Equal(t, []string{"bebop", "comping"}, gen.got.Profile.Interests)
	assert.Equal(t, []string{"play a gig"}, gen.got.Profile.PracticalGoals)
}

func TestGenerateCmd_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing duration", []string{"generate", "--goal", "Learn React"}, `"duration"`},
		{"unknown category", []string{"generate", "--goal", "x", "--duration", "1 week", "--category", "astrology"}, "unknown category"},
		{"json and view", []string{"generate", "--goal", "x", "--duration", "1 week", "--json", "--view"}, "none of the others"},
		{"blank goal", []string{"generate", "--goal", "  ", "--duration", "1 week"}, generation.ErrEmptyGoal.Error()},
		{"oversized duration", []string{"generate", "--goal", "x", "--duration", "1000000000000000000 months"}, "duration too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenerateCmd_RejectsOversizedDurationBeforeGenerating(t *testing.T) {
	gen := &recordingGenerator{}
	app := testApp(t)
	app.Plans = gen

	_, err := executeCmd(t, app, "generate", "--goal", "Learn Go", "--duration", "100000000 days")

	assert.ErrorIs(t, err, duration.ErrTooLong)
	assert.Empty(t, gen.got.Goal)
}

func TestGenerateCmd_StyledOutput(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	out, err := executeCmd(t, app, "generate", "--goal", "Learn React", "--duration", "1 week", "--offline")
	require.NoError(t, err)

	assert.Contains(t, out, "CURRICULUM")
	assert.Contains(t, out, "LEARNING PLAN")
	assert.Contains(t, out, "WEEKLY GOALS")
	assert.Contains(t, out, "Day 7")
}

func TestGenerateCmd_ViewOpensPager(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var shown tea.Model
	app.RunPager = func(m tea.Model) error {
		shown = m
		return nil
	}

	out, err := executeCmd(t, app, "generate", "--goal", "Learn Hindi", "--duration", "3 days", "--offline", "--view")
	require.NoError(t, err)

	assert.NotContains(t, out, "LEARNING PLAN")
	pager, ok := shown.(*planPager)
	require.True(t, ok)
	assert.Contains(t, pager.content, "DAILY TASKS")
	assert.Contains(t, pager.summary, "Hindi")
}

// --- serve ---

func TestServeCmd(t *testing.T) {
	app := testApp(t)
	app.DefaultAddr = ":8123"
	var gotAddr string
	app.Serve = func(_ context.Context, addr string) error {
		gotAddr = addr
		return nil
	}

	out, err := executeCmd(t, app, "serve")
	require.NoError(t, err)
	assert.Equal(t, ":8123", gotAddr)
	assert.Contains(t, out, "listening on :8123")

	_, err = executeCmd(t, app, "serve", "--addr", "127.0.0.1:9000")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", gotAddr)
}

func TestServeCmd_Errors(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "serve")
	assert.ErrorContains(t, err, "not configured")

	app.Serve = func(context.Context, string) error { return errors.New("address in use") }
	_, err = executeCmd(t, app, "serve")
	assert.ErrorContains(t, err, "address in use")
}

// --- classify / duration / categories ---

func TestClassifyCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "classify", "Build", "apps", "with", "React", "hooks")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Build apps with React hooks", got["goal"])
	assert.Equal(t, "react", got["category"])
	assert.Equal(t, "technical", got["family"])
}

func TestClassifyCmd_Styled(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	out, err := executeCmd(t, app, "classify", "Prepare for UPSC")
	require.NoError(t, err)
	assert.Contains(t, out, "→")
	assert.Contains(t, out, "Upsc")
	assert.Contains(t, out, "(exam)")
}

func TestDurationCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "duration", "2", "months", "1", "week")
	require.NoError(t, err)

	var got struct {
		Input  string         `json:"input"`
		Parsed map[string]int `json:"parsed"`
		Totals map[string]int `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2 months 1 week", got.Input)
	assert.Equal(t, map[string]int{"months": 2, "weeks": 1, "days": 0}, got.Parsed)
	assert.Equal(t, map[string]int{"total_days": 67, "total_weeks": 9, "total_months": 2}, got.Totals)
}

func TestDurationCmd_TooLong(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "duration", "5000", "days")
	assert.ErrorIs(t, err, duration.ErrTooLong)
}

func TestCategoriesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "categories", "--json")
	require.NoError(t, err)

	var rows []categoryRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, curriculum.Default().Len()+1)
	assert.Equal(t, domain.CategoryDSA, rows[0].Category)
	assert.Equal(t, domain.FamilyTechnical, rows[0].Family)
	assert.Equal(t, domain.CategoryGeneral, rows[len(rows)-1].Category)
}

// --- wizard ---

func TestWizardCmd_Cancelled(t *testing.T) {
	app := testApp(t)
	app.RunForm = func(*huh.Form) error { return huh.ErrUserAborted }

	out, err := executeCmd(t, app, "wizard")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
}

func TestWizardCmd_UsesPrefilledAnswers(t *testing.T) {
	app := testApp(t)
	ran := false
	app.RunForm = func(f *huh.Form) error {
		ran = f != nil
		return nil
	}

	out, err := executeCmd(t, app, "wizard", "--goal", "Learn Python", "--duration", "10 days", "--offline")
	require.NoError(t, err)
	assert.True(t, ran)

	p := decodePlan(t, out)
	assert.Equal(t, "Learn Python", p.GoalTitle)
	assert.Len(t, p.DailyTasks, 10)
	assert.Len(t, p.WeeklyTasks, 1)
}

func TestWizardCmd_EmptyAnswers(t *testing.T) {
	app := testApp(t)
	app.RunForm = func(*huh.Form) error { return nil }

	_, err := executeCmd(t, app, "wizard")
	assert.ErrorIs(t, err, generation.ErrEmptyGoal)
}
