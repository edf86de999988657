package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/learnplan/internal/cli/formatter"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/spf13/cobra"
)

// outputOptions selects how a generated plan is shown.
type outputOptions struct {
	json    bool
	offline bool
	view    bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print the plan as JSON")
	cmd.Flags().BoolVar(&o.offline, "offline", false, "skip the language model and use the curriculum")
	cmd.Flags().BoolVar(&o.view, "view", false, "open the plan in a scrollable viewer")
	cmd.MarkFlagsMutuallyExclusive("json", "view")
}

func newGenerateCmd(app *App) *cobra.Command {
	var (
		goal, dur string
		profile   generation.Profile
		out       outputOptions
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a learning plan for a goal",
		Example: `  learnplan generate --goal "Learn React" --duration "4 weeks"`,
	}
	category := addCategoryFlag(cmd, app.Catalog)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.generate(cmd, generation.Request{
			Goal:     goal,
			Duration: dur,
			Profile:  &profile,
			Category: category.category,
		}, out)
	}

	cmd.Flags().StringVar(&goal, "goal", "", "what you want to learn")
	cmd.Flags().StringVar(&dur, "duration", "", `time available, e.g. "2 months 1 week"`)
	cmd.Flags().StringVar(&profile.SkillLevel, "skill", "", "skill level (beginner, intermediate, advanced)")
	cmd.Flags().StringVar(&profile.LearningStyle, "style", "", "learning style, e.g. practical or visual")
	cmd.Flags().StringVar(&profile.DailyTime, "daily-time", "", `time per day, e.g. "30 minutes"`)
	cmd.Flags().StringSliceVar(&profile.Interests, "interest", nil, "interest to tailor tasks to (repeatable)")
	cmd.Flags().StringSliceVar(&profile.PracticalGoals, "practical-goal", nil, "outcome to aim for (repeatable)")
	out.register(cmd)
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func (a *App) generate(cmd *cobra.Command, req generation.Request, out outputOptions) error {
	if err := duration.Parse(req.Duration).Validate(); err != nil {
		return err
	}
	gen := a.Plans
	if out.offline || gen == nil {
		gen = a.Offline
	}
	if gen == nil {
		return fmt.Errorf("no plan generator configured")
	}

	stop := func() {}
	if a.interactive() && !out.json && !out.offline {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Generating plan...")
	}
	res, err := gen.Generate(cmd.Context(), req)
	stop()
	if err != nil {
		return err
	}

	return a.renderPlan(cmd, res, out)
}

func (a *App) renderPlan(cmd *cobra.Command, res *generation.Result, out outputOptions) error {
	if out.json || !a.interactive() {
		return writeJSON(cmd.OutOrStdout(), res.Plan)
	}

	summary := formatter.FormatResultSummary(res, a.Catalog.Family(res.Category))
	body := formatter.FormatPlan(res.Plan)
	if out.view {
		return a.runPager(newPlanPager(summary, body))
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary)
	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
