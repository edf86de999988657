package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/cli/formatter"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// learnplanHuhTheme returns a huh theme using the Gruvbox palette.
func learnplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers is filled in by the plan wizard. Fields set before the form
// runs show up as defaults.
type wizardAnswers struct {
	Goal      string
	Duration  string
	Skill     string
	Style     string
	DailyTime string
}

func (a wizardAnswers) request() generation.Request {
	return generation.Request{
		Goal:     a.Goal,
		Duration: a.Duration,
		Profile: &generation.Profile{
			SkillLevel:    a.Skill,
			LearningStyle: a.Style,
			DailyTime:     a.DailyTime,
		},
	}
}

func newPlanWizardForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to learn?").
				Placeholder("Learn React").
				Value(&a.Goal).
				Validate(validateGoal),
			huh.NewInput().
				Title("How much time do you have?").
				Description("Months, weeks and days, e.g. 2 months 1 week").
				Placeholder("4 weeks").
				Value(&a.Duration).
				Validate(validateDuration),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Skill level").
				Options(huh.NewOptions("beginner", "intermediate", "advanced")...).
				Value(&a.Skill),
			huh.NewSelect[string]().
				Title("Learning style").
				Options(huh.NewOptions("practical", "project-based", "visual", "reading")...).
				Value(&a.Style),
			huh.NewInput().
				Title("Time per day").
				Placeholder("1-2 hours").
				Value(&a.DailyTime),
		),
	).WithTheme(learnplanHuhTheme()).WithShowHelp(false)
}

func validateGoal(s string) error {
	if strings.TrimSpace(s) == "" {
		return generation.ErrEmptyGoal
	}
	return nil
}

// validateDuration is stricter than the parser, which turns unrecognized
// text into a one-day plan.
func validateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return generation.ErrEmptyDuration
	}
	spec := duration.Parse(s)
	if spec == (duration.Spec{}) {
		return errors.New("no months, weeks or days found")
	}
	return spec.Validate()
}

func newWizardCmd(app *App) *cobra.Command {
	answers := wizardAnswers{Skill: "beginner", Style: "practical"}
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer a few questions and generate a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.runForm(newPlanWizardForm(&answers))
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			if err != nil {
				return err
			}
			return app.generate(cmd, answers.request(), out)
		},
	}

	cmd.Flags().StringVar(&answers.Goal, "goal", "", "prefill the goal")
	cmd.Flags().StringVar(&answers.Duration, "duration", "", "prefill the duration")
	out.register(cmd)

	return cmd
}
