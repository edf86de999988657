package cli

import (
	"context"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/alexanderramin/learnplan/internal/subject"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// PlanGenerator produces plans. *generation.Service satisfies it.
type PlanGenerator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.Result, error)
}

// App holds the collaborators CLI commands run against.
type App struct {
	// Plans asks the configured model and falls back to the curriculum.
	Plans PlanGenerator
	// Offline never contacts a model.
	Offline PlanGenerator

	Catalog    *curriculum.Catalog
	Classifier *subject.Classifier

	// Serve runs the HTTP API until ctx is canceled.
	Serve func(ctx context.Context, addr string) error
	// DefaultAddr is used by `serve` when --addr is not given.
	DefaultAddr string

	// IsInteractive reports whether stdout is a terminal. Styled output and
	// the spinner are only used when it returns true.
	IsInteractive func() bool

	// RunForm and RunPager are replaced in tests.
	RunForm  func(*huh.Form) error
	RunPager func(tea.Model) error
}

// NewRootCmd creates the top-level "learnplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "learnplan",
		Short:         "Personalized learning plan generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newWizardCmd(app),
		newServeCmd(app),
		newClassifyCmd(app),
		newDurationCmd(app),
		newCategoriesCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) runPager(m tea.Model) error {
	if a.RunPager != nil {
		return a.RunPager(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
