package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnplan/internal/cli/formatter"
	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/alexanderramin/learnplan/internal/duration"
	"github.com/spf13/cobra"
)

func newClassifyCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <goal>",
		Short: "Show which category a goal falls into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := strings.Join(args, " ")
			category := app.Classifier.Classify(goal)
			family := app.Catalog.Family(category)

			if asJSON || !app.interactive() {
				return writeJSON(cmd.OutOrStdout(), struct {
					Goal     string          `json:"goal"`
					Category domain.Category `json:"category"`
					Family   domain.Family   `json:"family"`
				}{goal, category, family})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatClassification(goal, category, family))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func newDurationCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "duration <text>",
		Short: "Show how a duration is counted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			spec := duration.Parse(text)
			if err := spec.Validate(); err != nil {
				return err
			}
			totals := spec.Totals()

			if asJSON || !app.interactive() {
				return writeJSON(cmd.OutOrStdout(), struct {
					Input  string          `json:"input"`
					Parsed duration.Spec   `json:"parsed"`
					Totals duration.Totals `json:"totals"`
				}{text, spec, totals})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDuration(text, spec, totals))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

type categoryRow struct {
	Category       domain.Category `json:"category"`
	Family         domain.Family   `json:"family,omitempty"`
	Topics         int             `json:"topics"`
	PracticalTasks int             `json:"practicalTasks"`
	Projects       int             `json:"projects"`
}

func newCategoriesCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the subject categories and their curricula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON && app.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategories(app.Catalog))
				return nil
			}

			rows := make([]categoryRow, 0, app.Catalog.Len()+1)
			for _, c := range app.Catalog.Categories() {
				e, _ := app.Catalog.Get(c)
				rows = append(rows, categoryRow{
					Category:       c,
					Family:         e.Family,
					Topics:         len(e.Topics),
					PracticalTasks: len(e.PracticalTasks),
					Projects:       len(e.Projects),
				})
			}
			rows = append(rows, categoryRow{Category: domain.CategoryGeneral})
			return writeJSON(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
