package cli

import (
	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// categoryFlag is a --category value checked against the catalog.
type categoryFlag struct {
	catalog  *curriculum.Catalog
	category domain.Category
}

var _ pflag.Value = (*categoryFlag)(nil)

func (f *categoryFlag) String() string { return string(f.category) }
func (f *categoryFlag) Type() string   { return "category" }

func (f *categoryFlag) Set(s string) error {
	c, err := f.catalog.Lookup(s)
	if err != nil {
		return err
	}
	f.category = c
	return nil
}

func addCategoryFlag(cmd *cobra.Command, catalog *curriculum.Catalog) *categoryFlag {
	f := &categoryFlag{catalog: catalog}
	cmd.Flags().Var(f, "category", "skip classification and use this category (see `learnplan categories`)")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := []string{string(domain.CategoryGeneral)}
		for _, c := range catalog.Categories() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return f
}
