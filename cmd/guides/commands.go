package main

import (
	"fmt"
	"io"

	"guide-catalog-be/internal/dto"
	"guide-catalog-be/internal/entity"
	"guide-catalog-be/internal/pkg/serverutils"
	"guide-catalog-be/pkg/guide"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// unknownLimit marks a plan whose SAML limit is not known
const unknownLimit = -1

type catalogFlags struct {
	cloud       bool
	devFeatures bool
	samlLimit   int
	categories  []string
	keyword     string
}

func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.cloud, "cloud", false, "Treat the deployment as cloud")
	cmd.Flags().BoolVar(&f.devFeatures, "dev-features", false, "Enable dev-feature guides")
	cmd.Flags().IntVar(&f.samlLimit, "saml-limit", unknownLimit, "SAML application limit of the plan (-1 for unknown)")
	cmd.Flags().StringSliceVar(&f.categories, "category", nil, "Category filter, repeatable")
	cmd.Flags().StringVar(&f.keyword, "keyword", "", "Case-insensitive name filter")
}

func (f *catalogFlags) environment() entity.Environment {
	return entity.Environment{IsCloud: f.cloud, IsDevFeaturesEnabled: f.devFeatures}
}

func (f *catalogFlags) quota() entity.SubscriptionQuota {
	if f.samlLimit < 0 {
		return entity.SubscriptionQuota{}
	}
	limit := f.samlLimit
	return entity.SubscriptionQuota{SamlApplicationsLimit: &limit}
}

// visible applies the gate and validates the filter the same way the REST handlers do
func (f *catalogFlags) visible() ([]entity.Guide, *guide.FilterOptions, error) {
	req := dto.GuideFilterRequest{Categories: f.categories, Keyword: f.keyword}
	if err := serverutils.ValidateStruct(req); err != nil {
		return nil, nil, err
	}
	return guide.VisibleGuides(guide.BuiltinCorpus, f.environment(), f.quota()), req.ToFilterOptions(), nil
}

func newListCmd() *cobra.Command {
	flags := &catalogFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the guides matching the filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			visible, filters, err := flags.visible()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			guides := guide.FilterGuides(visible, filters)
			if len(guides) == 0 {
				color.New(color.FgYellow).Fprintln(out, "No guides match")
				return nil
			}
			printGuides(out, guides)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newStructuredCmd() *cobra.Command {
	flags := &catalogFlags{}
	cmd := &cobra.Command{
		Use:   "structured",
		Short: "Print the filtered guides grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			visible, filters, err := flags.visible()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			structured := guide.Structure(visible, filters)
			heading := color.New(color.FgCyan, color.Bold)
			for _, c := range entity.Categories {
				bucket := structured.Bucket(c)
				heading.Fprintf(out, "%s (%d)\n", c, len(bucket))
				printGuides(out, bucket)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newApiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "List the API protection guides",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printGuides(cmd.OutOrStdout(), guide.ApiGuides(guide.BuiltinCorpus))
		},
	}
}

func printGuides(out io.Writer, guides []entity.Guide) {
	faint := color.New(color.Faint)
	for _, g := range guides {
		fmt.Fprintf(out, "  %-28s %s", g.Id, g.Name)
		if g.IsThirdParty {
			faint.Fprint(out, " [third-party]")
		}
		fmt.Fprintln(out)
	}
}
