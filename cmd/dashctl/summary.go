package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vfg2006/analytics-hub/pkg/utils"
)

func newSummaryCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService(root)
			if err != nil {
				return err
			}

			s := service.GetSummary()
			out := cmd.OutOrStdout()

			if asJSON {
				fmt.Fprintln(out, utils.PrettyJson(s))
				return nil
			}

			fmt.Fprintf(out, "Geographic: %s revenue, %s users across %d markets (top market %s)\n",
				utils.FormatCurrency(s.Geographic.TotalRevenue),
				humanize.Comma(int64(s.Geographic.TotalUsers)),
				s.Geographic.Markets,
				utils.FormatCurrency(s.Geographic.MaxRevenue),
			)
			fmt.Fprintf(out, "Heatmap: peak %d, average %.1f\n", s.Heatmap.Peak, s.Heatmap.Average)

			if s.Competitors.Found {
				fmt.Fprintf(out, "Competitors: %s ranks #%d of %d with %.1f%% share (%+.1f)\n",
					s.Competitors.Brand,
					s.Competitors.Position,
					s.Competitors.Competitors,
					s.Competitors.MarketShare,
					s.Competitors.Change,
				)
			} else {
				fmt.Fprintf(out, "Competitors: %s not listed\n", s.Competitors.Brand)
			}

			fmt.Fprintf(out, "Predictive: %s predicted over %d periods, %.1f%% average confidence\n",
				utils.FormatCurrency(s.Predictive.TotalPredicted),
				s.Predictive.Periods,
				s.Predictive.AverageConfidence,
			)
			fmt.Fprintf(out, "Campaigns: %s impressions, %s spend, %s conversions\n",
				humanize.Comma(int64(s.Campaigns.Impressions)),
				utils.FormatCurrency(s.Campaigns.Spend),
				humanize.Comma(int64(s.Campaigns.Conversions)),
			)
			fmt.Fprintf(out, "Unread alerts: %d\n", s.UnreadAlerts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}
