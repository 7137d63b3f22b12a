package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vfg2006/analytics-hub/internal/query"
	"github.com/vfg2006/analytics-hub/pkg/utils"
)

func newQueryCmd(root *rootOptions) *cobra.Command {
	q := query.DefaultQuery()
	var (
		sortField     string
		sortDirection string
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, sort and paginate the campaign table",
		Long: `Runs the campaign query engine over the seed rows.

Example:
  dashctl query --search google --status active --sort spend --direction desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService(root)
			if err != nil {
				return err
			}

			q.SortField = query.SortField(sortField)
			q.SortDirection = query.SortDirection(sortDirection)

			result, err := service.QueryCampaigns(q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				fmt.Fprintln(out, utils.PrettyJson(result))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCAMPAIGN\tPLATFORM\tIMPRESSIONS\tCTR\tSPEND\tROAS\tSTATUS\tDATE")
			for _, row := range result.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f%%\t%s\t%.1fx\t%s\t%s\n",
					row.ID,
					row.Campaign,
					row.Platform,
					humanize.Comma(int64(row.Impressions)),
					row.CTR,
					utils.FormatCurrency(row.Spend),
					row.ROAS,
					row.Status,
					row.Date,
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "Showing %d to %d of %d results (page %d of %d)\n",
				result.From, result.To, result.TotalMatches, result.Page, result.TotalPages)
			return nil
		},
	}

	cmd.Flags().StringVar(&q.SearchTerm, "search", "", "Case-insensitive match on campaign or platform")
	cmd.Flags().StringVar(&q.StatusFilter, "status", query.FilterAll, "Status filter (active, paused, completed, all)")
	cmd.Flags().StringVar(&q.PlatformFilter, "platform", query.FilterAll, "Platform filter")
	cmd.Flags().StringVar(&sortField, "sort", string(query.SortByDate), "Sort column")
	cmd.Flags().StringVar(&sortDirection, "direction", string(query.SortDesc), "Sort direction (asc, desc)")
	cmd.Flags().IntVar(&q.Page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&q.PageSize, "page-size", query.DefaultPageSize, "Rows per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}
