package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/analytics-hub/internal/export"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the campaign table as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService(root)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return service.ExportCampaigns(cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}

			if err := service.ExportCampaigns(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", output, err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported campaigns to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", fmt.Sprintf("Destination file, e.g. %s (default stdout)", export.FileName))

	return cmd
}
