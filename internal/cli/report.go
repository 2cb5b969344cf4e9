package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbruni/collaudo/internal/report"
)

var exportReportCmd = &cobra.Command{
	Use:   "export-report",
	Short: "Export a run's report as markdown and optionally HTML",
	RunE:  runExportReport,
}

var (
	reportProjectID string
	reportRunID     string
	reportOutMD     string
	reportOutHTML   string
	reportFooter    string
)

func init() {
	rootCmd.AddCommand(exportReportCmd)

	exportReportCmd.Flags().StringVar(&reportProjectID, "project-id", "", "Project ID (required)")
	exportReportCmd.Flags().StringVar(&reportRunID, "run-id", "", "Run ID (required)")
	exportReportCmd.Flags().StringVar(&reportOutMD, "out-md", "", "Markdown output path (required)")
	exportReportCmd.Flags().StringVar(&reportOutHTML, "out-html", "", "HTML output path")
	exportReportCmd.Flags().StringVar(&reportFooter, "footer", "", "Generated-by footer (overrides config)")
	_ = exportReportCmd.MarkFlagRequired("project-id")
	_ = exportReportCmd.MarkFlagRequired("run-id")
	_ = exportReportCmd.MarkFlagRequired("out-md")
}

func runExportReport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()

	proj, err := a.Projects.Get(ctx, reportProjectID)
	if err != nil {
		return err
	}
	rn, err := a.Runs.Get(ctx, reportRunID)
	if err != nil {
		return err
	}
	if rn.ProjectID != proj.ID {
		return fmt.Errorf("run %s does not belong to project %s", rn.ID, proj.ID)
	}

	items, err := a.Checklist.List(ctx, proj.ID)
	if err != nil {
		return err
	}
	progress, err := a.Runs.Progress(ctx, rn.ID)
	if err != nil {
		return err
	}

	footer := reportFooter
	if footer == "" {
		footer = a.Config.Report.Footer
	}

	md := report.Markdown(proj, rn, items, progress, report.Options{GeneratedBy: footer})
	if err := report.WriteFile(reportOutMD, md); err != nil {
		return err
	}
	fmt.Printf("OK MD: %s\n", reportOutMD)

	if reportOutHTML != "" {
		if err := report.WriteFile(reportOutHTML, report.HTML(md, footer)); err != nil {
			return err
		}
		fmt.Printf("OK HTML: %s\n", reportOutHTML)
	}

	return nil
}
