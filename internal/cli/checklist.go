package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbruni/collaudo/internal/importer"
)

var importChecklistCmd = &cobra.Command{
	Use:   "import-checklist",
	Short: "Import a checklist from CSV, replacing the current one",
	RunE:  runImportChecklist,
}

var listChecklistCmd = &cobra.Command{
	Use:   "list-checklist",
	Short: "Show a project's checklist in order",
	RunE:  runListChecklist,
}

var (
	checklistProjectID string
	checklistCSVPath   string
)

func init() {
	rootCmd.AddCommand(importChecklistCmd)
	rootCmd.AddCommand(listChecklistCmd)

	importChecklistCmd.Flags().StringVar(&checklistProjectID, "project-id", "", "Project ID (required)")
	importChecklistCmd.Flags().StringVar(&checklistCSVPath, "csv", "", "CSV file path (required)")
	_ = importChecklistCmd.MarkFlagRequired("project-id")
	_ = importChecklistCmd.MarkFlagRequired("csv")

	listChecklistCmd.Flags().StringVar(&checklistProjectID, "project-id", "", "Project ID (required)")
	_ = listChecklistCmd.MarkFlagRequired("project-id")
}

func runImportChecklist(cmd *cobra.Command, args []string) error {
	entries, err := importer.ReadChecklistCSV(checklistCSVPath)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	count, err := a.Checklist.Replace(context.Background(), checklistProjectID, entries)
	if err != nil {
		return err
	}

	fmt.Printf("OK checklist imported: %d items\n", count)
	return nil
}

func runListChecklist(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	items, err := a.Checklist.List(context.Background(), checklistProjectID)
	if err != nil {
		return err
	}

	for _, item := range items {
		category := ""
		if item.Category != "" {
			category = fmt.Sprintf("[%s] ", item.Category)
		}
		fmt.Printf("%3d. %s  %s%s\n", item.Position, item.ID, category, item.Title)
	}
	return nil
}
