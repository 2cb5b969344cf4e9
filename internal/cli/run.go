package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbruni/collaudo/internal/domain/run"
)

var newRunCmd = &cobra.Command{
	Use:   "new-run",
	Short: "Start a new test run",
	RunE:  runNewRun,
}

var closeRunCmd = &cobra.Command{
	Use:   "close-run",
	Short: "Stamp a run's close time",
	RunE:  runCloseRun,
}

var setOutcomeCmd = &cobra.Command{
	Use:   "set-outcome",
	Short: "Record PASS/FAIL/SKIP for a checklist item in a run",
	RunE:  runSetOutcome,
}

var listRunsCmd = &cobra.Command{
	Use:   "list-runs",
	Short: "List a project's runs",
	RunE:  runListRuns,
}

var (
	runProjectID string
	runName      string
	runOperator  string
	runID        string
	outcomeItem  string
	outcomeValue string
	outcomeNote  string
)

func init() {
	rootCmd.AddCommand(newRunCmd)
	rootCmd.AddCommand(closeRunCmd)
	rootCmd.AddCommand(setOutcomeCmd)
	rootCmd.AddCommand(listRunsCmd)

	newRunCmd.Flags().StringVar(&runProjectID, "project-id", "", "Project ID (required)")
	newRunCmd.Flags().StringVar(&runName, "name", "", "Run name (required)")
	newRunCmd.Flags().StringVar(&runOperator, "operator", "", "Operator name")
	_ = newRunCmd.MarkFlagRequired("project-id")
	_ = newRunCmd.MarkFlagRequired("name")

	closeRunCmd.Flags().StringVar(&runID, "run-id", "", "Run ID (required)")
	_ = closeRunCmd.MarkFlagRequired("run-id")

	setOutcomeCmd.Flags().StringVar(&runID, "run-id", "", "Run ID (required)")
	setOutcomeCmd.Flags().StringVar(&outcomeItem, "item-id", "", "Checklist item ID (required)")
	setOutcomeCmd.Flags().StringVar(&outcomeValue, "outcome", "", "PASS, FAIL or SKIP (required)")
	setOutcomeCmd.Flags().StringVar(&outcomeNote, "note", "", "Optional note")
	_ = setOutcomeCmd.MarkFlagRequired("run-id")
	_ = setOutcomeCmd.MarkFlagRequired("item-id")
	_ = setOutcomeCmd.MarkFlagRequired("outcome")

	listRunsCmd.Flags().StringVar(&runProjectID, "project-id", "", "Project ID (required)")
	_ = listRunsCmd.MarkFlagRequired("project-id")
}

func runNewRun(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := a.Runs.Create(context.Background(), run.CreateRequest{
		ProjectID: runProjectID,
		Name:      runName,
		Operator:  runOperator,
	})
	if err != nil {
		return err
	}

	fmt.Printf("OK run_id=%s\n", r.ID)
	return nil
}

func runCloseRun(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Runs.Close(context.Background(), runID); err != nil {
		return err
	}

	fmt.Println("OK run closed")
	return nil
}

func runSetOutcome(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Runs.SetOutcome(context.Background(), runID, outcomeItem, outcomeValue, outcomeNote)
	if err != nil {
		return err
	}

	fmt.Printf("OK %s recorded\n", res.Outcome)
	return nil
}

func runListRuns(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	runs, err := a.Runs.List(context.Background(), runProjectID)
	if err != nil {
		return err
	}

	for _, r := range runs {
		status := "open"
		if r.ClosedAt != nil {
			status = "closed"
		}
		fmt.Printf("%s  %s  operator=%s started=%s %s\n",
			r.ID, r.Name, r.Operator, r.StartedAt.Format(run.TimeLayout), status)
	}
	return nil
}
