package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lbruni/collaudo/internal/domain/project"
)

var newProjectCmd = &cobra.Command{
	Use:   "new-project",
	Short: "Create a project",
	RunE:  runNewProject,
}

var listProjectsCmd = &cobra.Command{
	Use:   "list-projects",
	Short: "List projects with checklist and run counts",
	RunE:  runListProjects,
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete-project",
	Short: "Delete a project and everything it owns",
	RunE:  runDeleteProject,
}

var (
	projectName   string
	projectClient string
	projectSite   string
	projectNotes  string
	projectID     string
)

func init() {
	rootCmd.AddCommand(newProjectCmd)
	rootCmd.AddCommand(listProjectsCmd)
	rootCmd.AddCommand(deleteProjectCmd)

	newProjectCmd.Flags().StringVar(&projectName, "name", "", "Project name (required)")
	newProjectCmd.Flags().StringVar(&projectClient, "client", "", "Client name")
	newProjectCmd.Flags().StringVar(&projectSite, "site", "", "Site or installation")
	newProjectCmd.Flags().StringVar(&projectNotes, "notes", "", "Free-text notes")
	_ = newProjectCmd.MarkFlagRequired("name")

	deleteProjectCmd.Flags().StringVar(&projectID, "project-id", "", "Project ID (required)")
	_ = deleteProjectCmd.MarkFlagRequired("project-id")
}

func runNewProject(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	proj, err := a.Projects.Create(context.Background(), project.CreateRequest{
		Name:   projectName,
		Client: projectClient,
		Site:   projectSite,
		Notes:  projectNotes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("OK project_id=%s\n", proj.ID)
	return nil
}

func runListProjects(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	summaries, err := a.Projects.List(context.Background())
	if err != nil {
		return err
	}

	for _, s := range summaries {
		fmt.Printf("%s  %s  (client=%s site=%s items=%d runs=%d)\n",
			s.ID, s.Name, s.Client, s.Site, s.ItemCount, s.RunCount)
	}
	return nil
}

func runDeleteProject(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Projects.Delete(context.Background(), projectID); err != nil {
		return err
	}

	fmt.Println("OK project deleted")
	return nil
}
