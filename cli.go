package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ahzammaqsood/portfolio/internal/projects"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Inspect the project catalog",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")
		return writeProjectList(cmd.OutOrStdout(), catalog.Filter(category))
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a project's detail view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		rec, err := catalog.Get(args[0])
		if errors.Is(err, projects.ErrNotFound) {
			return fmt.Errorf("project not found: %s", args[0])
		}
		if err != nil {
			return err
		}
		return writeProjectView(cmd.OutOrStdout(), projects.Render(rec))
	},
}

func init() {
	projectsListCmd.Flags().String("category", projects.FilterAll, "only list projects in this category")
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
}

func writeProjectList(w io.Writer, recs []projects.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE")
	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.ID, rec.Category, rec.Title)
	}
	return tw.Flush()
}

func writeProjectView(w io.Writer, v projects.View) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", v.Title, strings.Repeat("=", len(v.Title)))
	fmt.Fprintf(&b, "Duration: %s\nRole: %s\n\n", v.Duration, v.Role)
	for _, section := range []struct{ heading, text string }{
		{"Project Overview", v.Description},
		{"Challenge", v.Challenge},
		{"Solution", v.Solution},
	} {
		fmt.Fprintf(&b, "%s\n%s\n\n", section.heading, section.text)
	}
	b.WriteString("Results\n")
	for _, r := range v.Results {
		fmt.Fprintf(&b, "  ✓ %s\n", r)
	}
	fmt.Fprintf(&b, "\nTechnologies Used\n  %s\n", strings.Join(v.Technologies, ", "))

	_, err := io.WriteString(w, b.String())
	return err
}
