package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
)

func newTemplatesCmd() *cobra.Command {
	var (
		category  string
		language  string
		framework string
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			var filter *catalog.Filter
			if category != "" || language != "" || framework != "" {
				filter = &catalog.Filter{
					Category:  category,
					Language:  language,
					Framework: framework,
				}
			}

			templates := cat.List(filter)
			if len(templates) == 0 {
				fmt.Println("No templates match the given filters.")
				return nil
			}

			for _, tpl := range templates {
				fmt.Printf("%-12s %-10s %s\n", tpl.Name, tpl.Category, tpl.Description)
				if len(tpl.Languages) > 0 {
					fmt.Printf("%-12s   languages: %s\n", "", strings.Join(tpl.Languages, ", "))
				}
				if len(tpl.Frameworks) > 0 {
					fmt.Printf("%-12s   frameworks: %s\n", "", strings.Join(tpl.Frameworks, ", "))
				}
			}

			fmt.Printf("\nCategories: %s\n", strings.Join(cat.Categories(), ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&language, "language", "", "filter by language")
	cmd.Flags().StringVar(&framework, "framework", "", "filter by framework")

	return cmd
}
