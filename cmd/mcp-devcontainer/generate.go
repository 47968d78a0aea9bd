package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Siddhant-K-code/mcp-devcontainer/internal/catalog"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/devcontainer"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/engine"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/history"
	"github.com/Siddhant-K-code/mcp-devcontainer/internal/workspace"
)

func newGenerateCmd() *cobra.Command {
	var (
		workspaceFolder string
		templateName    string
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "generate [description...]",
		Short: "Generate a devcontainer.json from a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			cat := catalog.Default()

			features := engine.Extract(prompt)

			var (
				tpl *catalog.Template
				err error
			)
			if templateName != "" {
				var ok bool
				tpl, ok = cat.Get(templateName)
				if !ok {
					return fmt.Errorf("%w: %s", engine.ErrTemplateNotFound, templateName)
				}
			} else {
				tpl, err = engine.FindBestMatch(cat, features.Languages, features.Frameworks)
				if err != nil {
					return err
				}
			}

			doc := engine.Build(tpl, features)
			reasoning := engine.Explain(features, tpl)

			if dryRun {
				return printDocument(doc, reasoning)
			}

			path, err := workspace.NewManager().Save(workspaceFolder, doc)
			if err != nil {
				return err
			}

			recordHistory(workspaceFolder, history.ActionGenerate, tpl.Name, reasoning)

			fmt.Printf("Wrote %s\n\n%s\n", path, reasoning)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceFolder, "workspace", "w", ".", "workspace root")
	cmd.Flags().StringVarP(&templateName, "template", "t", "", "force a specific base template")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the result instead of writing it")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	var (
		workspaceFolder string
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "update [change request...]",
		Short: "Patch an existing devcontainer.json from a change request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			workspaces := workspace.NewManager()

			existing, _, err := workspaces.Load(workspaceFolder)
			if err != nil {
				return err
			}

			features := engine.Extract(prompt)

			updated, err := engine.Modify(existing, features)
			if err != nil {
				return err
			}

			reasoning := engine.Explain(features, nil)

			if dryRun {
				return printDocument(updated, reasoning)
			}

			path, err := workspaces.Save(workspaceFolder, updated)
			if err != nil {
				return err
			}

			recordHistory(workspaceFolder, history.ActionUpdate, "", reasoning)

			fmt.Printf("Wrote %s\n\n%s\n", path, reasoning)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceFolder, "workspace", "w", ".", "workspace root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the result instead of writing it")

	return cmd
}

func printDocument(doc *devcontainer.Document, reasoning string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s\n\n%s\n", data, reasoning)
	return nil
}

// recordHistory is best-effort: a broken history database never fails the
// command that produced a valid configuration.
func recordHistory(workspaceFolder, action, template, reasoning string) {
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return
	}
	defer store.Close()

	store.Append(workspaceFolder, action, template, reasoning)
}
