package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/structkit/structkit/internal/config"
)

const configFile = "structkit.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a structkit.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("%s already exists", configFile)
		}

		defaults := config.Default()
		answers := struct {
			Suffix  string
			Markers string
			Verbose bool
		}{}

		questions := []*survey.Question{
			{
				Name: "suffix",
				Prompt: &survey.Input{
					Message: "Generated file suffix:",
					Default: defaults.Suffix,
				},
				Validate: survey.Required,
			},
			{
				Name: "markers",
				Prompt: &survey.Input{
					Message: "Marker wrapper type names (comma separated):",
					Default: strings.Join(defaults.Markers, ","),
				},
			},
			{
				Name:   "verbose",
				Prompt: &survey.Confirm{Message: "Enable verbose logging by default?"},
			},
		}
		if err := survey.Ask(questions, &answers); err != nil {
			return err
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "suffix: %s\n", answers.Suffix)
		sb.WriteString("markers:\n")
		for _, m := range strings.Split(answers.Markers, ",") {
			if m = strings.TrimSpace(m); m != "" {
				fmt.Fprintf(&sb, "  - %s\n", m)
			}
		}
		fmt.Fprintf(&sb, "verbose: %t\n", answers.Verbose)

		if err := os.WriteFile(configFile, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configFile, err)
		}
		fmt.Printf("Created %s\n", configFile)
		return nil
	},
}
