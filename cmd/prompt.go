/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/roadmapper/internal/config"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"github.com/spf13/cobra"
)

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt <topic>",
	Short: "Print the prompt that would be sent for a topic",
	Long: `Print the exact prompt roadmapper would send to the provider for a topic.
Honors roadmap.promptTemplate. No provider call is made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(strings.Join(args, " "))
		if topic == "" {
			return roadmap.ErrEmptyTopic
		}

		settings, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		p, err := roadmap.LoadPrompt(appFs, settings.Roadmap.PromptTemplate)
		if err != nil {
			return err
		}
		text, err := p.Build(topic)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
