/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/josephgoksu/roadmapper/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roadmapper [topic]",
	Short: "Roadmapper - AI learning roadmaps in your terminal",
	Long: `Roadmapper turns a topic into a structured learning roadmap: three leveled
modules with subtopics, free resources, hands-on tasks, quizzes and projects,
a final assessment and career guidance.

Run without arguments to open the interactive viewer, or pass a topic to
generate one right away.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(strings.Join(args, " "))
		if !ui.IsInteractive() {
			if topic == "" {
				return cmd.Help()
			}
			return fmt.Errorf("interactive mode needs a terminal; use 'roadmapper generate %s' instead", topic)
		}
		return runTUI(cmd.Context(), topic)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.roadmapper.yaml or $HOME/.roadmapper.yaml)")
	pf.String("provider", "", "LLM provider: gemini, openai, anthropic, ollama")
	pf.String("model", "", "model ID (defaults to the provider's default)")
	pf.Bool("strict", false, "reject responses that break the roadmap schema conventions")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("llm.provider", pf.Lookup("provider"))
	_ = viper.BindPFlag("llm.model", pf.Lookup("model"))
	_ = viper.BindPFlag("roadmap.strict", pf.Lookup("strict"))
	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
}
