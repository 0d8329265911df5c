package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/puppylab/miniagent/pkg/logger"
	"github.com/puppylab/miniagent/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("MINIAGENT")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.miniagent")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	viper.SetDefault("skills_dir", "./skills")
	viper.SetDefault("workspace_dir", defaultWorkspaceDir())
	viper.SetDefault("shell", "bash")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "fmt")
}

func defaultWorkspaceDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".miniagent-workspace"
	}
	return filepath.Join(home, ".miniagent-workspace")
}

var rootCmd = &cobra.Command{
	Use:   "miniagent",
	Short: "Skill registry and dispatcher for a command-driven assistant",
	Long: `miniagent loads human-authored SKILL.md capability descriptions into a
registry of machine-callable tools and dispatches structured calls to them.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning("invalid log level, using info")
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().String("skills-dir", "", "Directory containing skill definitions")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (fmt, json)")
	viper.BindPFlag("skills_dir", rootCmd.PersistentFlags().Lookup("skills-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(sessionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
