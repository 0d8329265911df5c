package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/puppylab/miniagent/pkg/presenter"
	"github.com/puppylab/miniagent/pkg/tools"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect and run skills",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered skills",
	Run: func(cmd *cobra.Command, _ []string) {
		registry, err := buildRegistry(cmd.Context())
		if err != nil {
			presenter.Error(err, "failed to load skills")
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPARAMETERS\tDESCRIPTION")
		for _, schema := range registry.ToolSchemas() {
			skill, _ := registry.Get(schema.Function.Name)
			params := make([]string, 0, len(skill.Params))
			for _, p := range skill.Params {
				params = append(params, p.Name)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", skill.Name, strings.Join(params, ","), skill.Description)
		}
		w.Flush()
	},
}

var skillSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the tool schemas as JSON",
	Long: `Print the full ordered tool schema list in the shape consumed by a
model-calling protocol.`,
	Run: func(cmd *cobra.Command, _ []string) {
		registry, err := buildRegistry(cmd.Context())
		if err != nil {
			presenter.Error(err, "failed to load skills")
			os.Exit(1)
		}

		data, err := json.MarshalIndent(registry.ToolSchemas(), "", "  ")
		if err != nil {
			presenter.Error(err, "failed to marshal tool schemas")
			os.Exit(1)
		}
		fmt.Println(string(data))
	},
}

var skillRunCmd = &cobra.Command{
	Use:   "run <skill-name>",
	Short: "Dispatch a single skill call",
	Long: `Dispatch a one-shot call to a named skill. Arguments are supplied as
repeated --arg name=value flags.

Examples:
  miniagent skill run greet --arg name=World
  miniagent skill run read_file --arg file_path=/etc/hostname
  miniagent skill run exec_command --arg command='ls -la'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rawArgs, _ := cmd.Flags().GetStringArray("arg")
		callArgs, err := parseCallArgs(rawArgs)
		if err != nil {
			presenter.Error(err, "invalid --arg flag")
			os.Exit(1)
		}

		registry, err := buildRegistry(cmd.Context())
		if err != nil {
			presenter.Error(err, "failed to load skills")
			os.Exit(1)
		}

		result := registry.Dispatch(cmd.Context(), tools.CallRequest{
			Name: args[0],
			Args: callArgs,
		})
		fmt.Println(result.String())
		if result.IsError() {
			os.Exit(1)
		}
	},
}

func buildRegistry(ctx context.Context) (*tools.Registry, error) {
	opts := []tools.Option{
		tools.WithShell(viper.GetString("shell"), "-c"),
	}
	if allow := viper.GetStringSlice("skills.allow_list"); len(allow) > 0 {
		opts = append(opts, tools.WithAllowList(allow...))
	}
	return tools.LoadRegistry(ctx, viper.GetString("skills_dir"), opts...)
}

func parseCallArgs(raw []string) (map[string]string, error) {
	callArgs := make(map[string]string, len(raw))
	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("expected name=value, got %q", pair)
		}
		callArgs[name] = value
	}
	return callArgs, nil
}

func init() {
	skillRunCmd.Flags().StringArray("arg", nil, "Skill argument as name=value (repeatable)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillSchemaCmd)
	skillCmd.AddCommand(skillRunCmd)
}
