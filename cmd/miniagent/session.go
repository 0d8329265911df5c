package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/puppylab/miniagent/pkg/presenter"
	"github.com/puppylab/miniagent/pkg/sessions"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect workspace sessions",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions in the workspace",
	Run: func(_ *cobra.Command, _ []string) {
		store, err := sessions.NewStore(viper.GetString("workspace_dir"))
		if err != nil {
			presenter.Error(err, "failed to open workspace")
			os.Exit(1)
		}

		infos, err := store.List()
		if err != nil {
			presenter.Error(err, "failed to list sessions")
			os.Exit(1)
		}
		if len(infos) == 0 {
			presenter.Info("no sessions found")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SESSION\tSTATUS\tSTEPS\tFAILURES\tLAST ACTIVE")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
				info.ID, info.Meta.Status, info.Meta.Steps, info.Meta.Failures,
				info.Meta.LastActive.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
	},
}

func init() {
	sessionCmd.AddCommand(sessionListCmd)
}
