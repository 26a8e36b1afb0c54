package main

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	msgfilter "github.com/fardream/gitrim-msgfilter"
	"github.com/fardream/gitrim-msgfilter/cmd"
)

type listCmd struct {
	*cobra.Command
}

func newListCmd() *listCmd {
	r := &listCmd{
		Command: &cobra.Command{
			Use:   "list",
			Short: "print the replacement table as yaml",
			Args:  cobra.NoArgs,
		},
	}

	r.Run = func(c *cobra.Command, _ []string) {
		out := cmd.GetOrPanic(yaml.Marshal(msgfilter.DefaultTable().Entries()))
		cmd.GetOrPanic(c.OutOrStdout().Write(out))
	}

	return r
}
