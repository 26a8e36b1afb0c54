package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	msgfilter "github.com/fardream/gitrim-msgfilter"
	"github.com/fardream/gitrim-msgfilter/cmd"
)

func main() {
	if err := newRootCmd(os.LookupEnv).Execute(); err != nil {
		os.Exit(1)
	}
}

type rootCmd struct {
	*cobra.Command

	commitEnv string
	logLevel  string

	lookupEnv func(string) (string, bool)
}

func newRootCmd(lookupEnv func(string) (string, bool)) *rootCmd {
	c := &rootCmd{
		Command: &cobra.Command{
			Use:   "gitrim-msgfilter",
			Short: "replace garbled commit messages, for git filter-branch --msg-filter",
			Long: `Reads a commit message from stdin and writes it to stdout.
If the commit named by $GIT_COMMIT has a known replacement, the replacement is written instead.

    git filter-branch --msg-filter gitrim-msgfilter -- --all`,
			Args:         cobra.NoArgs,
			SilenceUsage: true,
		},
		commitEnv: "GIT_COMMIT",
		logLevel:  "warn",
		lookupEnv: lookupEnv,
	}

	c.PersistentFlags().StringVar(&c.logLevel, "log-level", c.logLevel, "log level on stderr (debug, info, warn, error)")
	c.Flags().StringVar(&c.commitEnv, "commit-env", c.commitEnv, "environment variable holding the original commit id")

	c.PersistentPreRunE = func(*cobra.Command, []string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
			return err
		}
		msgfilter.SetLogLevel(level)
		return nil
	}

	c.Run = func(*cobra.Command, []string) {
		c.runFilter()
	}

	c.AddCommand(newListCmd().Command)

	return c
}

func (c *rootCmd) runFilter() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// unset is the same as empty, which matches nothing.
	commit, _ := c.lookupEnv(c.commitEnv)

	cmd.GetOrPanic(msgfilter.Filter(ctx, msgfilter.DefaultTable(), commit, c.InOrStdin(), c.OutOrStdout()))
}
