package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jevan001/Turbomate-Ai/chat"
	"github.com/jevan001/Turbomate-Ai/transcript"
	"github.com/spf13/cobra"
)

var replayFormat string

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay a scripted conversation without a terminal UI",
	Long: `Replay reads a script (from a file, or stdin when no file is given) and
prints the resulting conversation and history.

Each line is a message to send, or one of:
  /detailed on|off   set the reply length
  /wait DURATION     let time pass (e.g. 800ms, 2s)
  /new               start a new chat
  /select N          select the N-th history entry, newest first
Lines starting with # are comments. Pending replies are delivered at the end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayFormat != "text" && replayFormat != "yaml" {
			return fmt.Errorf("unknown format %q (want text or yaml)", replayFormat)
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		logger, cleanup := newLogger(cmd.ErrOrStderr())
		defer func() { _ = cleanup() }()

		steps, err := transcript.Parse(in)
		if err != nil {
			return err
		}

		res, err := transcript.NewReplayer(logger, chat.WithDetailed(cfg.Detailed)).Run(steps)
		if err != nil {
			return err
		}
		logger.Debug("replay finished", "steps", len(steps), "elapsed", res.Elapsed)

		out := cmd.OutOrStdout()
		if replayFormat == "yaml" {
			return transcript.WriteYAML(out, res)
		}
		return transcript.WriteText(out, res)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "turbomate "+Version)
	},
}

func init() {
	replayCmd.Flags().StringVarP(&replayFormat, "format", "f", "text", "output format: text or yaml")
}
