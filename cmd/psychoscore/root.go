package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mind-engage/mindengage-psychotest/internal/logging"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
)

func newRootCmd() *cobra.Command {
	var (
		compact  bool
		strict   bool
		logLevel string
	)
	root := &cobra.Command{
		Use:           "psychoscore",
		Short:         "Score psychometric answer sheets offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&compact, "compact", false, "print single-line JSON")
	root.PersistentFlags().BoolVar(&strict, "strict", false, "exit non-zero when the sheet cannot be fully scored")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	for _, inst := range []psychotest.Instrument{psychotest.InstrumentDISC, psychotest.InstrumentPAPI} {
		root.AddCommand(&cobra.Command{
			Use:   string(inst) + " [file]",
			Short: fmt.Sprintf("Score a %s answer list (stdin when file is omitted)", inst),
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := readInput(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				logger := zap.NewNop()
				if cmd.Flags().Changed("log-level") {
					if logger, err = logging.New(logLevel, ""); err != nil {
						return err
					}
					defer logger.Sync()
				}
				res, err := psychotest.NewDefaultScorer(psychotest.WithLogger(logger)).
					Score(cmd.Context(), inst, raw)
				if err != nil {
					return err
				}
				if err := writeResult(cmd.OutOrStdout(), res, compact); err != nil {
					return err
				}
				if strict && !res.Complete {
					return fmt.Errorf("%s sheet incomplete: %d answers, %d skipped", inst, res.Answers, res.Skipped)
				}
				return nil
			},
		})
	}
	return root
}

func readInput(stdin io.Reader, args []string) (json.RawMessage, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return b, nil
}

func writeResult(w io.Writer, res psychotest.Result, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
