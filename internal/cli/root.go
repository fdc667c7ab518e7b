// Package cli implements the question bank maintenance tool.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/fact-frenzy/internal/question"
)

// errValidationFailed signals a FAIL report; the report itself is already printed.
var errValidationFailed = errors.New("question bank failed validation")

// Execute runs the CLI.
func Execute() error {
	return execute(newRootCmd())
}

// execute reports every failure on stderr except a FAIL report, which has
// already been printed.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errValidationFailed) {
		l := logger(cmd)
		l.Error().Err(err).Msg("questions command failed")
	}
	return err
}

func newRootCmd() *cobra.Command {
	file := os.Getenv("QUESTION_BANK_PATH")

	cmd := &cobra.Command{
		Use:           "questions",
		Short:         "Validate and inspect the Fact Frenzy question bank",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&file, "file", file, "path to a YAML question bank (default: embedded bank)")

	cmd.AddCommand(newValidateCmd(&file))
	cmd.AddCommand(newStatsCmd(&file))
	cmd.AddCommand(newBalanceCmd(&file))
	cmd.AddCommand(newNextIDCmd(&file))
	return cmd
}

func loadQuestions(path string) ([]question.Question, error) {
	questions, err := question.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	return questions, nil
}

func logger(cmd *cobra.Command) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).With().Timestamp().Logger()
}
