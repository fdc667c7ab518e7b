package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gokatarajesh/fact-frenzy/internal/question"
)

func newValidateCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate every question and print a report; exits non-zero on FAIL",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadQuestions(*file)
			if err != nil {
				return err
			}
			result := question.ValidateDatabase(questions)
			fmt.Fprintln(cmd.OutOrStdout(), question.Report(result))
			if !result.Valid {
				return errValidationFailed
			}
			return nil
		},
	}
}

func newStatsCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print category and difficulty histograms",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadQuestions(*file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Questions: %d\n\n", len(questions))
			fmt.Fprintln(out, "Categories:")
			for _, c := range question.CategoryHistogram(questions) {
				fmt.Fprintf(out, "  %s: %d\n", c.Category, c.Count)
			}
			d := question.DifficultyHistogram(questions)
			fmt.Fprintln(out, "\nDifficulties:")
			fmt.Fprintf(out, "  easy: %d\n  medium: %d\n  hard: %d\n", d.Easy, d.Medium, d.Hard)
			return nil
		},
	}
}

func newBalanceCmd(file *string) *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Recommend how many questions each category and difficulty still needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if target <= 0 {
				return fmt.Errorf("--target must be positive, got %d", target)
			}
			questions, err := loadQuestions(*file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Category targets (total %d):\n", target)
			for _, r := range question.CategoryBalance(questions, target) {
				fmt.Fprintf(out, "  %s: %d/%d (need %d)\n", r.Category, r.Current, r.Recommended, r.Needed)
			}
			fmt.Fprintln(out, "\nDifficulty targets (current bank size):")
			for _, r := range question.DifficultyBalance(questions, question.DefaultDifficultyTargets()) {
				fmt.Fprintf(out, "  %s: %d/%d (need %d)\n", r.Difficulty, r.Current, r.Recommended, r.Needed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", question.DefaultCategoryTarget, "desired total bank size")
	return cmd
}

func newNextIDCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "next-id",
		Short: "Print the next free question ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := loadQuestions(*file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), question.NextID(questions))
			return nil
		},
	}
}
