package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/eligibility"
	"github.com/earlycareers/programme-survey/internal/survey"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file|-]",
	Short: "Print the recommendation for an Answer Set JSON document",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()

		c := eligibility.New(survey.NewCalendar(nil), logger)
		if err := classify(c, argOrStdin(args), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			logger.Fatal("classifying answers", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func classify(c *eligibility.Classifier, path string, in io.Reader, out io.Writer) error {
	answers, err := readAnswers(path, in)
	if err != nil {
		return err
	}

	return writeJSON(out, c.Classify(answers))
}
