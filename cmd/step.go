package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/earlycareers/programme-survey/internal/navigator"
	"github.com/earlycareers/programme-survey/internal/survey"
)

var stepCmd = &cobra.Command{
	Use:   "step [file|-]",
	Short: "Print the next (or previous) question for an Answer Set JSON document",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()

		n := navigator.New(survey.NewCalendar(nil), logger)
		if err := step(n, argOrStdin(args), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			logger.Fatal("navigating answers", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(stepCmd)
}

func step(n *navigator.Navigator, path string, in io.Reader, out io.Writer) error {
	answers, err := readAnswers(path, in)
	if err != nil {
		return err
	}

	return writeJSON(out, n.Next(answers))
}
