package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/earlycareers/programme-survey/internal/survey"
)

var errNoInput = errors.New("no input data provided")

// readAnswers loads an Answer Set document from path, or from stdin when path
// is empty or "-".
func readAnswers(path string, stdin io.Reader) (survey.Answers, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return survey.Answers{}, fmt.Errorf("reading answers: %w", err)
	}

	return decodeAnswers(data)
}

func decodeAnswers(data []byte) (survey.Answers, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return survey.Answers{}, errNoInput
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return survey.Answers{}, fmt.Errorf("decoding answers: %w", err)
	}

	if len(payload) == 0 {
		return survey.Answers{}, errNoInput
	}

	return survey.ParseAnswers(payload), nil
}

func writeJSON(w io.Writer, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(pretty)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
