package main

import (
	"os"

	"github.com/earlycareers/programme-survey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
