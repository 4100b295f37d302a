package main

import (
	"os"

	"github.com/askelan/quizd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
