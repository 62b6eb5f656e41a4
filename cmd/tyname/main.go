package main

import (
	"fmt"
	"os"

	"github.com/teranos/tyname/cmd/tyname/commands"
	"github.com/teranos/tyname/errors"
	"github.com/teranos/tyname/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
