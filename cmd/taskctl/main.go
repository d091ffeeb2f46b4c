package main

import (
	"fmt"
	"os"

	"github.com/yukikurage/task-tracker/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(cli.OpenDatabaseService).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
