package main

import (
	"fmt"
	"os"

	"github.com/ledgewood/auditexpr/cmd"
	"github.com/ledgewood/auditexpr/pkg/logger"
)

func main() {
	err := cmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
