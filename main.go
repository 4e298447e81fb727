package main

import (
	"os"

	"github.com/abhisek/sysdesign/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
