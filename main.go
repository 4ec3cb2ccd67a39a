package main

import (
	"os"

	"github.com/filumlabs/painpoint-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
