package main

import (
	"os"

	"github.com/William-WYL/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
