package main

import (
	"os"

	"github.com/mvaneyck/posology/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
