package main

import (
	"os"

	"github.com/he2plus/he2plus-lib-sub001/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
