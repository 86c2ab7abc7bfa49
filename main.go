package main

import (
	"fmt"
	"os"

	"songmanager/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "songs: %v\n", err)
		os.Exit(1)
	}
}
