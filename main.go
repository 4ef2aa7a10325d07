package main

import (
	"os"

	"slc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
