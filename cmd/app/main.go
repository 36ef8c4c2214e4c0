package main

import (
	"os"

	"github.com/marcelpiva/myfit-api-sub002/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
