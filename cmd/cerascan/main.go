package main

import (
	"os"

	"github.com/dshills/cerascan/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
