package main

import (
	"os"

	"github.com/hasbyte1/go-declarative-utils/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
