package main

import (
	"os"

	"github.com/idilsaglam/todos/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
