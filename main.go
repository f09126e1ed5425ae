package main

import (
	"os"

	"github.com/xlc-dev/chromatic/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
