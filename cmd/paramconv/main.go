package main

import (
	"os"

	"github.com/viant/paramconv/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
