package main

import (
	"os"

	"github.com/doingodswork/rttop/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
