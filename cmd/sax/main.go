package main

import (
	"os"

	"github.com/go-sod/sax/internal/cli"
	"github.com/go-sod/sax/internal/shutdown"
)

func main() {
	ctx, done := shutdown.New()
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	done()
	os.Exit(code)
}
