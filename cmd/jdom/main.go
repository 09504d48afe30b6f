package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/jdom-format/go-jdom/cmd/jdom/commands"
)

func main() {
	cli.MainContext(context.Background(), commands.Root())
}
