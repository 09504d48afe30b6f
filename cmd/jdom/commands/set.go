package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/tidwall/sjson"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/parse"
)

type setConfig struct {
	*cli.Command
}

// SetCommand returns the set subcommand.
func SetCommand() *cli.Command {
	cfg := &setConfig{}
	return cli.NewCommandAt(&cfg.Command, "set").
		WithSynopsis("set <path> <value> [file] - Set a raw JSON value at a path").
		WithRun(cfg.run)
}

func (cfg *setConfig) run(cc *cli.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: jdom set <path> <value> [file]", cli.ErrUsage)
	}
	path, value := args[0], args[1]

	// The value must itself be a JSON document.
	vNode, err := parse.ParseString(value)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	ir.Delete(vNode)

	in, err := readInput(cc, argOr(args, 2, ""))
	if err != nil {
		return err
	}
	out, err := sjson.SetRawBytes(in, path, []byte(value))
	if err != nil {
		return err
	}
	node, err := parse.Parse(out)
	if err != nil {
		return err
	}
	text, err := encode.Encode(node)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", text)
	return nil
}
