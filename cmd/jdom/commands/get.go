package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/tidwall/gjson"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/parse"
)

type getConfig struct {
	*cli.Command
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <path> [file] - Extract the value at a path").
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: usage: jdom get <path> [file]", cli.ErrUsage)
	}
	in, err := readInput(cc, argOr(args, 1, ""))
	if err != nil {
		return err
	}
	res := gjson.GetBytes(in, args[0])
	if !res.Exists() {
		return fmt.Errorf("no value at path %q", args[0])
	}
	node, err := parse.ParseString(res.Raw)
	if err != nil {
		return err
	}
	out, err := encode.Encode(node)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", out)
	return nil
}
