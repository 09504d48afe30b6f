package commands

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/parse"
)

type fmtConfig struct {
	*cli.Command
	Plain bool `cli:"name=plain desc='never colorize, even on a terminal'"`
	YAML  bool `cli:"name=yaml desc='re-render the document as YAML'"`
}

// FmtCommand returns the fmt subcommand.
func FmtCommand() *cli.Command {
	cfg := &fmtConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "fmt").
		WithSynopsis("fmt [--plain] [--yaml] [file] - Parse and re-encode").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *fmtConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := readInput(cc, argOr(args, 0, ""))
	if err != nil {
		return err
	}
	node, err := parse.Parse(in)
	if err != nil {
		return err
	}

	if cfg.YAML {
		out, err := toYAML(node)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(out)
		return err
	}

	if !cfg.Plain && stdoutIsTerminal(cc) {
		s, err := encode.NewColors().Sprint(node)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, s)
		return nil
	}

	out, err := encode.Encode(node)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", out)
	return nil
}

func stdoutIsTerminal(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
