package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/parse"
	"github.com/jdom-format/go-jdom/patch"
)

type patchConfig struct {
	*cli.Command
	Merge bool `cli:"name=merge aliases=m desc='treat the patch as an RFC 7386 merge patch'"`
}

// PatchCommand returns the patch subcommand.
func PatchCommand() *cli.Command {
	cfg := &patchConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "patch").
		WithSynopsis("patch [--merge] <file> <patchfile> - Apply a patch").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *patchConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: jdom patch [--merge] <file> <patchfile>", cli.ErrUsage)
	}
	in, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	patchText, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	doc, err := parse.Parse(in)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	patched := doc
	if cfg.Merge {
		patched, err = patch.ApplyMerge(doc, patchText)
	} else {
		patched, err = patch.Apply(doc, patchText)
	}
	if err != nil {
		return err
	}
	out, err := encode.Encode(patched)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", out)
	return nil
}
