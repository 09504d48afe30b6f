package commands

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jdom-format/go-jdom/libdiff"
	"github.com/jdom-format/go-jdom/parse"
)

type diffConfig struct {
	*cli.Command
}

// DiffCommand returns the diff subcommand.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <fileA> <fileB> - Show differences between documents").
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: usage: jdom diff <fileA> <fileB>", cli.ErrUsage)
	}
	da, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	db, err := readInput(cc, args[1])
	if err != nil {
		return err
	}
	na, err := parse.Parse(da)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	nb, err := parse.Parse(db)
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	if libdiff.Equal(na, nb) {
		return nil
	}
	text, err := libdiff.Text(na, nb)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, text)
	return nil
}
