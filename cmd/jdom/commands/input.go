package commands

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// readInput returns the content of path, or all of stdin when path is
// empty or "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(path)
}

func argOr(args []string, i int, def string) string {
	if i < len(args) {
		return args[i]
	}
	return def
}
