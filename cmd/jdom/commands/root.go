package commands

import "github.com/scott-cotton/cli"

const usageText = `jdom - JSON document tool

Usage:
  jdom fmt [file]                        Parse and re-encode compactly
  jdom fmt --yaml [file]                 Re-render as YAML
  jdom get <path> [file]                 Extract the value at a path
  jdom set <path> <value> [file]         Set a raw JSON value at a path
  jdom diff <fileA> <fileB>              Show differences between documents
  jdom patch <file> <patchfile>          Apply an RFC 6902 patch
  jdom patch --merge <file> <patchfile>  Apply an RFC 7386 merge patch

Files default to stdin when omitted.

Examples:
  jdom fmt config.json
  curl -s https://api.example.com/items | jdom get items.0.name
  jdom set user.age 31 profile.json
  jdom diff before.json after.json
  jdom patch doc.json ops.json`

// Root returns the root command for jdom.
func Root() *cli.Command {
	return cli.NewCommand("jdom").
		WithSynopsis("jdom - JSON document tool").
		WithDescription(usageText).
		WithSubs(
			FmtCommand(),
			GetCommand(),
			SetCommand(),
			DiffCommand(),
			PatchCommand(),
		)
}
