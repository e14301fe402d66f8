// Program xmltree re-serializes XML documents, dropping namespace
// declarations that repeat what an ancestor already declared.
package main

import (
	"fmt"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/kr/pretty"

	"github.com/hexwood/xmltree"
)

var formatArgs struct {
	Out         string `flag:"o,Write the document to this file instead of stdout"`
	Encoding    string `flag:"encoding,IANA name of the output charset (default UTF-8)"`
	Declaration bool   `flag:"declaration,Prepend an XML declaration"`
}

func main() {
	root := &command.C{
		Name:  "xmltree",
		Usage: "command args...",
		Commands: []*command.C{
			{
				Name:  "format",
				Usage: "format <file>",
				Help: `Re-serialize an XML document.

The document is parsed into an element tree and written back out with
redundant namespace declarations removed. The effective namespace of
every element and attribute is preserved.`,
				SetFlags: command.Flags(flax.MustBind, &formatArgs),
				Run:      command.Adapt(runFormat),
			},
			{
				Name:  "dump",
				Usage: "dump <file>",
				Help:  "Parse an XML document and print its element tree.",
				Run:   command.Adapt(runDump),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	command.RunOrFail(root.NewEnv(nil), os.Args[1:])
}

func parseFile(path string) (*xmltree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := xmltree.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return root, nil
}

func runFormat(env *command.Env, path string) error {
	root, err := parseFile(path)
	if err != nil {
		return err
	}
	opts := xmltree.DocumentOptions{
		Encoding:    formatArgs.Encoding,
		Declaration: formatArgs.Declaration,
	}
	if formatArgs.Out != "" {
		return xmltree.WriteDocumentFile(root, formatArgs.Out, opts)
	}
	if err := xmltree.WriteDocument(root, os.Stdout, opts); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func runDump(env *command.Env, path string) error {
	root, err := parseFile(path)
	if err != nil {
		return err
	}
	_, err = pretty.Println(root)
	return err
}
