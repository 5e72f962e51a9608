// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdview renders Markdown documents and serves them for viewing.
//
// Usage:
//
//	mdview render [--json] [file]
//	mdview outline [--format json|yaml] [file]
//	mdview frontmatter [--format json|yaml] [file]
//	mdview serve [--addr addr] [--root dir]
//	mdview css [--style name]
//
// Commands that take a file read standard input when it is omitted.
// Settings come from mdview.yaml (or --config) and MDVIEW_* environment
// variables; the rendering flags override both.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rsc.io/mdview"
	"rsc.io/mdview/internal/config"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mdview:", err)
		os.Exit(1)
	}
}

// options are the flags shared by every command.
type options struct {
	configPath string
	escape     bool
	sanitize   bool
	highlight  bool
	yaml       bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:   "mdview",
		Short: "Render and view Markdown documents",
		Long: `mdview converts Markdown documents to HTML, lists their outlines and
front matter, and serves a directory of documents as navigable pages.

Examples:
  mdview render README.md
  mdview outline --format yaml README.md
  mdview serve --root ./docs --addr :8080`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default ./mdview.yaml or ~/.config/mdview/mdview.yaml)")
	f.BoolVar(&opts.escape, "escape", false, "escape HTML in document text")
	f.BoolVar(&opts.sanitize, "sanitize", false, "sanitize rendered HTML")
	f.BoolVar(&opts.highlight, "highlight", false, "syntax-highlight fenced code")
	f.BoolVar(&opts.yaml, "yaml-front-matter", false, "decode front matter as YAML, TOML, or JSON")

	root.AddCommand(
		newRenderCmd(opts),
		newOutlineCmd(opts),
		newFrontMatterCmd(opts),
		newServeCmd(opts),
		newCSSCmd(opts),
	)
	return root
}

// load returns the configuration with any rendering flags
// given on the command line applied.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("escape") {
		cfg.Render.EscapeHTML = o.escape
	}
	if f.Changed("sanitize") {
		cfg.Render.Sanitize = o.sanitize
	}
	if f.Changed("highlight") {
		cfg.Render.Highlight = o.highlight
	}
	if f.Changed("yaml-front-matter") {
		cfg.Render.YAMLFrontMatter = o.yaml
	}
	return cfg, nil
}

// parse reads the document named by args, or standard input,
// and parses it with the configured options.
func (o *options) parse(cmd *cobra.Command, args []string) (*mdview.Document, error) {
	cfg, err := o.load(cmd)
	if err != nil {
		return nil, err
	}
	var data []byte
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, errors.Wrap(err, "read document")
	}
	return cfg.Render.Parser().Parse(string(data))
}
