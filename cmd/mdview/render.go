// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rsc.io/mdview"
)

func newRenderCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document body to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), doc)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), doc.HTML)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print front matter, HTML, outline, and regions as JSON")
	return cmd
}

func newOutlineCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "List the headings of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}
			list := doc.Outline
			if list == nil {
				list = []mdview.OutlineEntry{}
			}
			return write(cmd.OutOrStdout(), format, list)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}

func newFrontMatterCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "frontmatter [file]",
		Short: "Print the front matter of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.parse(cmd, args)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), format, doc.FrontMatter)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}

func newCSSCmd(opts *options) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the stylesheet for highlighted code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("style") {
				cfg, err := opts.load(cmd)
				if err != nil {
					return err
				}
				style = cfg.Render.HighlightStyle
			}
			return mdview.WriteHighlightCSS(cmd.OutOrStdout(), style)
		},
	}
	cmd.Flags().StringVar(&style, "style", "github", "chroma style name")
	return cmd
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		return writeJSON(w, v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	}
	return errors.Errorf("unknown format %q (must be json or yaml)", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return errors.Wrap(enc.Encode(v), "encode json")
}
