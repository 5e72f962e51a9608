// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"rsc.io/mdview/internal/logging"
	"rsc.io/mdview/internal/server"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr, root string
	var noWatch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if root != "" {
				cfg.Server.Root = root
			}
			if noWatch {
				cfg.Server.Watch = false
				cfg.Server.LiveReload = false
			}
			log, err := logging.New(cfg.Log, os.Stderr)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			s, err := server.New(cfg, log, reg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Run(ctx)
		},
	}
	f := cmd.Flags()
	f.StringVar(&addr, "addr", "", "listen address (overrides config)")
	f.StringVar(&root, "root", "", "document root (overrides config)")
	f.BoolVar(&noWatch, "no-watch", false, "disable file watching and live reload")
	return cmd
}
