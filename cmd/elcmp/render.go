package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/lib/encoding"
)

type renderOptions struct {
	dataFile string
	page     bool
	document bool
}

func (c *cli) renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a component to stdout",
		Long: `Render a component with data read from a JSON, YAML or msgpack file.

With --page the component becomes the main part of the configured layout.
With --document the output is wrapped in a bare html document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(c.cfg, c.logger)
			if err != nil {
				return err
			}
			return runRender(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataFile, "data", "f", "", "context file (.json, .yaml, .yml or .msgpack)")
	cmd.Flags().BoolVar(&opts.page, "page", false, "render inside the configured page layout")
	cmd.Flags().BoolVar(&opts.document, "document", false, "wrap the output in an html document")
	cmd.MarkFlagsMutuallyExclusive("page", "document")

	return cmd
}

func runRender(cmd *cobra.Command, a *app, name string, opts renderOptions) error {
	data := elcmp.Context{}
	if opts.dataFile != "" {
		m, err := encoding.ReadFile(opts.dataFile)
		if err != nil {
			return fmt.Errorf("reading context: %w", err)
		}
		data = elcmp.Context(m)
	}

	ctx := cmd.Context()
	if opts.page {
		if !a.registry.Has(name) && a.loader.Resolve(name) == nil {
			return fmt.Errorf("component %q not found", name)
		}
		_, err := io.WriteString(cmd.OutOrStdout(), a.engine.RenderPage(ctx, a.page(name), data)+"\n")
		return err
	}

	res := a.engine.Render(ctx, name, data)
	if res.IsEmpty() {
		return fmt.Errorf("component %q not found", name)
	}

	out := res.String()
	if opts.document {
		out = elcmp.Document(elcmp.Context{"content": out})
	}
	_, err := io.WriteString(cmd.OutOrStdout(), out+"\n")
	return err
}
