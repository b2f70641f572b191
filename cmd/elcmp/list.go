package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/elcmp/el"
)

func (c *cli) listCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the components that load from the components directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(c.cfg, c.logger)
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), a, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include the component type")
	return cmd
}

func runList(w io.Writer, a *app, verbose bool) error {
	lines, _ := el.Iterate(a.registry, func(value, key any, _ int) any {
		if verbose {
			return fmt.Sprintf("%s\t%T", key, value)
		}
		return fmt.Sprint(key)
	}).([]any)

	if len(lines) == 0 {
		a.logger.Warn(fmt.Sprintf("no components found in %q", a.cfg.ComponentsDir))
		return nil
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.(string))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
