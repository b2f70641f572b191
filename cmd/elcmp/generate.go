package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/elcmp/lib/generator"
)

func (c *cli) generateCmd() *cobra.Command {
	var (
		opts  generator.Options
		clean bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate element shorthand functions",
		Long: `Generate one exported function per element tag.

The output file's directory is scanned so generated names never collide
with existing declarations. Run from package el via go generate.`,
		Example: `  elcmp generate --output tags_gen.go
  elcmp generate --output widgets/tags_gen.go --tags card,badge --package widgets
  elcmp generate --output tags_gen.go --clean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Log = cmd.OutOrStdout()
			g := generator.New(opts)
			if clean {
				return g.Clean()
			}
			return g.Generate()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "tags_gen.go", "file to write")
	flags.StringVar(&opts.Package, "package", "", "package clause (default: package of the output directory)")
	flags.StringSliceVar(&opts.Tags, "tags", nil, "tags to generate (default: the built-in catalogue)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "show what would be written without writing files")
	flags.BoolVar(&clean, "clean", false, "remove the generated file")
	return cmd
}
