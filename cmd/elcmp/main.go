// Command elcmp renders, serves and inspects elcmp component modules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pthm/elcmp/lib/config"
	"github.com/pthm/elcmp/lib/diag"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the state shared by all commands of one invocation.
type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
	restore func()
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "elcmp",
		Short: "Server-side HTML component engine",
		Long: `elcmp renders named components into HTML.

Components are Go source modules under the components directory. Each
module declares a Render function that builds markup with package el.
They are loaded on first use, or up front with autoload.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.teardown() },
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "config file (default: ./"+config.DefaultFile+" if present)")
	flags.StringP("dir", "d", "", "components directory")
	flags.String("log-level", "", "log level (debug, info, warning, error)")
	_ = c.v.BindPFlag("components_dir", flags.Lookup("dir"))
	_ = c.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		c.renderCmd(),
		c.serveCmd(),
		c.listCmd(),
		c.generateCmd(),
		versionCmd(),
	)
	return root
}

// setup loads configuration and installs the diagnostic logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = diag.New(cmd.ErrOrStderr(), lvl)
	c.restore = diag.Install(c.logger)
	return nil
}

func (c *cli) teardown() {
	_ = c.logger.Sync()
	if c.restore != nil {
		c.restore()
		c.restore = nil
	}
}
