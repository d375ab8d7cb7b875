// Package commands implements the CLI commands for vulcan.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/vulcan/internal/app"
	"go.trai.ch/vulcan/internal/build"
	"go.trai.ch/vulcan/internal/core/ports"
)

// EnvPrefix prefixes the environment variables that mirror command line flags,
// e.g. VULCAN_PYTHON for --python.
const EnvPrefix = "VULCAN"

// CLI represents the command line interface for vulcan.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
	v       *viper.Viper
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "vulcan",
		Short:         "Resolve and pin Python project dependencies into a lockfile",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().String("python", "", "Python version to lock with, e.g. 3.11 (env VULCAN_PYTHON)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON (env VULCAN_JSON_LOGS)")
	for _, name := range []string{"dir", "python", "json-logs"} {
		_ = v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
		v:       v,
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.configureLogging()
	}

	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) configureLogging() {
	if !c.v.GetBool("json-logs") {
		return
	}
	if switcher, ok := c.logger.(interface{ SetJSON(enable bool) }); ok {
		switcher.SetJSON(true)
	}
}
