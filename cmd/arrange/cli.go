package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-arrange/internal/debug"
)

const (
	envPrefix     = "ARRANGE"
	defaultConfig = "arrange"

	formatTable = "table"
	formatJSON  = "json"
)

// cli holds state shared by all commands.
type cli struct {
	out    io.Writer
	logger *log.Logger
	v      *viper.Viper

	cfgFile string
	verbose bool

	// terminalSize reports the size of the controlling terminal.
	terminalSize func() (width, height int)
}

func newCLI(out, errOut io.Writer) *cli {
	return &cli{
		out:          out,
		logger:       newLogger(errOut, log.InfoLevel),
		v:            viper.New(),
		terminalSize: func() (int, int) { return terminalSize(int(os.Stdout.Fd())) },
	}
}

// rootCommand builds the command tree. Scene files given to the root command
// are arranged; "version" is the only subcommand.
func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "arrange [flags] scene.toml...",
		Short: "Arrange terminal UI scenes and print widget placements",
		Long: `arrange loads TOML scene files, docks and flows each container's children
for the scene's viewport and prints the resulting regions.

Defaults come from ./arrange.toml (or --config) and ARRANGE_* environment
variables. Set ARRANGE_DEBUG to a file path to log every layer arranged.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
			if err := c.initConfig(); err != nil {
				return err
			}
			if path := os.Getenv(debug.EnvVar); path != "" {
				if err := debug.Init(path); err != nil {
					c.logger.Warn("debug log disabled", "path", path, "err", err)
				}
			}
			cmd.SetContext(withLogger(cmd.Context(), c.logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args)
		},
	}

	root.PersistentFlags().StringVarP(&c.cfgFile, "config", "c", "", "config file (default is ./arrange.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	flags := root.Flags()
	flags.Int("width", 0, "viewport width (default: scene viewport, then terminal width)")
	flags.Int("height", 0, "viewport height (default: scene viewport, then terminal height)")
	flags.Int("depth", 1, "levels of nested containers to arrange; 0 means all")
	flags.StringP("format", "o", formatTable, "output format: table or json")
	for _, name := range []string{"width", "height", "depth", "format"} {
		// BindPFlag only fails for a nil flag.
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(c.versionCommand())
	return root
}

// initConfig reads the config file and environment.
func (c *cli) initConfig() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		c.v.AddConfigPath(".")
		c.v.SetConfigName(defaultConfig)
		c.v.SetConfigType("toml")
	}

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		c.logger.Debug("loaded config", "file", c.v.ConfigFileUsed())
	}

	switch format := c.v.GetString("format"); format {
	case formatTable, formatJSON:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "arrange version %s\n", version)
		},
	}
}
