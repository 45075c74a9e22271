// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/service"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/spf13/cobra"
)

// ServicesFactory builds the client services once the command line has been
// parsed and the final configuration is known.
type ServicesFactory func(cfg config.ClientConfig) (*service.ClientServices, error)

// CLI holds the state shared by all commands of one invocation.
type CLI struct {
	cfg       config.ClientConfig
	factory   ServicesFactory
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	format string

	in     io.Reader
	lines  *bufio.Reader
	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

// Option customizes a [CLI].
type Option func(*CLI)

// WithIO replaces the standard streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(c *CLI) {
		c.in = in
		c.out = out
		c.errOut = errOut
	}
}

// New creates a CLI over cfg. The services are created by factory right
// before a command runs.
func New(cfg config.ClientConfig, factory ServicesFactory, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) *CLI {
	c := &CLI{
		cfg:       cfg,
		factory:   factory,
		buildInfo: buildInfo,
		format:    formatTable,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs the command named by args. The error, if any, has already
// been printed to the error stream.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		renderError(c.errOut, err)
	}
	return err
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "taxkeeper",
		Short:         "Command-line client of the go-tax-keeper server",
		Long:          "taxkeeper previews income tax, keeps tax profiles and records payments on a go-tax-keeper server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	flags := root.PersistentFlags()
	flags.StringP("address", "a", c.cfg.Adapter.HTTPAddress, "server base URL")
	flags.Duration("timeout", c.cfg.Adapter.RequestTimeout, "request timeout")
	flags.String("token-file", c.cfg.TokenFile, "file the login session is kept in")
	flags.StringVarP(&c.format, "output", "o", formatTable, "output format: table or json")

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.versionCommand(),
		c.profileCommand(),
		c.changePasswordCommand(),
		c.taxpayersCommand(),
		c.taxCommand(),
		c.payCommand(),
		c.paymentsCommand(),
	)
	return root
}

// setup applies the persistent flags on top of the loaded configuration and
// builds the services.
func (c *CLI) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if flags.Changed("address") {
		c.cfg.Adapter.HTTPAddress, _ = flags.GetString("address")
	}
	if flags.Changed("timeout") {
		c.cfg.Adapter.RequestTimeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("token-file") {
		c.cfg.TokenFile, _ = flags.GetString("token-file")
	}

	if c.format != formatTable && c.format != formatJSON {
		return fmt.Errorf("%w: %q", errUnknownFormat, c.format)
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	services, err := c.factory(c.cfg)
	if err != nil {
		return fmt.Errorf("create client services: %w", err)
	}
	c.services = services
	return nil
}

func (c *CLI) printer() printer {
	return printer{w: c.out, format: c.format}
}
