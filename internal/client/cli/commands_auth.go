// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/spf13/cobra"
)

func (c *CLI) registerCommand() *cobra.Command {
	var (
		req      models.RegisterRequest
		role     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Password, err = c.passwordFlag(password, "Enter password: "); err != nil {
				return err
			}
			req.Role = models.Role(role)

			user, err := c.services.AuthService.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.errOut, "Registered and logged in as %s\n", user.Email)
			return c.printer().user(user)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email used to log in")
	cmd.Flags().StringVar(&role, "role", "", "taxpayer (default) or admin")
	cmd.Flags().StringVar(&password, "password", "", "password; prompted for when omitted")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *CLI) loginCommand() *cobra.Command {
	var (
		req      models.LoginRequest
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Password, err = c.passwordFlag(password, "Enter password: "); err != nil {
				return err
			}

			user, err := c.services.AuthService.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password; prompted for when omitted")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Logged out")
			return nil
		},
	}
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.services.AuthService.Session(cmd.Context())
			if err != nil {
				return err
			}

			session.Token = ""
			return c.printer().print(session, func(w io.Writer) {
				fmt.Fprintf(w, "User\t#%d %s\n", session.UserID, session.Email)
				fmt.Fprintf(w, "Role\t%s\n", session.Role)
				fmt.Fprintf(w, "Server\t%s\n", session.Server)
				fmt.Fprintf(w, "Since\t%s\n", date(session.SavedAt))
			})
		},
	}
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := c.services.AuthService.ServerVersion(cmd.Context())
			if err != nil {
				c.logger.Debug().Err(err).Str("func", "versionCommand").Msg("server version is unavailable")
				server = "unavailable"
			}

			info := struct {
				Client string `json:"client"`
				Date   string `json:"build_date"`
				Commit string `json:"build_commit"`
				Server string `json:"server"`
			}{c.buildInfo.BuildVersion(), c.buildInfo.BuildDate(), c.buildInfo.BuildCommit(), server}

			return c.printer().print(info, func(w io.Writer) {
				fmt.Fprintf(w, "Client\t%s\n", info.Client)
				fmt.Fprintf(w, "Build date\t%s\n", info.Date)
				fmt.Fprintf(w, "Build commit\t%s\n", info.Commit)
				fmt.Fprintf(w, "Server\t%s\n", info.Server)
			})
		},
	}
}
