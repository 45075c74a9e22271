// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/spf13/cobra"
)

func (c *CLI) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your account",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.services.UserService.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return c.printer().user(user)
		},
	}

	var name, email string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change your name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" && email == "" {
				return errNothingToUpdate
			}

			current, err := c.services.UserService.Profile(cmd.Context())
			if err != nil {
				return err
			}
			req := models.UpdateUserRequest{Name: current.Name, Email: current.Email}
			if name != "" {
				req.Name = name
			}
			if email != "" {
				req.Email = email
			}

			user, err := c.services.UserService.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.printer().user(user)
		},
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&email, "email", "", "new email")

	cmd.AddCommand(show, update)
	return cmd
}

func (c *CLI) changePasswordCommand() *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				req models.ChangePasswordRequest
				err error
			)
			if req.CurrentPassword, err = c.passwordFlag(current, "Current password: "); err != nil {
				return err
			}
			if req.NewPassword, err = c.passwordFlag(next, "New password: "); err != nil {
				return err
			}

			if err = c.services.UserService.ChangePassword(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password; prompted for when omitted")
	cmd.Flags().StringVar(&next, "new", "", "new password; prompted for when omitted")
	return cmd
}

func (c *CLI) taxpayersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "taxpayers",
		Short: "List all taxpayers (admin only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := c.services.UserService.ListTaxpayers(cmd.Context())
			if err != nil {
				return err
			}
			return c.printer().users(users)
		},
	}
}
