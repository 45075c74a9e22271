// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/spf13/cobra"
)

func (c *CLI) taxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Preview tax and manage tax profiles",
	}
	cmd.AddCommand(
		c.taxPreviewCommand(),
		c.taxCreateCommand(),
		c.taxGetCommand(),
		c.taxListCommand(),
		c.taxCurrentCommand(),
	)
	return cmd
}

func (c *CLI) taxPreviewCommand() *cobra.Command {
	var income, fiscalYear string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Compute the tax on an income without saving anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := parseAmount("income", income)
			if err != nil {
				return err
			}

			computation, err := c.services.TaxService.Preview(cmd.Context(), models.TaxPreviewRequest{
				Income:     amount,
				FiscalYear: fiscalYear,
			})
			if err != nil {
				return err
			}
			return c.printer().computation(computation)
		},
	}
	cmd.Flags().StringVar(&income, "income", "", "annual income")
	cmd.Flags().StringVar(&fiscalYear, "fiscal-year", "", "fiscal year, "+models.DefaultFiscalYear+" when omitted")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func (c *CLI) taxCreateCommand() *cobra.Command {
	var (
		income string
		req    models.CreateTaxProfileRequest
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the tax profile for a fiscal year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Income, err = parseAmount("income", income); err != nil {
				return err
			}

			profile, err := c.services.TaxService.CreateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.printer().profile(profile)
		},
	}
	cmd.Flags().StringVar(&income, "income", "", "annual income")
	cmd.Flags().StringVar(&req.FiscalYear, "fiscal-year", "", "fiscal year, "+models.DefaultFiscalYear+" when omitted")
	cmd.Flags().Int64Var(&req.UserID, "user", 0, "owner of the profile (admin only), you when omitted")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func (c *CLI) taxGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROFILE_ID",
		Short: "Show a tax profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			profile, err := c.services.TaxService.GetProfile(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printer().profile(profile)
		},
	}
}

func (c *CLI) taxListCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tax profiles, newest fiscal year first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := c.services.TaxService.ListProfiles(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return c.printer().profiles(profiles)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "whose profiles to list (admin only), yours when omitted")
	return cmd
}

func (c *CLI) taxCurrentCommand() *cobra.Command {
	var (
		userID     int64
		fiscalYear string
	)

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the tax profile of a fiscal year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := c.services.TaxService.CurrentProfile(cmd.Context(), userID, fiscalYear)
			if err != nil {
				return err
			}
			return c.printer().profile(profile)
		},
	}
	cmd.Flags().StringVar(&fiscalYear, "fiscal-year", "", "fiscal year, "+models.DefaultFiscalYear+" when omitted")
	cmd.Flags().Int64Var(&userID, "user", 0, "whose profile to show (admin only), yours when omitted")
	return cmd
}
