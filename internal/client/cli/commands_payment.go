// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/spf13/cobra"
)

const defaultPaymentMethod = "online_payment"

func (c *CLI) payCommand() *cobra.Command {
	var (
		amount        string
		transactionID string
		req           models.PaymentRequest
	)

	cmd := &cobra.Command{
		Use:   "pay PROFILE_ID",
		Short: "Pay towards a tax profile",
		Long: "Pay towards a tax profile. An amount above the remaining due is capped,\n" +
			"the applied amount is shown in the result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.TaxProfileID, err = parseID(args[0]); err != nil {
				return err
			}
			if req.Amount, err = parseAmount("amount", amount); err != nil {
				return err
			}
			if transactionID != "" {
				req.TransactionID = &transactionID
			}

			result, err := c.services.PaymentService.Pay(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.printer().paymentResult(result)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount to pay")
	cmd.Flags().StringVar(&req.PaymentMethod, "method", defaultPaymentMethod, "payment method")
	cmd.Flags().StringVar(&transactionID, "transaction-id", "", "external transaction reference")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (c *CLI) paymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Read the payment log",
	}

	get := &cobra.Command{
		Use:   "get PAYMENT_ID",
		Short: "Show a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			payment, err := c.services.PaymentService.GetPayment(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printer().payment(payment)
		},
	}

	var listUser int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List payments, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payments, err := c.services.PaymentService.ListPayments(cmd.Context(), listUser)
			if err != nil {
				return err
			}
			return c.printer().payments(payments)
		},
	}
	list.Flags().Int64Var(&listUser, "user", 0, "whose payments to list (admin only), yours when omitted")

	profile := &cobra.Command{
		Use:   "profile PROFILE_ID",
		Short: "List the payments of a tax profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			payments, err := c.services.PaymentService.ListProfilePayments(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printer().payments(payments)
		},
	}

	var summaryUser int64
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show totals of the payment log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.services.PaymentService.Summary(cmd.Context(), summaryUser)
			if err != nil {
				return err
			}
			return c.printer().summary(s)
		},
	}
	summary.Flags().Int64Var(&summaryUser, "user", 0, "whose payments to sum up (admin only), yours when omitted")

	cmd.AddCommand(get, list, profile, summary)
	return cmd
}
