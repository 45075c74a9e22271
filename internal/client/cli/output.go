// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	dateLayout = "2006-01-02 15:04"
)

type printer struct {
	w      io.Writer
	format string
}

// print writes v as indented JSON or, in table mode, whatever table renders.
func (p printer) print(v any, table func(w io.Writer)) error {
	if p.format == formatJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

func usersTable(users []models.User) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tCREATED")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.UserID, u.Name, u.Email, u.Role, date(u.CreatedAt))
		}
	}
}

func (p printer) user(u models.User) error {
	return p.print(u, usersTable([]models.User{u}))
}

func (p printer) users(users []models.User) error {
	return p.print(nonNil(users), usersTable(users))
}

func profilesTable(profiles []models.TaxProfile) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintln(w, "ID\tUSER\tFISCAL YEAR\tINCOME\tTAX DUE\tTAX PAID\tREMAINING\tSTATUS")
		for _, tp := range profiles {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				tp.ID, tp.UserID, tp.FiscalYear,
				money(tp.Income), money(tp.TaxDue), money(tp.TaxPaid), money(tp.RemainingDue()),
				tp.Status)
		}
	}
}

func (p printer) profile(tp models.TaxProfile) error {
	return p.print(tp, profilesTable([]models.TaxProfile{tp}))
}

func (p printer) profiles(profiles []models.TaxProfile) error {
	return p.print(nonNil(profiles), profilesTable(profiles))
}

func paymentsTable(payments []models.Payment) func(w io.Writer) {
	return func(w io.Writer) {
		fmt.Fprintln(w, "ID\tPROFILE\tFISCAL YEAR\tAMOUNT\tMETHOD\tTRANSACTION\tDATE\tSTATUS")
		for _, pm := range payments {
			txn := "-"
			if pm.TransactionID != nil {
				txn = *pm.TransactionID
			}
			fiscalYear := pm.FiscalYear
			if fiscalYear == "" {
				fiscalYear = "-"
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				pm.ID, pm.TaxProfileID, fiscalYear, money(pm.Amount), pm.PaymentMethod, txn, date(pm.PaymentDate), pm.Status)
		}
	}
}

func (p printer) payment(pm models.Payment) error {
	return p.print(pm, paymentsTable([]models.Payment{pm}))
}

func (p printer) payments(payments []models.Payment) error {
	return p.print(nonNil(payments), paymentsTable(payments))
}

func (p printer) paymentResult(result models.PaymentResult) error {
	return p.print(result, func(w io.Writer) {
		tp := result.TaxProfile
		fmt.Fprintf(w, "Payment\t#%d\n", result.Payment.ID)
		fmt.Fprintf(w, "Applied\t%s\n", money(result.Payment.Amount))
		fmt.Fprintf(w, "Profile\t#%d (%s)\n", tp.ID, tp.FiscalYear)
		fmt.Fprintf(w, "Tax paid\t%s of %s\n", money(tp.TaxPaid), money(tp.TaxDue))
		fmt.Fprintf(w, "Remaining\t%s\n", money(tp.RemainingDue()))
		fmt.Fprintf(w, "Status\t%s\n", tp.Status)
	})
}

func (p printer) summary(summary models.PaymentSummary) error {
	return p.print(summary, func(w io.Writer) {
		last := "-"
		if summary.LastPaymentDate != nil {
			last = date(*summary.LastPaymentDate)
		}
		fmt.Fprintf(w, "Total paid\t%s\n", money(summary.TotalPaid))
		fmt.Fprintf(w, "Payments\t%d\n", summary.PaymentCount)
		fmt.Fprintf(w, "Last payment\t%s\n", last)
	})
}

func (p printer) computation(c models.TaxComputation) error {
	return p.print(c, func(w io.Writer) {
		fmt.Fprintf(w, "Fiscal year\t%s\n", c.FiscalYear)
		fmt.Fprintf(w, "Income\t%s\n", money(c.Income))
		fmt.Fprintf(w, "Standard deduction\t%s\n", money(c.StandardDeduction))
		fmt.Fprintf(w, "Taxable income\t%s\n", money(c.TaxableIncome))
		fmt.Fprintf(w, "Exemption limit\t%s\n", money(c.ExemptionLimit))
		for _, slab := range c.Slabs {
			upTo := "∞"
			if slab.UpTo != nil {
				upTo = money(*slab.UpTo)
			}
			fmt.Fprintf(w, "  %s - %s @ %s%%\t%s on %s\n",
				money(slab.From), upTo, slab.Rate.Shift(2).String(), money(slab.Tax), money(slab.TaxableAmount))
		}
		fmt.Fprintf(w, "Tax due\t%s\n", money(c.TaxDue))
	})
}

// nonNil keeps empty lists rendered as [] rather than null.
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
