// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

var readPassword = term.ReadPassword

// promptPassword reads a password without echo when the input is a
// terminal, and a single line otherwise.
func (c *CLI) promptPassword(prompt string) (string, error) {
	fmt.Fprint(c.errOut, prompt)

	var (
		raw []byte
		err error
	)
	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err = readPassword(int(f.Fd()))
		fmt.Fprintln(c.errOut)
	} else {
		var line string
		if c.lines == nil {
			c.lines = bufio.NewReader(c.in)
		}
		line, err = c.lines.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		raw = []byte(strings.TrimRight(line, "\r\n"))
	}
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(raw) == 0 {
		return "", errEmptyPassword
	}
	return string(raw), nil
}

// passwordFlag returns the value of the named flag or prompts for it.
func (c *CLI) passwordFlag(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return c.promptPassword(prompt)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, s)
	}
	return id, nil
}

func parseAmount(flag, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: --%s %q", errInvalidAmount, flag, s)
	}
	return d, nil
}
