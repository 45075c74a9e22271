// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the command tree of the go-tax-keeper client.
//
// Every command is a thin layer over [service.ClientServices]: it parses
// flags, calls one client service and prints the result as a table or as
// JSON. Session handling, retries and error mapping live in the services.
package cli
