// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It builds the REST adapter, the session store and the client services
// from the final configuration and hands the command line to package cli.
package client
