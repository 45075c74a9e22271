// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers of the application.
//
// It starts the HTTP and gRPC servers enabled by the configuration, waits
// for a termination signal and shuts every server down gracefully.
package server
