// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes domain events emitted after a payment has been
// committed. Delivery is best effort: the payment is the source of truth and
// a failed publication never undoes it.
package events
