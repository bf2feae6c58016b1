// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pass-the-pages command-line client.
//
// Each marketplace route is exposed as a cobra subcommand backed by
// [adapter.MarketplaceAdapter]. The bearer token issued by `login` or
// `register` is saved to a file and reused by later invocations.
package client
