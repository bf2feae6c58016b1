// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server configuration
// has no HTTP address. The REST API is the application, so this is a fatal
// misconfiguration.
var errNoHTTPAddress = errors.New("no HTTP address is configured")
