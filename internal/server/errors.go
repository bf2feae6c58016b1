// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when neither the REST API nor the gRPC
// health endpoint is configured.
var errNoServersAreCreated = errors.New("no servers are created")
