// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned when no listen address or handler is configured.
var errNoHTTPServer = errors.New("no HTTP address or handler configured")
