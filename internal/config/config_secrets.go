// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"
)

// resolveSecrets loads secrets that were provided by reference. When
// App.TokenSignKey is empty and App.TokenSignKeyFile is set, the key is read
// from that file with surrounding whitespace trimmed.
func (cfg *StructuredConfig) resolveSecrets() error {
	if cfg.App.TokenSignKey != "" || cfg.App.TokenSignKeyFile == "" {
		return nil
	}

	content, err := os.ReadFile(cfg.App.TokenSignKeyFile)
	if err != nil {
		return fmt.Errorf("error reading token sign key file: %w", err)
	}

	cfg.App.TokenSignKey = strings.TrimSpace(string(content))
	return nil
}
