// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the marketplace: institution
// e-mail on registration, non-empty listing titles and message texts,
// distinct participants and positive amounts on payments.
//
// Validation runs in the service layer before any store write, so a rejected
// request never reaches the database.
package validators

import "context"

// Validator checks a value against its rule set. Passing field names
// restricts validation to those rules only.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
