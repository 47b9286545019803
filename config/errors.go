// SPDX-License-Identifier: MIT
// Package config: sentinel errors.

package config

import "errors"

// ErrDecode reports YAML that does not parse into the document schema.
var ErrDecode = errors.New("config: cannot decode document")

// ErrSchema reports a decoded document that fails structural validation
// (missing names, unknown directions, and so on). The wrapped message
// names the offending field.
var ErrSchema = errors.New("config: document fails validation")
