// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid indicates a configuration value out of range; the wrapping
// message names the attribute.
var ErrInvalid = errors.New("config: invalid value")
