// SPDX-License-Identifier: MIT
// Package: morphio/morphology

package morphology

import "errors"

// ErrAlreadyBuilt indicates a mutation was attempted after BuildReadOnly
// already froze the builder.
var ErrAlreadyBuilt = errors.New("morphology: builder already frozen")

// ErrUnknownOption indicates ApplyModifiers received bits outside the
// range Options defines.
var ErrUnknownOption = errors.New("morphology: unknown option bit")
