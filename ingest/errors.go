// SPDX-License-Identifier: MIT

package ingest

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension no decoder handles.
	ErrUnsupportedFormat = errors.New("ingest: unsupported format")

	// ErrInvalidDocument indicates a document that does not decode or fails schema validation.
	ErrInvalidDocument = errors.New("ingest: invalid document")
)
