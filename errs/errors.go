// Package errs defines the errors returned by nbtrock.
//
// Every failure mode has an exported sentinel that can be matched with errors.Is.
// Failures that carry a payload (tag id, byte offset, path segment) are returned as
// typed errors which unwrap to their sentinel, so both styles work:
//
//	if errors.Is(err, errs.ErrRootTag) { ... }
//
//	var rootErr *errs.RootTagError
//	if errors.As(err, &rootErr) {
//	    fmt.Println(rootErr.ID)
//	}
package errs

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/nbtrock/format"
)

var (
	// ErrRootTag is returned when a stream's root tag, or the tree being mutated, is not a Compound.
	ErrRootTag = errors.New("root tag is not a compound")
	// ErrInvalidTagID is returned when a tag id outside 0x01-0x0C is met while decoding.
	ErrInvalidTagID = errors.New("invalid tag id")
	// ErrInvalidUTF8 is returned when a string payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 string")
	// ErrHeterogeneousList is returned when a list holds elements of different tag ids.
	ErrHeterogeneousList = errors.New("list elements do not share one tag id")
	// ErrNotContainer is returned when a path segment traverses a non-compound value.
	ErrNotContainer = errors.New("path segment is not a compound")
	// ErrEmptyPath is returned when a path has no segments.
	ErrEmptyPath = errors.New("empty path")
	// ErrNotFound is returned by lookups when a path does not resolve to a value.
	ErrNotFound = errors.New("path not found")
	// ErrNegativeLength is returned when an array or list count is negative.
	ErrNegativeLength = errors.New("negative length")
	// ErrStringTooLong is returned when a string or tag name exceeds the uint16 length prefix.
	ErrStringTooLong = errors.New("string exceeds maximum length")
	// ErrMaxDepthExceeded is returned when compound/list nesting exceeds the configured limit.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrTruncated is returned when the input ends before a value is complete.
	ErrTruncated = fmt.Errorf("truncated input: %w", io.ErrUnexpectedEOF)
	// ErrInvalidValue is returned when a textual value cannot be parsed into the requested tag.
	ErrInvalidValue = errors.New("invalid value")
)

// RootTagError reports a root (or mutation target) that is not a Compound.
type RootTagError struct {
	ID format.TagID
}

func (e *RootTagError) Error() string {
	return fmt.Sprintf("%s: got %s (0x%02x)", ErrRootTag, e.ID, uint8(e.ID))
}

func (e *RootTagError) Unwrap() error { return ErrRootTag }

// InvalidTagIDError reports an unrecognized tag id and the offset it was read from.
type InvalidTagIDError struct {
	ID     format.TagID
	Offset int64
}

func (e *InvalidTagIDError) Error() string {
	return fmt.Sprintf("%s: 0x%02x at offset %d", ErrInvalidTagID, uint8(e.ID), e.Offset)
}

func (e *InvalidTagIDError) Unwrap() error { return ErrInvalidTagID }

// UTF8Error reports a string payload that failed UTF-8 validation.
// Offset is the stream position just past the rejected bytes.
type UTF8Error struct {
	Offset int64
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("%s at offset %d", ErrInvalidUTF8, e.Offset)
}

func (e *UTF8Error) Unwrap() error { return ErrInvalidUTF8 }

// HeterogeneousListError reports the first list element whose tag id differs from the first element's.
type HeterogeneousListError struct {
	Want  format.TagID
	Got   format.TagID
	Index int
}

func (e *HeterogeneousListError) Error() string {
	return fmt.Sprintf("%s: element %d is %s, expected %s", ErrHeterogeneousList, e.Index, e.Got, e.Want)
}

func (e *HeterogeneousListError) Unwrap() error { return ErrHeterogeneousList }

// PathError reports a path segment that resolves to a non-compound value.
type PathError struct {
	Path    string
	Segment string
	Got     format.TagID
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %q in %q holds %s", ErrNotContainer, e.Segment, e.Path, e.Got)
}

func (e *PathError) Unwrap() error { return ErrNotContainer }
