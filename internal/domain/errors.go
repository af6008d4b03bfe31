package domain

import "errors"

var (
	// ErrNotFound is returned when an identity lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedVideo is returned when the inference engine reports
	// that it cannot analyze the requested video. The metadata row
	// created before analysis stays persisted with zero children.
	ErrUnsupportedVideo = errors.New("unsupported video")
)
