package seamcarver

import "errors"

// Sentinel errors returned by the carver. They are wrapped with additional
// context (coordinates, lengths) and should be checked with errors.Is.
var (
	// ErrEmptyImage indicates that the source image has no pixels on one of its axes.
	ErrEmptyImage = errors.New("seamcarver: image must be at least 1x1")

	// ErrOutOfRange indicates a pixel coordinate outside of the current image.
	ErrOutOfRange = errors.New("seamcarver: coordinate out of range")

	// ErrNilSeam indicates that a nil seam was passed to a remove operation.
	ErrNilSeam = errors.New("seamcarver: seam is nil")

	// ErrSeamLength indicates that the seam length does not match the image
	// dimension it spans, or that the seam is degenerate (one entry or less).
	ErrSeamLength = errors.New("seamcarver: seam length mismatch")

	// ErrInvalidSeam indicates a seam entry outside of the image or two
	// consecutive entries more than one pixel apart.
	ErrInvalidSeam = errors.New("seamcarver: invalid seam")

	// ErrImageTooSmall indicates that removing the seam would leave the image
	// without any column or row.
	ErrImageTooSmall = errors.New("seamcarver: image too small to remove a seam")

	// ErrInvalidSize indicates that the requested output size cannot be reached by seam removal.
	ErrInvalidSize = errors.New("seamcarver: invalid target size")

	// ErrUnsupportedFormat indicates an output file extension without an encoder.
	ErrUnsupportedFormat = errors.New("seamcarver: unsupported image format")
)
