package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Dimensions is a bounding box (length × width × height) expressed in the
// catalog's linear unit. It is used both for the cargo space of a vehicle and
// for the largest package or piece of an order.
//
// The zero value is an empty box: it fits everywhere.
type Dimensions struct {
	length int64
	width  int64
	height int64
}

// NewDimensions creates a box; negative sides are rejected.
func NewDimensions(length, width, height int64) (Dimensions, error) {
	var invalid []string
	if length < 0 {
		invalid = append(invalid, fmt.Sprintf("length %d", length))
	}
	if width < 0 {
		invalid = append(invalid, fmt.Sprintf("width %d", width))
	}
	if height < 0 {
		invalid = append(invalid, fmt.Sprintf("height %d", height))
	}
	if len(invalid) > 0 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%v must not be negative", invalid),
		)
	}

	return Dimensions{length: length, width: width, height: height}, nil
}

func (d Dimensions) Length() int64 { return d.length }
func (d Dimensions) Width() int64  { return d.width }
func (d Dimensions) Height() int64 { return d.height }

// IsZero reports an empty box.
func (d Dimensions) IsZero() bool {
	return d.length == 0 && d.width == 0 && d.height == 0
}

// HasVolume reports whether every side is positive.
func (d Dimensions) HasVolume() bool {
	return d.length > 0 && d.width > 0 && d.height > 0
}

// FitsWithin reports whether every side of d is less than or equal to the same side of container.
// Sides are compared axis by axis; rotations are not attempted.
func (d Dimensions) FitsWithin(container Dimensions) bool {
	return d.length <= container.length &&
		d.width <= container.width &&
		d.height <= container.height
}

// Max returns the per-axis maximum of both boxes.
func (d Dimensions) Max(other Dimensions) Dimensions {
	return Dimensions{
		length: max(d.length, other.length),
		width:  max(d.width, other.width),
		height: max(d.height, other.height),
	}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.length, d.width, d.height)
}
