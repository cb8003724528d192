// seehuhn.de/go/overlay - render polygon layers as raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package overlay

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidResolution is returned when the pixel size is not a
	// positive, finite number.
	ErrInvalidResolution = errors.New("resolution must be positive")

	// ErrInvalidBBox is returned when a bounding box has zero or negative
	// extent, or non-finite corners.
	ErrInvalidBBox = errors.New("invalid bounding box")

	// ErrImageTooLarge is wrapped by ImageTooLargeError.
	ErrImageTooLarge = errors.New("image dimensions too large")
)

// ImageTooLargeError reports output dimensions which exceed MaxDimension.
// The check happens before the pixel buffer is allocated.
type ImageTooLargeError struct {
	Width, Height int
	Max           int
}

func (err *ImageTooLargeError) Error() string {
	return ErrImageTooLarge.Error() + ": " +
		strconv.Itoa(err.Width) + "x" + strconv.Itoa(err.Height) +
		" pixels (max: " + strconv.Itoa(err.Max) + ")"
}

func (err *ImageTooLargeError) Unwrap() error {
	return ErrImageTooLarge
}
