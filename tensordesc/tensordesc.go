/*
 *	Copyright 2024 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package tensordesc describes the shape and element type of buffers handed to the OpenVINO runtime.
//
// The values of Layout and Precision match the layout_e and precision_e enums of OpenVINO's ie_c_api.h,
// so they can be converted directly when crossing the C boundary.
package tensordesc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MaxRank is the maximum number of dimensions the C dimensions_t structure can hold.
const MaxRank = 8

var (
	// ErrRankTooLarge is returned (wrapped) by Desc.Check for descriptors with more than MaxRank dimensions.
	ErrRankTooLarge = errors.Errorf("rank larger than %d", MaxRank)

	// ErrNegativeDimension is returned (wrapped) by Desc.Check for descriptors with a negative dimension.
	ErrNegativeDimension = errors.New("negative dimension")
)

// Desc describes a tensor: its memory layout, its dimensions and its element precision.
//
// It corresponds to tensor_desc_t in the C API.
type Desc struct {
	Layout     Layout
	Dimensions []int
	Precision  Precision
}

// New creates a Desc with the given layout, precision and dimensions.
func New(layout Layout, precision Precision, dimensions ...int) Desc {
	return Desc{Layout: layout, Precision: precision, Dimensions: dimensions}
}

// FlatBytes returns the descriptor of an opaque flat byte buffer of length n: one dimension, U8 elements
// and layout ANY. This is how model weights are passed from memory.
func FlatBytes(n int) Desc {
	return New(LayoutAny, U8, n)
}

// Rank returns the number of dimensions.
func (d Desc) Rank() int {
	return len(d.Dimensions)
}

// Size returns the number of elements described, the product of the dimensions.
// A scalar (rank 0) has size 1.
func (d Desc) Size() int {
	size := 1
	for _, dim := range d.Dimensions {
		size *= dim
	}
	return size
}

// ByteSize returns the number of bytes needed to store Size elements of the given Precision.
// Sub-byte precisions are rounded up to the next full byte.
// It returns 0 for precisions without a fixed element size (Unspecified, Mixed, Custom).
func (d Desc) ByteSize() int {
	bits := d.Precision.Bits()
	if bits == 0 {
		return 0
	}
	return (d.Size()*bits + 7) / 8
}

// Check returns an error if the descriptor can't be represented by the C API: it wraps ErrRankTooLarge or
// ErrNegativeDimension, which can be tested with errors.Is.
//
// It doesn't check that the layout and the rank are consistent, that is left to the runtime.
func (d Desc) Check() error {
	if d.Rank() > MaxRank {
		return errors.WithMessagef(ErrRankTooLarge, "tensor descriptor %s has rank %d", d, d.Rank())
	}
	for axis, dim := range d.Dimensions {
		if dim < 0 {
			return errors.WithMessagef(ErrNegativeDimension, "tensor descriptor %s has dimension %d on axis %d", d, dim, axis)
		}
	}
	return nil
}

// String implements fmt.Stringer.
func (d Desc) String() string {
	parts := make([]string, len(d.Dimensions))
	for ii, dim := range d.Dimensions {
		parts[ii] = fmt.Sprintf("%d", dim)
	}
	return fmt.Sprintf("(%s)[%s]{%s}", d.Precision, strings.Join(parts, " "), d.Layout)
}
