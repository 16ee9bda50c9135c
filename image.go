// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixp

import (
	"golang.org/x/image/math/fixed"

	"github.com/db47h/fixp/internal/wide"
)

// Interoperability with the fixed-point types of golang.org/x/image/math/fixed,
// used by font rasterizers and vector graphics.

// Int26_6 returns x as a fixed.Int26_6, rounded half up and saturated.
func (x Fixed[T, F, P]) Int26_6() fixed.Int26_6 {
	w := rescale(toWide(x.raw), fracOf[F](), 6)
	return fixed.Int26_6(narrow[int32](w, Saturate, ""))
}

// Int52_12 returns x as a fixed.Int52_12, rounded half up and saturated.
func (x Fixed[T, F, P]) Int52_12() fixed.Int52_12 {
	w := rescale(toWide(x.raw), fracOf[F](), 12)
	return fixed.Int52_12(narrow[int64](w, Saturate, ""))
}

// FromInt26_6 returns v converted to the format X. Overflow is handled
// according to the policy of X.
func FromInt26_6[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](v fixed.Int26_6) X {
	w := rescale(wide.FromInt64(int64(v)), 6, fracOf[F]())
	return X(Fixed[T, F, P]{narrow[T](w, modeOf[P](), "convert")})
}

// FromInt52_12 returns v converted to the format X. Overflow is handled
// according to the policy of X.
func FromInt52_12[X interface{ Fixed[T, F, P] }, T Int, F Frac, P Policy](v fixed.Int52_12) X {
	w := rescale(wide.FromInt64(int64(v)), 12, fracOf[F]())
	return X(Fixed[T, F, P]{narrow[T](w, modeOf[P](), "convert")})
}

// Point26_6 returns the fixed.Point26_6 (x, y).
func Point26_6[T Int, F Frac, P Policy](x, y Fixed[T, F, P]) fixed.Point26_6 {
	return fixed.Point26_6{X: x.Int26_6(), Y: y.Int26_6()}
}
