// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package zero provides functions to zero or fill word slices.
package zero

// Words sets every element of w to 0.
func Words(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}

// Fill sets every element of w to v.
func Fill(w []uint32, v uint32) {
	for i := range w {
		w[i] = v
	}
}
