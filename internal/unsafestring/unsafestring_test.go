// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package unsafestring

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestToBytesEmpty(t *testing.T) {
	require.Nil(t, ToBytes(""))
	require.Nil(t, ToBytes("abc"[:0]))
}

func TestToBytes(t *testing.T) {
	for _, key := range []string{
		"a",
		"bloom key",
		"😀",
	} {
		b := ToBytes(key)
		require.Equal(t, key, string(b))
		require.Equal(t, len(key), len(b))
		require.Equal(t, len(key), cap(b))
		// the bytes alias the string's storage rather than a copy
		require.True(t, unsafe.StringData(key) == &b[0])

		allocs := testing.AllocsPerRun(10, func() {
			_ = ToBytes(key)
		})
		require.Zero(t, allocs)
	}
}
