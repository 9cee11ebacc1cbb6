/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

//go:build linux || darwin || freebsd || netbsd || openbsd

package alloc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMmap(t *testing.T) {
	testAllocator(t, Mmap{})
}

func TestMmap_PageRounding(t *testing.T) {
	b, err := Mmap{}.Alloc(1, 10)
	require.NoError(t, err)
	require.Len(t, b, 10)
	require.Equal(t, os.Getpagesize(), cap(b))
	require.NoError(t, Mmap{}.Free(b))
}

func TestMmap_FreeForeign(t *testing.T) {
	err := Mmap{}.Free(make([]byte, 8))
	require.Error(t, err)
}
