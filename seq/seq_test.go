// Copyright 2024-2026 Tolerant Labs, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package seq_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tolerantlabs/syntax/seq"
)

func TestSlice(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := seq.NewSlice([]int{1, 2, 3}, func(_, v int) string {
		return strconv.Itoa(v)
	})

	assert.Equal(3, s.Len())
	assert.Equal("2", s.At(1))
	assert.Equal([]string{"1", "2", "3"}, seq.ToSlice[string](s))
	assert.Equal([]string{"1", "2", "3"}, slices.Collect(seq.Values[string](s)))
}

func TestBackward(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := seq.NewSlice([]int{1, 2, 3}, func(_, v int) int { return v })

	var got []int
	for _, v := range seq.Backward[int](s) {
		got = append(got, v)
	}
	assert.Equal([]int{3, 2, 1}, got)

	// Early termination.
	for i, v := range seq.Backward[int](s) {
		assert.Equal(2, i)
		assert.Equal(3, v)
		break
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	s := seq.NewSlice([]int{1, 2, 3}, func(_, v int) int { return v })
	doubled := slices.Collect(seq.Map[int](s, func(v int) int { return v * 2 }))
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	e := seq.Empty[string]()
	assert.Equal(t, 0, e.Len())
	assert.Empty(t, seq.ToSlice(e))
}
