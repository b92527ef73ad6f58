// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/webbooks/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, slice.Unique([]int{3, 1, 3, 2, 1}))
}
