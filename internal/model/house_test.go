package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLess(t *testing.T) {
	houses := []House{
		{Name: "House of Rongai", Order: 2},
		{Name: "house of KU", Order: 1},
		{Name: "House of Thika", Order: 1},
		{Name: "House of AIU", Order: 0},
	}

	sort.SliceStable(houses, func(i, j int) bool { return Less(houses[i], houses[j]) })

	var names []string
	for _, h := range houses {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"House of AIU", "house of KU", "House of Thika", "House of Rongai"}, names)
}
