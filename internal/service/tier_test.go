package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTier(t *testing.T) {
	cases := []struct {
		orders   int
		tier     string
		discount int
	}{
		{0, TierNew, 0},
		{4, TierNew, 0},
		{5, TierBronze, 5},
		{14, TierBronze, 5},
		{15, TierSilver, 10},
		{29, TierSilver, 10},
		{30, TierGold, 15},
		{49, TierGold, 15},
		{50, TierVIP, 20},
		{1000, TierVIP, 20},
	}
	for _, tc := range cases {
		tier, discount := ComputeTier(tc.orders)
		assert.Equal(t, tc.tier, tier, "orders=%d", tc.orders)
		assert.Equal(t, tc.discount, discount, "orders=%d", tc.orders)
	}
}

func TestComputeTierMonotonic(t *testing.T) {
	prev := -1
	for n := 0; n <= 60; n++ {
		_, discount := ComputeTier(n)
		assert.GreaterOrEqual(t, discount, prev, "discount dropped at %d orders", n)
		prev = discount
	}
}
