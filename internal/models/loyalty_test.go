package crm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierForPoints(t *testing.T) {
	tests := []struct {
		points int64
		tier   string
	}{
		{0, TierBronze},
		{1, TierBronze},
		{499, TierBronze},
		{500, TierSilver},
		{1999, TierSilver},
		{2000, TierGold},
		{1000000, TierGold},
	}
	for _, test := range tests {
		require.Equal(t, test.tier, TierForPoints(test.points), "points=%d", test.points)
	}
}
