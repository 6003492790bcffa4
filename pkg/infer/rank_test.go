package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankOrdering(t *testing.T) {
	ordered := []Rank{
		RankNull, RankBoolean, RankInt32, RankInt64,
		RankInt128, RankFloat32, RankFloat64, RankAny,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i],
			"%s must rank below %s", ordered[i-1], ordered[i])
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, RankInt64, Max(RankInt32, RankInt64))
	assert.Equal(t, RankInt64, Max(RankInt64, RankInt32))
	assert.Equal(t, RankAny, Max(RankAny, RankFloat64))
	assert.Equal(t, RankNull, Max(RankNull, RankNull))
}

func TestResolved(t *testing.T) {
	for _, r := range []Rank{
		RankNull, RankBoolean, RankInt32, RankInt64,
		RankInt128, RankFloat32, RankFloat64, RankAny,
	} {
		assert.True(t, r.Resolved(), "%s", r)
	}

	assert.False(t, rankTmpInt.Resolved())
	assert.False(t, rankTmpFloat.Resolved())
	assert.False(t, Rank(-1).Resolved())
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "int32", RankInt32.String())
	assert.Equal(t, "any", RankAny.String())
	assert.Equal(t, "tmp_int", rankTmpInt.String())
	assert.Equal(t, "unknown", Rank(42).String())
}
