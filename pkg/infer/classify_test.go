package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		token    string
		expected Category
	}{
		{"1.5", CategoryFloat},
		{"-1.5", CategoryFloat},
		{".5", CategoryFloat},
		{"-.5", CategoryFloat},
		{"0.0", CategoryFloat},
		{"5", CategoryInt},
		{"-5", CategoryInt},
		{"2147483648", CategoryInt},
		{"true", CategoryBool},
		{"false", CategoryBool},
		{"TRUE", CategoryBool},
		{"FaLsE", CategoryBool},
		{"", CategoryOther},
		{"x", CategoryOther},
		{"5.", CategoryOther},     // no fractional digits
		{"1e5", CategoryOther},    // exponents are not float tokens
		{"1,5", CategoryOther},    // locale separators are out of scope
		{" 5", CategoryOther},     // embedded whitespace is not numeric
		{"truthy", CategoryOther}, // boolean must match the whole token
		{"--5", CategoryOther},
		{"1.2.3", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.token),
				"token %q", tt.token)
		})
	}
}

func TestClassifyFloatBeforeInt(t *testing.T) {
	// The integer pattern is a subset shape of the float pattern's digits;
	// a token with a decimal point must never classify as an integer.
	assert.Equal(t, CategoryFloat, Classify("12.0"))
	assert.Equal(t, CategoryInt, Classify("12"))
}

func TestClassifyDeterministic(t *testing.T) {
	for _, token := range []string{"1.5", "5", "true", "x", ""} {
		first := Classify(token)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Classify(token))
		}
	}
}

func TestCategoryRankPromotion(t *testing.T) {
	// Numeric categories promote to transient markers that never count as
	// resolved; terminal categories promote directly.
	assert.Equal(t, rankTmpFloat, CategoryFloat.rank())
	assert.Equal(t, rankTmpInt, CategoryInt.rank())
	assert.Equal(t, RankBoolean, CategoryBool.rank())
	assert.Equal(t, RankAny, CategoryOther.rank())

	assert.False(t, rankTmpInt.Resolved())
	assert.False(t, rankTmpFloat.Resolved())
}
