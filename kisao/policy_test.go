package kisao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_LevelsAreStrictlyOrdered(t *testing.T) {
	policies := Policies()
	require.Len(t, policies, 10)
	assert.Equal(t, PolicyNone, policies[0])
	assert.Equal(t, PolicyAny, policies[9])
	for i, p := range policies {
		assert.Equal(t, i, p.Level(), "level of %s", p)
		if i > 0 {
			assert.True(t, policies[i-1].Less(p), "%s < %s", policies[i-1], p)
			assert.False(t, p.Less(policies[i-1]))
			assert.True(t, policies[i-1].AtMost(p))
		}
		assert.True(t, p.AtMost(p))
		assert.False(t, p.Less(p))
	}
}

func TestPolicy_Unknown(t *testing.T) {
	p := Policy("SIMILAR_MATH")
	assert.False(t, p.IsValid())
	assert.Equal(t, -1, p.Level())
	assert.Equal(t, "SIMILAR_MATH", p.DisplayName())
}

func TestPolicy_DisplayName(t *testing.T) {
	assert.Equal(t, "Same math", PolicySameMath.DisplayName())
	assert.Equal(t, "Similar variables", DefaultPolicy.DisplayName())
	for _, p := range Policies() {
		assert.NotEqual(t, string(p), p.DisplayName(), "%s needs a display name", p)
	}
}

func TestPolicies_ReturnsCopy(t *testing.T) {
	p := Policies()
	p[0] = PolicyAny
	assert.Equal(t, PolicyNone, Policies()[0])
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name string
		want Policy
	}{
		{"SAME_MATH", PolicySameMath},
		{"same_math", PolicySameMath},
		{"same-math", PolicySameMath},
		{"Same math", PolicySameMath},
		{" ANY ", PolicyAny},
		{"distinct-approximations", PolicyDistinctApproximations},
		{"", DefaultPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy_Unknown(t *testing.T) {
	_, err := ParsePolicy("closest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closest")
}

func TestDefaultPolicy_IsSimilarVariables(t *testing.T) {
	assert.Equal(t, PolicySimilarVariables, DefaultPolicy)
}
