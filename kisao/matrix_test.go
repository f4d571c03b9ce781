package kisao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosimulators/kisao-subst/kisao/internal/testutil"
	"github.com/biosimulators/kisao-subst/ontology"
)

func TestResolver_Matrix(t *testing.T) {
	// GIVEN the default matrix families over the fixture
	r := newTestEngine(t).Resolver

	// WHEN the matrix is built
	m, err := r.Matrix(MatrixFamilies())
	require.NoError(t, err)

	// THEN rows are grouped by family and sorted by name within a family
	require.Len(t, m.Algorithms, 30)
	assert.Equal(t, []string{cvode, cvodeLike, euler, fehlberg, ida, lsoda, lsodaHybrid}, m.Algorithms[:7])
	assert.Equal(t, []string{nextReaction, nextReactionIPQ, gillespieDirect, firstReaction}, m.Algorithms[7:11])
	assert.Equal(t, []string{binomialTau, poissonTau, tauLeaping}, m.Algorithms[11:14])
	assert.Equal(t, "CVODE", m.Names[0])
	assert.Len(t, m.Names, len(m.Algorithms))

	// AND the cells hold the unlocking policy
	cells := []struct {
		a, b string
		want Policy
	}{
		{cvode, cvode, PolicySameMethod},
		{cvode, lsoda, PolicySimilarApproximations},
		{gillespieDirect, nextReaction, PolicySameMath},
		{gillespieDirect, tauLeaping, PolicyDistinctApproximations},
		{fba, fva, PolicySameFramework},
		{bddSS, testutil.ID(660), PolicySameMath},
		{cvode, fba, ""},
		{syncLog, bddSS, ""},
	}
	for _, c := range cells {
		got, ok := m.Cell(c.a, c.b)
		require.True(t, ok, "%s/%s", c.a, c.b)
		assert.Equal(t, c.want, got, "%s/%s", c.a, c.b)
	}

	_, ok := m.Cell(cvode, nleq2)
	assert.False(t, ok, "steady-state methods are not tabulated")
}

func TestResolver_Matrix_IsSymmetric(t *testing.T) {
	r := newTestEngine(t).Resolver
	m, err := r.Matrix(MatrixFamilies())
	require.NoError(t, err)
	for i := range m.Cells {
		for j := range m.Cells {
			assert.Equal(t, m.Cells[i][j], m.Cells[j][i], "%s/%s", m.Algorithms[i], m.Algorithms[j])
		}
	}
}

func TestResolver_Matrix_UnknownFamily(t *testing.T) {
	r := newTestEngine(t).Resolver
	_, err := r.Matrix([]string{FamilyODE, "quantum"})
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestResolver_Matrix_KeepsFirstPosition(t *testing.T) {
	r := newTestEngine(t).Resolver
	m, err := r.Matrix([]string{FamilyDAE, FamilyODE})
	require.NoError(t, err)
	assert.Equal(t, ida, m.Algorithms[0])
	assert.Len(t, m.Algorithms, 7)
}

func TestResolver_Matrix_NaturalNameOrder(t *testing.T) {
	// GIVEN ODE methods whose names differ in case and embedded numbers,
	// with ids in the opposite order
	g := ontology.NewGraph()
	require.NoError(t, g.AddRelationship(ontology.Relationship{ID: IDHasCharacteristic}))
	for _, term := range []ontology.Term{
		{ID: IDAlgorithm},
		{ID: IDODEProblem},
		{ID: IDDAEProblem},
		{ID: IDSteadyStateProblem},
	} {
		require.NoError(t, g.AddTerm(term))
	}
	names := map[int]string{901: "x1y", 902: "method 100", 903: "method 10b", 904: "Method 10", 905: "method 2"}
	for n, name := range names {
		require.NoError(t, g.AddTerm(ontology.Term{
			ID:        testutil.ID(n),
			Name:      name,
			Parents:   []string{IDAlgorithm},
			Relations: map[string][]string{IDHasCharacteristic: {IDODEProblem}},
		}))
	}
	require.NoError(t, g.Freeze())
	eng, err := NewEngine(g, nil)
	require.NoError(t, err)

	// WHEN the ODE matrix is built
	m, err := eng.Resolver.Matrix([]string{FamilyODE})
	require.NoError(t, err)

	// THEN digit runs compare by value and case is ignored
	assert.Equal(t, []string{"method 2", "Method 10", "method 10b", "method 100", "x1y"}, m.Names)
	assert.Equal(t, testutil.IDs(905, 904, 903, 902, 901), m.Algorithms)
}
