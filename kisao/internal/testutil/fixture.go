// Package testutil provides shared test infrastructure for the kisao
// packages: the fixture ontology and set assertions.
package testutil

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosimulators/kisao-subst/ontology"
)

// FixturePath returns the path of testdata/kisao_fixture.yaml.
// The path is resolved relative to this source file: kisao/internal/testutil/ → testdata/.
func FixturePath(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "kisao_fixture.yaml")
}

// LoadFixture loads the fixture ontology.
func LoadFixture(t *testing.T) *ontology.Graph {
	t.Helper()
	g, err := ontology.LoadSnapshot(FixturePath(t))
	require.NoError(t, err, "loading fixture ontology")
	return g
}

// ID renders a KiSAO number as a canonical id: ID(19) == "KISAO_0000019".
func ID(n int) string {
	return fmt.Sprintf("KISAO_%07d", n)
}

// IDs renders several KiSAO numbers as canonical ids.
func IDs(ns ...int) []string {
	ids := make([]string, len(ns))
	for i, n := range ns {
		ids[i] = ID(n)
	}
	return ids
}

// AssertSetEqual checks that got holds exactly the ids in want.
func AssertSetEqual(t *testing.T, want []string, got map[string]struct{}, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, sortedCopy(want), keys(got), msgAndArgs...)
}

// AssertContainsAll checks that every id in want is in got.
func AssertContainsAll(t *testing.T, got map[string]struct{}, want ...string) {
	t.Helper()
	for _, id := range want {
		_, ok := got[id]
		assert.True(t, ok, "expected %s in %v", id, keys(got))
	}
}

// AssertContainsNone checks that no id in unwanted is in got.
func AssertContainsNone(t *testing.T, got map[string]struct{}, unwanted ...string) {
	t.Helper()
	for _, id := range unwanted {
		_, ok := got[id]
		assert.False(t, ok, "did not expect %s in %v", id, keys(got))
	}
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func sortedCopy(ids []string) []string {
	out := append([]string{}, ids...)
	sort.Strings(out)
	return out
}
