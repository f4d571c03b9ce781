package kisao

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosimulators/kisao-subst/kisao/internal/testutil"
	"github.com/biosimulators/kisao-subst/ontology"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEngineConfig_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, `
default_policy: same-framework
characteristics:
  dae_marker: "KISAO:0000373"
  steady_state_marker: "407"
trace: decisions
`)
	cfg, err := LoadEngineConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, PolicySameFramework, p)
	assert.Equal(t, Markers{DAE: "KISAO_0000373", SteadyState: "KISAO_0000407"}, cfg.Markers())
	assert.Equal(t, "decisions", cfg.Trace)
}

func TestParseEngineConfig_EmptyMeansDefaults(t *testing.T) {
	for _, doc := range []string{"", "characteristics: {}\n"} {
		cfg, err := ParseEngineConfig([]byte(doc))
		require.NoError(t, err, "%q", doc)
		assert.Equal(t, DefaultEngineConfig(), cfg, "%q", doc)
	}
}

func TestParseEngineConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown key", "default_polcy: ANY\n", "default_polcy"},
		{"bad dae marker", "characteristics: {dae_marker: DAE}\n", "characteristics.dae_marker"},
		{"bad steady marker", "characteristics: {steady_state_marker: x}\n", "characteristics.steady_state_marker"},
		{"not yaml", "default_policy: [", "parsing engine config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEngineConfig([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadEngineConfig_MissingFile(t *testing.T) {
	_, err := LoadEngineConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading engine config")
}

func TestEngineConfig_Validate(t *testing.T) {
	cfg := DefaultEngineConfig()
	assert.NoError(t, cfg.Validate())

	cfg.DefaultPolicy = "closest"
	assert.ErrorContains(t, cfg.Validate(), "default_policy")

	cfg = DefaultEngineConfig()
	cfg.Trace = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "unknown trace level")
}

func TestEngineConfig_ValidateAgainst(t *testing.T) {
	store := testutil.LoadFixture(t)

	cfg := DefaultEngineConfig()
	assert.NoError(t, cfg.ValidateAgainst(store))

	// GIVEN a marker that the ontology release does not define
	cfg.Characteristics.SteadyStateMarker = testutil.ID(777)

	// THEN validation names the setting and the missing term
	err := cfg.ValidateAgainst(store)
	require.ErrorIs(t, err, ontology.ErrNotFound)
	assert.Contains(t, err.Error(), "characteristics.steady_state_marker")
	assert.Contains(t, err.Error(), "KISAO_0000777")
}
