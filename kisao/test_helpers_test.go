package kisao

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biosimulators/kisao-subst/kisao/internal/testutil"
)

// Fixture algorithms used across tests.
var (
	cvode       = testutil.ID(19)
	cvodeLike   = testutil.ID(433)
	ida         = testutil.ID(283)
	lsoda       = testutil.ID(88)
	lsodaHybrid = testutil.ID(560)
	euler       = testutil.ID(30)
	fehlberg    = testutil.ID(86)

	gillespieLike   = testutil.ID(241)
	gillespieDirect = testutil.ID(29)
	firstReaction   = testutil.ID(15)
	nextReaction    = testutil.ID(27)
	nextReactionIPQ = testutil.ID(586)
	tauLeaping      = testutil.ID(39)
	binomialTau     = testutil.ID(74)
	poissonTau      = testutil.ID(40)
	slowScale       = testutil.ID(28)

	nfsim    = testutil.ID(263)
	eulerMar = testutil.ID(286)
	fvm      = testutil.ID(285)
	nleq2    = testutil.ID(569)
	fba      = testutil.ID(437)
	fva      = testutil.ID(526)
	syncLog  = testutil.ID(449)
	bddSS    = testutil.ID(662)
	aspTrap  = testutil.ID(663)
	pahle    = testutil.ID(231)
)

// newTestEngine builds an Engine over the fixture ontology with the default
// configuration.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testutil.LoadFixture(t), nil)
	require.NoError(t, err)
	return e
}
