package kisao

// Canonical ids of the KiSAO terms the engine is built on.
const (
	IDHasCharacteristic = "KISAO_0000245" // has characteristic

	IDODEProblem          = "KISAO_0000374" // ordinary differential equation problem
	IDSDEProblem          = "KISAO_0000371" // stochastic differential equation problem
	IDPDEProblem          = "KISAO_0000372" // partial differential equation problem
	IDExactSolution       = "KISAO_0000236"
	IDApproximateSolution = "KISAO_0000237"

	// Defaults for the configurable family markers (see EngineConfig).
	IDDAEProblem         = "KISAO_0000373" // differential-algebraic equation problem
	IDSteadyStateProblem = "KISAO_0000407" // steady state root-finding problem

	IDAlgorithm                      = "KISAO_0000000" // modelling and simulation algorithm
	IDGillespieLikeAlgorithm         = "KISAO_0000241"
	IDTauLeapingAlgorithm            = "KISAO_0000039"
	IDRuleBasedAlgorithm             = "KISAO_0000363"
	IDFluxBalanceAlgorithm           = "KISAO_0000622"
	IDLogicalSimulationAlgorithm     = "KISAO_0000448"
	IDLogicalStableStateSearch       = "KISAO_0000660"
	IDLogicalTrapSpaceIdentification = "KISAO_0000661"
	IDHybridAlgorithm                = "KISAO_0000352"
)
