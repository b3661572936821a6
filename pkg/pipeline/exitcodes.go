package pipeline

// Process exit codes of one pipeline invocation. The scheduler and any
// wrapping CLI treat these as a closed enumeration.
const (
	ExitOK           = 0
	ExitAlreadyExist = 10
	ExitCompileError = 11
	ExitVenvError    = 11
	ExitBenchError   = 12
)
