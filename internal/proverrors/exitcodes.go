package proverrors

// Exit codes (spec §7 "Exit codes: 0 = proof found / satisfiable, a
// dedicated 'no proof in resources' code, a dedicated 'CPU limit' code, a
// dedicated 'memory limit' code, positive codes for usage/syntax/system
// errors"). cmd/saturate is the only place that calls os.Exit with these;
// internal/loop's termination reasons map onto them one-to-one.
const (
	ExitSuccess        = 0
	ExitSyntaxError    = 2
	ExitUsageError     = 3
	ExitResourceOut    = 4
	ExitCPULimit       = 5
	ExitMemoryLimit    = 6
	ExitWallClockLimit = 7
	ExitSystemError    = 8
	ExitInternalError  = 70
)
