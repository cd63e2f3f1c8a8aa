package systemcodes

// Process exit codes. Scripts wrapping preport match on these, so the
// values are part of the tool's contract.
const (
	ErrorCodeGeneric     = 1
	ErrorCodeConfigError = 3
)
