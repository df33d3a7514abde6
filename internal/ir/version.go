package ir

// Version constants for the result record and the tool.
const (
	// ResultVersion is the result record schema version.
	ResultVersion = "1"

	// ToolVersion is the basel CLI version.
	ToolVersion = "0.1.0"
)
