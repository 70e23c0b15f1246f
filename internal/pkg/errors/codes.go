package errors

const (
	CodeConversionFailed    = "CONVERSION_FAILED"
	CodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE"
	CodeUpstreamError       = "UPSTREAM_ERROR"
	CodeMissingParameter    = "MISSING_PARAMETER"
	CodeInvalidParameter    = "INVALID_PARAMETER"
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInternalServer      = "INTERNAL_SERVER_ERROR"
)
