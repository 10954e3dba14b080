package handler

// Machine-readable error codes returned in response bodies. These are wire
// contract: the embedded client switches on them, so handlers and tests
// reference these constants rather than literals.
const (
	CodeMissingInitData = "missing_init_data"
	CodeInvalidInitData = "invalid_init_data"
	CodeInvalidUser     = "invalid_user"
	CodeAlreadyClaimed  = "already_claimed"
	CodeInvalidPayload  = "invalid_payload"
	CodeNotFound        = "not_found"
	CodeInternalError   = "internal_error"
)
