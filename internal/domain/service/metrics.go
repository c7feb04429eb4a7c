package service

// Credential operation names and outcomes reported to CredentialMetrics.
const (
	OperationRegister = "register"
	OperationDelete   = "delete"
	OperationLookup   = "lookup"

	OutcomeSuccess  = "success"
	OutcomeConflict = "conflict"
	OutcomeNotFound = "not_found"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// CredentialMetrics records the result of credential operations.
type CredentialMetrics interface {
	ObserveOperation(operation, outcome string)
}
