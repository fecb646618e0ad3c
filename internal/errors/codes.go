package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountClosed              ErrorCode = "ACCOUNT_002"
	AccountInsufficientBalance ErrorCode = "ACCOUNT_003"
)

// Vault error codes (VAULT_*)
const (
	VaultNotFound ErrorCode = "VAULT_001"
)

// Loan error codes (LOAN_*)
const (
	LoanNotFound          ErrorCode = "LOAN_001"
	LoanPaymentNotFound   ErrorCode = "LOAN_002"
	LoanScheduleExhausted ErrorCode = "LOAN_003"
	LoanPaymentSettled    ErrorCode = "LOAN_004"
	LoanRepaymentTooLarge ErrorCode = "LOAN_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidAmount: "Amount must be a positive decimal",

	// Account errors
	AccountNotFound:            "Account not found",
	AccountClosed:              "Account is closed",
	AccountInsufficientBalance: "Insufficient account balance",

	// Vault errors
	VaultNotFound: "Vault not found",

	// Loan errors
	LoanNotFound:          "Loan not found",
	LoanPaymentNotFound:   "Loan payment not found",
	LoanScheduleExhausted: "Next due date would exceed the loan maturity date",
	LoanPaymentSettled:    "Loan payment has already been settled",
	LoanRepaymentTooLarge: "Repayment exceeds the remaining loan balance",

	// System errors
	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please retry later",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return "An unexpected error occurred"
}
