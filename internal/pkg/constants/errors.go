package constants

import "net/http"

// CodedError is an error carrying the HTTP status code it should be
// reported with. The api error handler unwraps to the nearest CodedError.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "not found in store")

	ErrPlantingNotFound = NewCodedError(http.StatusNotFound, "planting does not exist")
	ErrProductNotFound  = NewCodedError(http.StatusNotFound, "product does not exist")
	ErrTargetNotFound   = NewCodedError(http.StatusNotFound, "target does not exist")

	ErrMissingPlantingID = NewCodedError(http.StatusBadRequest, "planting_id is required")
	ErrMissingTargetID   = NewCodedError(http.StatusBadRequest, "target_id is required")
	ErrBadApplicationDate = NewCodedError(http.StatusBadRequest, "application_date must be YYYY-MM-DD")
	ErrBadApplicationTime = NewCodedError(http.StatusBadRequest, "application_time must be HH:MM")
	ErrEmptyTreatmentLines = NewCodedError(http.StatusBadRequest, "treatment must contain at least one line")
	ErrNonPositiveDosage   = NewCodedError(http.StatusBadRequest, "dosage_rate must be greater than zero")
	ErrProductWithoutMoA   = NewCodedError(http.StatusBadRequest, "product has no mode-of-action group assigned")
	ErrUnknownClassificationSystem = NewCodedError(http.StatusBadRequest, "unknown classification system")

	ErrPlantingNotActive = NewCodedError(http.StatusConflict, "planting is not active")

	ErrUnauthorized = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrBadRequest   = NewCodedError(http.StatusBadRequest, "bad request")
)
