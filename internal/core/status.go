package core

// Status is the `status` token carried by every pySET response
type Status string

// Server-reported tokens
const (
	StatusSuccess Status = "SUCCESS"
	StatusFail    Status = "FAIL"
	StatusOngoing Status = "ONGOING"
	StatusDone    Status = "DONE"
	StatusError   Status = "ERROR"
	StatusWarning Status = "WARNING"
)

// Client-synthesised tokens
const (
	StatusCRUDError   Status = "CRUD_ERROR"
	StatusServerError Status = "SERVER_ERROR"
)

// Accepted reports whether the token counts as a successful call
func (s Status) Accepted() bool {
	switch s {
	case StatusSuccess, StatusDone, StatusOngoing:
		return true
	default:
		return false
	}
}
