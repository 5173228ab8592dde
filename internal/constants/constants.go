package constants

// Session / context keys
const (
	SessionCookieName = "task_manager_session"
	ContextKeyUserID  = "user_id"
)

// Pagination
const (
	// ListPageSize is the fixed page size for every list endpoint.
	ListPageSize = 5
	MinPage      = 1
)

// Validation limits
const (
	MinPasswordLength = 8
	MaxUsernameLength = 150
	MaxNameLength     = 255
)
