package constants

// Session
const (
	SessionCookieName = "task_session"
	SessionMaxAge     = 86400 * 7 // 7 days

	SessionKeyFilter = "view_filter"
	SessionKeySortBy = "view_sort_by"
)

// Gin context keys
const (
	ContextKeyTask      = "task"
	ContextKeyViewState = "view_state"
)
