package global

const (
	// AppVersion is served by GET /version and shown in boot logs.
	AppVersion = "1.0.0"

	// Gin context key for storing the authenticated user ID.
	// Using a string constant reduces risk of typos and collisions.
	CtxUserIDKey = "uid"
)
