package contextkeys

type contextKey string

// DBContextKey holds the *gorm.DB (pool or transaction) for the request.
const DBContextKey = contextKey("db")

// Keys used with gin.Context.Set by the auth middleware.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
