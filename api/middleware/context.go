package middleware

import "context"

type contextKey string

const (
	ctxUserID     contextKey = "user_id"
	ctxUserName   contextKey = "user_name"
	ctxParkID     contextKey = "park_id"
	ctxIsEmployee contextKey = "is_employee"
)

func UserIDFromContext(ctx context.Context) uint {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxUserID).(uint); ok {
		return v
	}
	return 0
}

func UserNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserName).(string); ok {
		return v
	}
	return ""
}

func ParkIDFromContext(ctx context.Context) *uint {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxParkID).(uint); ok {
		return &v
	}
	return nil
}

func IsEmployeeFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxIsEmployee).(bool); ok {
		return v
	}
	return false
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithUserName injects the username into the context.
func WithUserName(ctx context.Context, userName string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserName, userName)
}
