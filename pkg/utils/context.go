package utils

import "context"

type contextKey string

const (
	// UIDKey holds the identity-provider-issued uid of the caller, set by
	// the token middleware.
	UIDKey contextKey = "uid"
)

func SetUIDContext(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, UIDKey, uid)
}

func GetUIDFromContext(ctx context.Context) (string, bool) {
	uidVal := ctx.Value(UIDKey)
	if uidVal == nil {
		return "", false
	}

	uid, ok := uidVal.(string)
	if !ok || uid == "" {
		return "", false
	}

	return uid, true
}
