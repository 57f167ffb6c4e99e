package api

import (
	"context"
)

type keyType string

const sessionSubjectKey keyType = "sessionSubject"

// ctxWithSessionSubject adds the authenticated session's subject to the context
func ctxWithSessionSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, sessionSubjectKey, subject)
}

// ctxSessionSubject retrieves the session subject, or "" when unauthenticated
func ctxSessionSubject(ctx context.Context) string {
	if value, ok := ctx.Value(sessionSubjectKey).(string); ok {
		return value
	}
	return ""
}
