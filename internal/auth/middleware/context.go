package auth

import "context"

type ctxKey string

const ctxKeySub ctxKey = "sub"

// WithSubject/SubjectFromContext carry the authenticated user id set by
// JWTMiddleware; handlers use it as the owner of submissions.

func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

func SubjectFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeySub); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
