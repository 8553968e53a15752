package tokens

import "context"

type bearerCtxKey struct{}

// WithBearer кладет сырой bearer токен вызывающего в контекст. Апстрим клиенты
// воспроизводят его в заголовке Authorization при межсервисных запросах.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerCtxKey{}, token)
}

func BearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerCtxKey{}).(string)
	return token, ok && token != ""
}
