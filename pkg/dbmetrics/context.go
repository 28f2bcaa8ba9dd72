package dbmetrics

import "context"

type ctxKey struct{}

// WithExecutor кладёт активную транзакцию в контекст
// Репозитории, получившие такой контекст, выполняют запросы в рамках транзакции
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor возвращает executor из контекста (активную транзакцию),
// либо fallback, если транзакции в контексте нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(DBExecutor)
	return ok
}
