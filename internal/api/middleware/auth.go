package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
)

const (
	headerUserID = "X-User-ID"

	msgInvalidUserID = "некорректный заголовок X-User-ID"
	msgOwnerNotSet   = "владелец площадки не настроен"
)

type ctxKey string

const userIDKey ctxKey = "user_id"

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает идентификатор пользователя из заголовка X-User-ID.
// Если заголовок отсутствует, используется владелец площадки из конфига
// (fallbackOwnerID) - система рассчитана на работу одного администратора.
// fallbackOwnerID == 0 означает, что владелец не настроен: без заголовка
// такие запросы завершаются ошибкой конфигурации.
func Auth(fallbackOwnerID int64, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(headerUserID)

			var userID int64
			if raw == "" {
				if fallbackOwnerID == 0 {
					logger.Error("Auth - Owner is not configured and %s header is missing: path=%s", headerUserID, r.URL.Path)
					handlers.RespondError(w, http.StatusInternalServerError, msgOwnerNotSet)
					return
				}
				userID = fallbackOwnerID
			} else {
				parsed, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || parsed <= 0 {
					logger.Warn("Auth - Invalid %s header: value=%q, path=%s", headerUserID, raw, r.URL.Path)
					handlers.RespondBadRequest(w, msgInvalidUserID)
					return
				}
				userID = parsed
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
