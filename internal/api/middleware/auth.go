package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

// userIDKey ключ контекста для ID пользователя
type userIDKey struct{}

// Auth middleware аутентификации по заголовку X-User-ID
// Валидацию токена выполняет API gateway; сюда приходит уже проверенный
// идентификатор пользователя
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("X-User-ID")
		if header == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return userID, ok
}
