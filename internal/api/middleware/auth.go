package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет админский токен в заголовке X-Admin-Token
// Используется для маршрутов управления расписанием и записями
func AdminAuth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"code":    http.StatusUnauthorized,
					"message": "требуется авторизация администратора",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
