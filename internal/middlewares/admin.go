package middlewares

import "net/http"

// RequireAdmin пропускает дальше только пользователей с ролью администратора.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(w, r)
		if user == nil {
			return
		}

		if !user.IsAdmin() {
			EncodeJSONError(w, http.StatusForbidden, "Доступ разрешен только администратору")
			return
		}

		next.ServeHTTP(w, r)
	})
}
