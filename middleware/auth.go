package middleware

import (
	"log"
	"net/http"

	"triviahub/auth"
	"triviahub/config"
	"triviahub/models"
	"triviahub/utils"
)

// RequireUser validates the session cookie, resolves the acting user and
// attaches it to the request context.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("auth_token")
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		userID, err := auth.VerifyToken(cookie.Value)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		var user models.User
		if err := config.Database.First(&user, userID).Error; err != nil {
			log.Printf("RequireUser: user %d not found: %v", userID, err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !user.IsActive {
			http.Error(w, "Account disabled", http.StatusForbidden)
			return
		}

		ctx := utils.ContextWithUser(r.Context(), &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
