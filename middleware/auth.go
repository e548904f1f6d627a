package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"newsorbit-api/config"
	"newsorbit-api/models"
	"newsorbit-api/repositories"
)

const (
	accountContextKey = "account"

	// BlockedAccountMessage is rendered verbatim to blocked users; they get a
	// persistent denial instead of a redirect loop.
	BlockedAccountMessage = "Access Denied: Your account is blocked."
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware resolves the session: it validates the Bearer token and
// loads the live account record, so status and flags reflect the store, not
// stale claims. Anything short of a valid session redirects to the login
// route.
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			redirectToLogin(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			redirectToLogin(c)
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		account, err := userRepo.GetByID(claims.UserID)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(accountContextKey, account)
		c.Set("user_id", account.ID)
		c.Set("role", string(account.Role))

		c.Next()
	}
}

// RequireRole is the access gate for a protected route. Role mismatches
// degrade silently to a redirect home; a blocked account gets the fixed
// denial message and no redirect.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil {
			redirectToLogin(c)
			return
		}

		allowed := false
		for _, role := range roles {
			if account.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		if account.IsBlocked {
			c.JSON(http.StatusForbidden, gin.H{"error": BlockedAccountMessage})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentAccount returns the account resolved by AuthMiddleware, or nil.
func CurrentAccount(c *gin.Context) *models.User {
	v, exists := c.Get(accountContextKey)
	if !exists {
		return nil
	}
	account, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return account
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
