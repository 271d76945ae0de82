package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/eclipse7-9/enlistment-layout/internal/config"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

const ContextActor = "actor"

// Actor es la identidad resuelta del token: una cuenta de usuario o un
// proveedor de productos. Exactamente uno de los dos campos es no-nil.
type Actor struct {
	User     *models.User
	Supplier *models.Supplier
}

func (a Actor) Email() string {
	if a.User != nil {
		return a.User.Email
	}
	return a.Supplier.Email
}

// AuthMiddleware valida el bearer token y resuelve el actor por email:
// primero en usuarios, luego en proveedores.
func AuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err == nil {
			c.Set(ContextActor, Actor{User: &user})
			c.Next()
			return
		}

		var supplier models.Supplier
		if err := db.Where("email = ?", email).First(&supplier).Error; err == nil {
			c.Set(ContextActor, Actor{Supplier: &supplier})
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "actor_not_found"})
	}
}

// CurrentActor devuelve el actor resuelto por AuthMiddleware.
func CurrentActor(c *gin.Context) Actor {
	return c.MustGet(ContextActor).(Actor)
}

// CurrentUser exige que el actor sea una cuenta de usuario; si el token
// pertenece a un proveedor responde 403 y devuelve ok=false.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	actor := CurrentActor(c)
	if actor.User == nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "user_account_required"})
		return nil, false
	}
	return actor.User, true
}

// RequireAdmin exige una cuenta de usuario con rol admin.
func RequireAdmin(c *gin.Context) (*models.User, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		return nil, false
	}
	if !user.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
		return nil, false
	}
	return user, true
}
