// The auth gate. Every protected handler calls authenticate before any
// binding, validation or service call, so a request that is both
// unauthenticated and malformed reports Unauthenticated. Keeping the
// gate an explicit first statement makes that ordering visible in the
// control flow instead of depending on middleware registration order.
package handlers

import (
	"net/http"
	"strconv"

	"userapi/global"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// authenticate validates "Authorization: Bearer <token>". On success it
// stores the user ID under global.CtxUserIDKey and returns it; on
// failure it writes the 401 response itself and returns ok=false, and
// the caller must return immediately.
func (h *UserHandler) authenticate(c *gin.Context) (uint, bool) {
	auth := c.GetHeader("Authorization")
	if len(auth) < 8 || auth[:7] != "Bearer " {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return 0, false
	}
	raw := auth[7:]

	t, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !t.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return 0, false
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
		return 0, false
	}

	// JSON numbers decode to float64; string subs may appear too.
	var uid uint
	switch v := claims["sub"].(type) {
	case float64:
		uid = uint(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			uid = uint(n)
		}
	}
	c.Set(global.CtxUserIDKey, uid)
	return uid, true
}
