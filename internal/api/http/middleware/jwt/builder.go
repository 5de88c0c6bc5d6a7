package jwt

import (
	"crypto/ed25519"
	"net/http"
	"strings"

	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/pkg/operator"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

// Builder jwt 认证中间件。
//
// 只做验签，token 由管理后台签发（Ed25519），sub 作为操作人写入 context。
type Builder struct {
	pubKey ed25519.PublicKey
	parser *jwt.Parser
}

func (b *Builder) Build() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !ok || tokenStr == "" {
			abort(c)
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := b.parser.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
			return b.pubKey, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			abort(c)
			return
		}

		c.Request = c.Request.WithContext(operator.WithOperator(c.Request.Context(), claims.Subject))
		c.Next()
	}
}

func abort(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"message": errs.ErrUnauthorized.Error()},
	})
}

func NewBuilder(pubKey ed25519.PublicKey) *Builder {
	return &Builder{
		pubKey: pubKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}
