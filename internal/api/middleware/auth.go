package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/camlisting/camlisting/internal/api/handler/v1/response"
	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/pkg/jwthelper"
)

// CallerKey is the gin context key under which the authenticated caller
// is stored after VerifyJWT runs.
const CallerKey = "caller"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing bearer token"))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token, ctx.Request.UserAgent())
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid token"))

			return
		}

		ctx.Set(CallerKey, domain.Caller{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		ctx.Next()
	}
}

// VerifyJWTOptional resolves the caller when a valid token is sent but
// lets anonymous requests through.
func (a *Authenticator) VerifyJWTOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if found && token != "" {
			if claims, err := jwthelper.ParseToken(a.signingKey, token, ctx.Request.UserAgent()); err == nil {
				ctx.Set(CallerKey, domain.Caller{
					UserID: claims.UserID,
					Role:   claims.Role,
				})
			}
		}

		ctx.Next()
	}
}

// RequireAdmin gates the back office. It must run after VerifyJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		caller, ok := GetCaller(ctx)
		if !ok || !caller.IsAdmin() {
			response.RenderErr(ctx, response.ErrUnauthorized("admin access required"))

			return
		}

		ctx.Next()
	}
}

func GetCaller(ctx *gin.Context) (domain.Caller, bool) {
	value, exists := ctx.Get(CallerKey)
	if !exists {
		return domain.Caller{}, false
	}

	caller, ok := value.(domain.Caller)

	return caller, ok
}
