package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/config"
	"github.com/festy23/team_recruitment/internal/httpx"
)

// Header names used in header mode.
const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

const ginActorKey = "identity.actor"

// Claims is the token payload accepted in jwt mode.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	errMissingIdentity = errors.New("missing caller identity")
	errUnknownRole     = errors.New("unknown role")
)

// Middleware resolves the caller and stores it on both the gin and the request context.
func Middleware(cfg config.AuthConfig, logger *zap.SugaredLogger) gin.HandlerFunc {
	resolve := headerActor
	if cfg.Mode == config.AuthModeJWT {
		resolve = jwtActor([]byte(cfg.JWTSecret), cfg.JWTIssuer)
	}

	return func(c *gin.Context) {
		actor, err := resolve(c)
		if err != nil {
			logger.Debugw("identity rejected", "path", c.Request.URL.Path, "error", err)
			httpx.Unauthorized(c, err.Error())
			return
		}
		c.Set(ginActorKey, actor)
		c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

// ActorFrom returns the actor resolved by Middleware.
func ActorFrom(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(ginActorKey)
	if !ok {
		return FromContext(c.Request.Context())
	}
	actor, ok := v.(Actor)
	return actor, ok
}

func headerActor(c *gin.Context) (Actor, error) {
	userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if userID == "" {
		return Actor{}, errMissingIdentity
	}
	role, ok := ParseRole(c.GetHeader(HeaderRole))
	if !ok {
		return Actor{}, errUnknownRole
	}
	return Actor{UserID: userID, Role: role}, nil
}

func jwtActor(secret []byte, issuer string) func(c *gin.Context) (Actor, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) (Actor, error) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || raw == "" {
			return Actor{}, errMissingIdentity
		}

		claims := &Claims{}
		if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return secret, nil
		}); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return Actor{}, errors.New("token has expired")
			}
			return Actor{}, fmt.Errorf("invalid token")
		}
		if claims.Subject == "" {
			return Actor{}, errors.New("token has no subject")
		}

		role, ok := ParseRole(claims.Role)
		if !ok {
			return Actor{}, errUnknownRole
		}
		return Actor{UserID: claims.Subject, Role: role}, nil
	}
}
