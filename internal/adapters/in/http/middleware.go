package http

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/ratelimit"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	ownerIDContextKey = "owner_id"
	tokenContextKey   = "user"
	dashboardPrefix   = "/dashboard"
)

// DefaultAllowedOrigins are the local dashboard dev servers.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func isDashboard(ctx echo.Context) bool {
	path := ctx.Request().URL.Path
	return path == dashboardPrefix || strings.HasPrefix(path, dashboardPrefix+"/")
}

// originAllowed accepts configured origins and any local development host.
func originAllowed(allowed []string, origin string) bool {
	if slices.Contains(allowed, origin) {
		return true
	}
	return strings.HasPrefix(origin, "http://localhost") || strings.HasPrefix(origin, "http://127.0.0.1")
}

// corsMiddleware rejects cross-origin requests from unknown origins with
// cors/not-allowed. Requests without an Origin header pass.
func corsMiddleware(allowed []string) echo.MiddlewareFunc {
	allowed = append(slices.Clone(DefaultAllowedOrigins), allowed...)

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			if originAllowed(allowed, origin) {
				return true, nil
			}
			return false, errs.NewAppError(errs.CodeCorsNotAllowed,
				"허용되지 않은 출처입니다.", "API_ALLOWED_ORIGINS 환경 변수를 업데이트해주세요.").
				WithDetails(map[string]any{"origin": origin})
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID, "Idempotency-Key",
		},
		ExposeHeaders:    []string{echo.HeaderXRequestID, HeaderOrchestrateFallback},
		AllowCredentials: true,
	})
}

// fixedWindowMiddleware limits public API calls per client IP. Stale windows
// are pruned at most once per window.
func fixedWindowMiddleware(limiter *ratelimit.FixedWindow, window time.Duration, now func() time.Time) echo.MiddlewareFunc {
	var lastPrune atomic.Int64

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Request().Method == http.MethodOptions || isDashboard(ctx) {
				return next(ctx)
			}

			current := now()
			if last := lastPrune.Load(); current.Sub(time.Unix(0, last)) >= window &&
				lastPrune.CompareAndSwap(last, current.UnixNano()) {
				limiter.Prune(current)
			}

			if !limiter.Allow(ctx.RealIP(), current) {
				return rateLimited()
			}
			return next(ctx)
		}
	}
}

// dashboardRateLimiter throttles dashboard calls with a token bucket per
// client IP.
func dashboardRateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(ctx echo.Context) bool {
			return !isDashboard(ctx) || ctx.Request().Method == http.MethodOptions
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(perSecond),
				Burst:     burst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return rateLimited().WithCause(err)
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return rateLimited()
		},
	})
}

// AuthConfig configures dashboard authentication. With BypassEnabled a
// request presenting BypassToken acts as BypassOwnerID without JWT checks.
type AuthConfig struct {
	JWTSecret     string
	BypassEnabled bool
	BypassToken   string
	BypassOwnerID string
}

func unauthenticated() *errs.AppError {
	return errs.NewAppError(errs.CodeUnauthorized, "로그인이 필요합니다.", "인증 토큰을 포함해주세요.")
}

func tokenRejected() *errs.AppError {
	return errs.NewAppError(errs.CodeUnauthorized, "토큰 검증에 실패했습니다.", "다시 로그인 후 시도해주세요.")
}

// bearerToken returns the token of an "Authorization: Bearer" header.
func bearerToken(ctx echo.Context) (string, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authMiddleware authenticates dashboard requests and stores the owner id
// on the context. HS256 tokens must carry the owner in "sub".
func authMiddleware(cfg AuthConfig) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.JWTSecret),
		SigningMethod: echojwt.AlgorithmHS256,
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return &jwt.RegisteredClaims{}
		},
		SuccessHandler: func(ctx echo.Context) {
			token, ok := ctx.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok {
				ctx.Set(ownerIDContextKey, claims.Subject)
			}
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) {
				return unauthenticated()
			}
			return tokenRejected().WithCause(err)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		verified := verify(func(ctx echo.Context) error {
			if strings.TrimSpace(ownerID(ctx)) == "" {
				return tokenRejected()
			}
			return next(ctx)
		})

		return func(ctx echo.Context) error {
			if !isDashboard(ctx) || ctx.Request().Method == http.MethodOptions {
				return next(ctx)
			}

			token, ok := bearerToken(ctx)
			if !ok {
				return unauthenticated()
			}
			if cfg.BypassEnabled && cfg.BypassToken != "" && token == cfg.BypassToken {
				ctx.Set(ownerIDContextKey, cfg.BypassOwnerID)
				return next(ctx)
			}
			return verified(ctx)
		}
	}
}

// requestValidator checks path and query parameters against the API
// document. Unknown routes pass through so echo answers them with 404;
// bodies are left to the payload normalizers.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		ExcludeRequestBody:     true,
		ExcludeRequestSecurity: true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if req.Method == http.MethodOptions {
				return next(ctx)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return errs.NewAppError(errs.CodeRequestInvalid,
					"요청 형식이 올바르지 않습니다.", "요청 파라미터를 확인해주세요.").
					WithDetails(map[string]any{"cause": err.Error()}).
					WithCause(err)
			}
			return next(ctx)
		}
	}, nil
}

// requestLogger logs one line per request with zerolog.
func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	logger = logger.With().Str("component", "http-access").Logger()

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
