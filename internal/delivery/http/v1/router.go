package v1

import (
	"net/http"
	"time"

	"careerhub-backend/config"
	"careerhub-backend/internal/delivery/http/middleware"
	"careerhub-backend/internal/delivery/http/response"
	"careerhub-backend/internal/domain"
	"careerhub-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	ProfileUC domain.ProfileUsecase
	Tokens    *auth.TokenService
	Redis     *goredis.Client // nil when not configured; limiters fall back to memory
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(deps.Redis,
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CareerHub Backend is running"})
	})

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes; OTP issuance and registration get the strict limiter
	public := api.Group("")
	public.Use(middleware.RateLimitMiddleware(deps.Redis,
		middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	NewAuthHandler(public, deps.AuthUC)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	NewProfileHandler(protected, deps.ProfileUC)

	return r
}
