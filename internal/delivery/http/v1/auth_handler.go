package v1

import (
	"net/http"

	"careerhub-backend/internal/domain"
	"careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/request-otp", handler.RequestOtp)
		auth.POST("/register", handler.Register)
	}
}

type RequestOtpRequest struct {
	Email string `json:"email"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	UserOtp  string `json:"userOtp"`
}

// RegisterResponse documents the registration success payload.
type RegisterResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

// RequestOtp godoc
// @Summary      Request a registration OTP
// @Description  Sends a 6-digit one-time password to the given email. The code is valid for 5 minutes and is only delivered by email, never returned here.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RequestOtpRequest  true  "Email address"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      429      {object}  map[string]string
// @Router       /auth/request-otp [post]
func (h *AuthHandler) RequestOtp(c *gin.Context) {
	var req RequestOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Email is required"))
		return
	}

	if err := h.authUC.RequestOtp(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to email"})
}

// Register godoc
// @Summary      Register a new account
// @Description  Verifies the submitted OTP, creates the account, and returns a 7-day session token plus the public account projection.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Registration details"
// @Success      201      {object}  RegisterResponse
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("All fields are required"))
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Otp:      req.UserOtp,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User,
	})
}
