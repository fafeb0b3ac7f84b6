package handler

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/middleware"
	auth "storefront/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC *auth.RegisterUsecase
	loginUC    *auth.LoginUsecase
	profileUC  *auth.ProfileUsecase
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterUsecase,
	loginUC *auth.LoginUsecase,
	profileUC *auth.ProfileUsecase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		profileUC:  profileUC,
	}
}

// /api/auth/register のリクエストボディ。
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /api/auth/login のリクエストボディ。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
}

func (h *AuthHandler) RegisterRoutes(api *echo.Group, cfg config.Config) {
	g := api.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.GET("/me", h.me, middleware.AuthJWT(cfg))
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name, email and password are required."})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrMissingFields:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name, email and password are required."})
		case auth.ErrPasswordTooShort:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password must be at least 6 characters."})
		case auth.ErrEmailAlreadyExists:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered."})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server error during registration."})
		}
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "Registration successful",
		Token:   out.Token,
		User:    out.User,
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password are required."})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case auth.ErrMissingCredentials:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email and password are required."})
		case auth.ErrInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password."})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server error during login."})
		}
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   out.Token,
		User:    out.User,
	})
}

func (h *AuthHandler) me(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required."})
	}

	user, err := h.profileUC.Execute(c.Request().Context(), userID)
	if err != nil {
		if err == auth.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found."})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// AuthJWTが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	userID, ok := v.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
