package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopease/shopease/internal/api/middleware"
	"github.com/shopease/shopease/internal/models"
	service "github.com/shopease/shopease/internal/services"
	"github.com/shopease/shopease/internal/utils/response"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.RegisterRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Registration failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		middleware.LoggerFromContext(r.Context()).Info("User registered", slog.String("username", user.Username))
		response.Success(w, http.StatusCreated, user)
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.LoginRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		result, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Login failed unexpectedly", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if !result.Success {
			response.WriteJson(w, http.StatusUnauthorized, result)

			return
		}

		response.WriteJson(w, http.StatusOK, result)
	}
}
