package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopease/shopease/internal/api/middleware"
	apperrors "github.com/shopease/shopease/internal/errors"
	"github.com/shopease/shopease/internal/models"
	service "github.com/shopease/shopease/internal/services"
	"github.com/shopease/shopease/internal/utils/response"
)

type CartHandler struct {
	sessions       *service.CartSessions
	productService *service.ProductService
	validator      *validator.Validate
}

func NewCartHandler(sessions *service.CartSessions, productService *service.ProductService) *CartHandler {
	return &CartHandler{
		sessions:       sessions,
		productService: productService,
		validator:      validator.New(),
	}
}

func (h *CartHandler) cartResponse(cart *service.Cart) models.CartResponse {

	items := cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}

	return models.CartResponse{
		UserID:    cart.UserID(),
		Items:     items,
		Total:     cart.CalculateTotal(),
		ItemCount: cart.ItemCount(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cart, err := h.sessions.ForRequest(r.Context()).Cart(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to initialize cart", slog.String("error", err.Error()))
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cartResponse(cart))
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddItemRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		product, err := h.productService.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			response.Error(w, err)

			return
		}

		session := h.sessions.ForRequest(r.Context())

		ok, err := session.AddToCart(r.Context(), product)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to initialize cart", slog.String("error", err.Error()))
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		if !ok {
			response.Error(w, apperrors.BadRequestError("Product cannot be added to the cart"))

			return
		}

		cart, err := session.Cart(r.Context())
		if err != nil {
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cartResponse(cart))
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.UpdateQuantityRequest
		if err := decodeJSONBody(w, r, &req); err != nil {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		session := h.sessions.ForRequest(r.Context())

		ok, err := session.UpdateQuantity(r.Context(), req.ProductID, req.Quantity)
		if err != nil {
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		if !ok {
			response.Error(w, apperrors.NotFoundError("Item not found in the cart"))

			return
		}

		cart, err := session.Cart(r.Context())
		if err != nil {
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cartResponse(cart))
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, apperrors.BadRequestError("Invalid product id"))

			return
		}

		session := h.sessions.ForRequest(r.Context())

		ok, err := session.RemoveFromCart(r.Context(), productID)
		if err != nil {
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		if !ok {
			response.Error(w, apperrors.NotFoundError("Item not found in the cart"))

			return
		}

		cart, err := session.Cart(r.Context())
		if err != nil {
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cartResponse(cart))
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session := h.sessions.ForRequest(r.Context())

		if err := session.ClearCart(r.Context()); err != nil {
			response.Error(w, apperrors.DatabaseError("Failed to clear cart").WithError(err))

			return
		}

		cart, err := session.Cart(r.Context())
		if err != nil {
			response.Error(w, apperrors.DatabaseError("Failed to load cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cartResponse(cart))
	}
}
