package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/internal/auth"
	"github.com/olegamobile/lets-play/middleware"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/services"
	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// ProductService defines the catalogue operations used by ProductHandler
type ProductService interface {
	List(ctx context.Context) ([]*models.Product, error)
	Create(ctx context.Context, owner *auth.Principal, input services.CreateProductInput) (*models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ProductHandler handles the product catalogue
type ProductHandler struct {
	service ProductService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /products
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, products)
}

// HandleCreate handles POST /products
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input services.CreateProductInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		HandleDecodeError(w, err, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), middleware.GetPrincipalFromContext(r.Context()), input)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteCreated(w, product)
}

// HandleGet handles GET /products/{id}
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteBadRequest(w, "Invalid product ID", nil)
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, product)
}
