package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/spfm/backend/internal/finance/domain"
	financeErrors "github.com/spfm/backend/internal/finance/errors"
)

type CategoryServiceInterface interface {
	CreateCategory(name, userID string) error
	GetUserCategories(userID string) ([]domain.Category, error)
	UpdateCategory(categoryID, name, userID string) error
	DeleteCategory(categoryID, userID string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	validate     *validator.Validate
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		validate:     validator.New(),
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CreateCategory(req.Name, userID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryExists) {
			h.respondError(w, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Error during category creation: %v", errors.Unwrap(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "category_created",
	})
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.GetUserCategories(userID)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   categories,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := r.PathValue("id")
	if categoryID == "" {
		h.respondError(w, http.StatusBadRequest, "Missing category id")
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateCategory(categoryID, req.Name, userID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryExists) {
			h.respondError(w, http.StatusConflict, err.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error during category update: %v", errors.Unwrap(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "category_updated",
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := r.PathValue("id")
	if categoryID == "" {
		h.respondError(w, http.StatusBadRequest, "Missing category id")
		return
	}

	if err := h.service.DeleteCategory(categoryID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, financeErrors.ErrCategoryInUse) {
			h.respondError(w, http.StatusConflict, err.Error())
			return
		}
		log.Printf("Error during category deletion: %v", errors.Unwrap(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "category_deleted",
	})
}
