package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"beresinBack/internal/models"
	"beresinBack/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetAllCategories(r.Context())
	if err != nil {
		log.Printf("Failed to list categories: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	created, err := h.Service.CreateCategory(r.Context(), category)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		log.Printf("Failed to create category: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"category": created})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Kategori tidak ditemukan.")
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}
	category.ID = id

	updated, err := h.Service.UpdateCategory(r.Context(), category)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, models.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Kategori tidak ditemukan.")
		default:
			log.Printf("Failed to update category %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"category": updated})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Kategori tidak ditemukan.")
		return
	}

	if err := h.Service.DeleteCategory(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Kategori tidak ditemukan.")
		case isForeignKeyReferencedError(err):
			writeError(w, http.StatusBadRequest, "Kategori masih digunakan oleh jasa lain.")
		default:
			log.Printf("Failed to delete category %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"message": "Kategori berhasil dihapus."})
}
