package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"beresinBack/internal/models"
	"beresinBack/internal/services"
)

const (
	msgNoServices      = "Jasa belum ada, silahkan upload jasa Anda."
	msgServiceNotFound = "Layanan tidak ditemukan atau Anda tidak memiliki akses."
	msgForbiddenEdit   = "Anda tidak diizinkan untuk mengedit layanan ini."
	msgForbiddenDelete = "Anda tidak diizinkan untuk menghapus layanan ini."
	msgServiceDeleted  = "Layanan berhasil dihapus."
	msgCategoryMissing = "Kategori tidak ditemukan."
	msgInternalError   = "Terjadi kesalahan pada server."
	maxUploadSizeBytes = 32 << 20
)

type ServiceHandler struct {
	Service *services.ServiceService
}

// GetUserServices answers the list endpoint. A caller with no listings still
// gets a success envelope, with the placeholder message and an empty array.
func (h *ServiceHandler) GetUserServices(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)

	details, err := h.Service.ListUserServices(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list services for user %d: %v", userID, err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	if len(details) == 0 {
		writeSuccess(w, http.StatusOK, map[string]interface{}{
			"message":  msgNoServices,
			"services": []models.OwnedServiceDetail{},
		})
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"services": details})
}

func (h *ServiceHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	// A malformed id behaves like a missing row: the not-found message
	// deliberately does not reveal whether the listing exists.
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, msgServiceNotFound)
		return
	}

	detail, err := h.Service.GetUserServiceByID(r.Context(), id, callerID(r))
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			writeError(w, http.StatusNotFound, msgServiceNotFound)
			return
		}
		log.Printf("Failed to get service %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"service": detail})
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	input, files, ok := parseServiceForm(w, r)
	if !ok {
		return
	}

	detail, err := h.Service.CreateServiceWithImages(r.Context(), callerID(r), input, files)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case isForeignKeyConstraintError(err):
			writeError(w, http.StatusBadRequest, msgCategoryMissing)
		default:
			log.Printf("Failed to create service: %v", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{"service": detail})
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusForbidden, msgForbiddenEdit)
		return
	}

	input, files, ok := parseServiceForm(w, r)
	if !ok {
		return
	}

	detail, err := h.Service.UpdateUserService(r.Context(), id, callerID(r), input, files)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrServiceForbidden):
			writeError(w, http.StatusForbidden, msgForbiddenEdit)
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case isForeignKeyConstraintError(err):
			writeError(w, http.StatusBadRequest, msgCategoryMissing)
		default:
			log.Printf("Failed to update service %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"service": detail})
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusForbidden, msgForbiddenDelete)
		return
	}

	if err := h.Service.DeleteUserService(r.Context(), id, callerID(r)); err != nil {
		if errors.Is(err, models.ErrServiceForbidden) {
			writeError(w, http.StatusForbidden, msgForbiddenDelete)
			return
		}
		log.Printf("Failed to delete service %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"message": msgServiceDeleted})
}

// ListAllServices is the admin view over every listing, optionally filtered
// by ?status=.
func (h *ServiceHandler) ListAllServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.ListByStatus(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("Failed to list services: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	writeSuccess(w, http.StatusOK, map[string]interface{}{"services": services})
}

func (h *ServiceHandler) UpdateServiceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, msgServiceNotFound)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	if err := h.Service.ModerateService(r.Context(), id, body.Status); err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, models.ErrServiceNotFound):
			writeError(w, http.StatusNotFound, msgServiceNotFound)
		default:
			log.Printf("Failed to update status of service %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"message": "Status layanan berhasil diperbarui."})
}

// parseServiceForm reads the multipart create/update payload. It reports
// false after answering the request when the form itself is unreadable.
func parseServiceForm(w http.ResponseWriter, r *http.Request) (models.ServiceInput, []*multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(maxUploadSizeBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Form tidak valid.")
		return models.ServiceInput{}, nil, false
	}

	input := models.ServiceInput{
		NameOfService: r.FormValue("name_of_service"),
		CategoryID:    r.FormValue("category_id"),
		Description:   r.FormValue("description"),
		MinPrice:      r.FormValue("min_price"),
		MaxPrice:      r.FormValue("max_price"),
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["images"]
	}
	return input, files, true
}
