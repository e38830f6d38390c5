package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"beresinBack/internal/models"
	"beresinBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	user, err := h.Service.Register(r.Context(), req)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, models.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "Email sudah terdaftar.")
		case errors.Is(err, models.ErrDuplicatePhone):
			writeError(w, http.StatusConflict, "Nomor telepon sudah terdaftar.")
		default:
			log.Printf("Failed to register user: %v", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"message": "Pendaftaran berhasil.",
		"user":    user,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	user, tokens, err := h.Service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Email atau kata sandi salah.")
			return
		}
		log.Printf("Failed to log in user: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetProfile(r.Context(), callerID(r))
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Pengguna tidak ditemukan.")
			return
		}
		log.Printf("Failed to load profile: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	code, err := h.Service.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		// The response is identical whether the account exists or not.
		if errors.Is(err, models.ErrUserNotFound) {
			writeSuccess(w, http.StatusOK, map[string]interface{}{
				"message": "Kode reset telah dikirim jika email terdaftar.",
			})
			return
		}
		log.Printf("Failed to issue reset code: %v", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	// TODO: hand the code to the outbound SMS dispatcher once it lands;
	// for now operators read it from the log.
	log.Printf("Password reset code for %s: %s", req.Email, code)

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Kode reset telah dikirim jika email terdaftar.",
	})
}

func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Permintaan tidak valid.")
		return
	}

	if err := h.Service.ResetPassword(r.Context(), req); err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, models.ErrResetCodeMismatch):
			writeError(w, http.StatusBadRequest, "Kode reset salah atau sudah kedaluwarsa.")
		case errors.As(err, &vErr):
			writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, models.ErrUserNotFound):
			writeError(w, http.StatusBadRequest, "Kode reset salah atau sudah kedaluwarsa.")
		default:
			log.Printf("Failed to reset password: %v", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{"message": "Kata sandi berhasil diubah."})
}
