package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wetrack/wetrack-backend/internal/domain"
	"github.com/wetrack/wetrack-backend/internal/usecase"
	userdto "github.com/wetrack/wetrack-backend/internal/usecase/dto/user"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
	Name      string `json:"name"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Register handles POST /auth/registration/.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	user, err := h.userUsecase.Register(&userdto.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password1:   req.Password1,
		Password2:   req.Password2,
		DisplayName: req.Name,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login handles POST /auth/login/.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	pair, err := h.userUsecase.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// Refresh handles POST /auth/token/refresh/.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	access, err := h.userUsecase.Refresh(req.Refresh)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{Access: access})
}

// Me handles GET /users/me/.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUsecase.GetUserByID(UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// GetByID handles GET /users/{id}/. Any id other than the caller's own is a
// 404, so user ids cannot be probed.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestedID := chi.URLParam(r, "id")
	if requestedID != UserIDFromContext(r.Context()) {
		writeError(w, fmt.Errorf("%w: user", domain.ErrNotFound))
		return
	}

	user, err := h.userUsecase.GetUserByID(requestedID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

// UpdateMe handles PATCH /users/me/ and PATCH /users/{id}/.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	if requestedID := chi.URLParam(r, "id"); requestedID != "" && requestedID != UserIDFromContext(r.Context()) {
		writeError(w, fmt.Errorf("%w: user", domain.ErrNotFound))
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request payload", domain.ErrValidation))
		return
	}

	user, err := h.userUsecase.UpdateProfile(UserIDFromContext(r.Context()), domain.UserUpdate{
		Email:       req.Email,
		DisplayName: req.Name,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.DisplayName,
	}
}
