package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"pacs/internal"
	userDatamodel "pacs/internal/core/datamodel/user"
	"pacs/internal/transport"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (TokenSchema, error)
	ResolvePrincipal(tokenString string) (*userDatamodel.User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// Login handles POST /token, exchanging credentials for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		dto.Username = r.PostFormValue("username")
		dto.Password = r.PostFormValue("password")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	tokens, err := h.Service.Authenticate(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

// AuthMiddleware resolves the bearer token into the acting user and
// stores it in the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := h.Service.ResolvePrincipal(token)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// RequireSuperuser layers on top of AuthMiddleware for the user admin
// endpoints.
func (h *Handler) RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user == nil {
			h.WriteError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if !user.IsSuperuser {
			h.HandleServiceError(w, internal.ErrNotSuperuser)
			return
		}
		next.ServeHTTP(w, r)
	})
}
