package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-hub/internal/auth"
	"github.com/iliyamo/hostel-hub/internal/config"
	"github.com/iliyamo/hostel-hub/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.  Accounts live in
// the session-layer store, outside the data engine.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *auth.Store
}

// NewAuthHandler constructs an AuthHandler and panics if the account store is nil.
func NewAuthHandler(cfg config.Config, accounts *auth.Store) *AuthHandler {
	if accounts == nil {
		panic("nil account store passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Accounts: accounts}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type accountPart struct {
	ID        uint64  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	StudentID *uint64 `json:"student_id,omitempty"`
}
type authResp struct {
	User    accountPart `json:"user"`
	Access  tokenPart   `json:"access"`
	Refresh tokenPart   `json:"refresh"`
}

func (h *AuthHandler) issuePair(c echo.Context, acc auth.Account) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.ID, acc.Role, acc.StudentID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	h.Accounts.StoreRefresh(utils.HashRefreshRaw(refresh.Raw), acc.ID, refresh.Exp)

	return c.JSON(http.StatusOK, authResp{
		User:    accountPart{ID: acc.ID, Email: acc.Email, Name: acc.Name, Role: acc.Role, StudentID: acc.StudentID},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Login verifies credentials and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	acc, ok := h.Accounts.Verify(req.Email, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	return h.issuePair(c, acc)
}

// Refresh rotates a refresh token: the presented token is consumed and a
// new pair is issued.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	acc, ok := h.Accounts.ConsumeRefresh(utils.HashRefreshRaw(req.RefreshToken))
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	return h.issuePair(c, acc)
}

// Logout invalidates a refresh token.  Revoking an unknown token still
// returns 204 so logout is idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	h.Accounts.RevokeRefresh(utils.HashRefreshRaw(req.RefreshToken))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated account's information.
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := claimUint(c, "account_id")
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	acc, ok := h.Accounts.ByID(id)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, accountPart{ID: acc.ID, Email: acc.Email, Name: acc.Name, Role: acc.Role, StudentID: acc.StudentID})
}
