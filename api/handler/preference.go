package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/pkg/httpcontext"
	"github.com/taskdeck/backend/repository"
)

type PreferenceHandler struct {
	baseHandler
	prefs repository.PreferenceRepository
}

func NewPreferenceHandler(prefs repository.PreferenceRepository, adapter *httpcontext.Adapter, logger *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		baseHandler: newBaseHandler(adapter, logger),
		prefs:       prefs,
	}
}

// @Summary Read display preferences
// @Tags preferences
// @Router /api/v1/preferences [get]
func (h *PreferenceHandler) GetPreferences(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	dark, err := h.prefs.DarkMode(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	theme, err := h.prefs.Theme(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	current, err := h.prefs.CurrentUser(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, domain.Preferences{
		DarkMode:    dark,
		Theme:       theme,
		CurrentUser: current,
	})
}

// @Summary Update display preferences
// @Tags preferences
// @Router /api/v1/preferences [put]
func (h *PreferenceHandler) UpdatePreferences(ctx *fasthttp.RequestCtx) {
	var req transport.PreferencesRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	if req.Theme != nil && !domain.ValidTheme(*req.Theme) {
		h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("unknown theme %q", *req.Theme)))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if req.DarkMode != nil {
		if err := h.prefs.SetDarkMode(stdCtx, *req.DarkMode); err != nil {
			h.respondError(ctx, err)
			return
		}
	}
	if req.Theme != nil {
		if err := h.prefs.SetTheme(stdCtx, *req.Theme); err != nil {
			h.respondError(ctx, err)
			return
		}
	}

	h.GetPreferences(ctx)
}
