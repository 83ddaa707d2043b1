package v0_rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/meower-media/notify/pkg/chats"
	"github.com/meower-media/notify/pkg/notify"
)

type notifyHandlers struct {
	svc Service
}

func (h *notifyHandlers) getNotifySettings(w http.ResponseWriter, r *http.Request) {
	// Get member
	id, ok := getMemberIdByUrlParams(w, r)
	if !ok {
		return
	}

	// Get settings
	view, err := h.svc.Fetch(r.Context(), id)
	if err != nil {
		returnServiceErr(w, err)
		return
	}

	returnData(w, http.StatusOK, notifySettingsResp(view, nil))
}

func (h *notifyHandlers) updateNotifySettings(w http.ResponseWriter, r *http.Request) {
	// Get member
	id, ok := getMemberIdByUrlParams(w, r)
	if !ok {
		return
	}

	// Decode body
	var body UpdateNotifySettingsReq
	if !decodeBody(w, r, &body) {
		return
	}

	// Apply edit
	changed, view, err := h.svc.Edit(r.Context(), id, notify.LocalEdit{
		MuteFor:     body.MuteFor,
		SilentPosts: body.Silent,
	})
	if err != nil {
		returnServiceErr(w, err)
		return
	}

	returnData(w, http.StatusOK, notifySettingsResp(view, &changed))
}

func notifySettingsResp(view notify.View, changed *bool) NotifySettingsResp {
	return NotifySettingsResp{
		Known:    !view.Unknown,
		Muted:    view.Muted,
		Changed:  changed,
		Settings: view.Settings,
	}
}

func returnServiceErr(w http.ResponseWriter, err error) {
	if errors.Is(err, chats.ErrMemberNotFound) {
		returnErr(w, http.StatusNotFound, ErrNotFound, nil)
		return
	}
	log.Println(err)
	sentry.CaptureException(err)
	returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
}
