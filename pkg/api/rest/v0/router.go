package v0_rest

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/meower-media/notify/pkg/chats"
	"github.com/meower-media/notify/pkg/notify"
)

// Service is what the handlers need from the reconciler.
type Service interface {
	Fetch(ctx context.Context, id chats.MemberIdCompound) (notify.View, error)
	Edit(ctx context.Context, id chats.MemberIdCompound, edit notify.LocalEdit) (bool, notify.View, error)
}

func Router(svc Service) *chi.Mux {
	r := chi.NewRouter()

	h := &notifyHandlers{svc: svc}
	r.Route("/chats/{chatId}/members/{userId}/notify", func(r chi.Router) {
		r.Get("/", h.getNotifySettings)
		r.Patch("/", h.updateNotifySettings)
	})

	return r
}
