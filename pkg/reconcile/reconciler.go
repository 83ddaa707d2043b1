// Package reconcile feeds remote pushes and local edits into the settings
// cache and pushes the result back upstream.
package reconcile

import (
	"context"
	"fmt"
	"log"

	"github.com/getsentry/sentry-go"
	"github.com/meower-media/notify/pkg/chats"
	"github.com/meower-media/notify/pkg/events"
	"github.com/meower-media/notify/pkg/notify"
)

type Store interface {
	LoadNotifySettings(ctx context.Context, id chats.MemberIdCompound) (notify.PeerNotifySettings, error)
	SaveNotifySettings(ctx context.Context, id chats.MemberIdCompound, in notify.InputPeerNotifySettings) error
}

type Publisher interface {
	Publish(ctx context.Context, op uint8, v interface{}) error
}

// Listener is told about every change in observable state.
type Listener interface {
	NotifySettingsChanged(id chats.MemberIdCompound, view notify.View)
}

type Reconciler struct {
	cache    *notify.Cache[chats.MemberIdCompound]
	store    Store
	pub      Publisher
	listener Listener
}

// New builds a Reconciler. pub and listener may be nil.
func New(cache *notify.Cache[chats.MemberIdCompound], store Store, pub Publisher, listener Listener) *Reconciler {
	return &Reconciler{
		cache:    cache,
		store:    store,
		pub:      pub,
		listener: listener,
	}
}

func (r *Reconciler) changed(id chats.MemberIdCompound) {
	if r.listener != nil {
		r.listener.NotifySettingsChanged(id, r.cache.View(id))
	}
}

// Fetch loads the settings from the store the first time a member is seen.
// A push that lands while the load is in flight wins over the loaded record.
func (r *Reconciler) Fetch(ctx context.Context, id chats.MemberIdCompound) (notify.View, error) {
	if r.cache.IsUnknown(id) {
		record, err := r.store.LoadNotifySettings(ctx, id)
		if err != nil {
			return notify.View{}, err
		}
		if r.cache.ApplyRemoteIfUnknown(id, record) {
			r.changed(id)
		}
	}
	return r.cache.View(id), nil
}

// HandlePayload applies a remote settings push. Payloads for other ops are
// ignored.
func (r *Reconciler) HandlePayload(payload []byte) error {
	op, v, err := events.Unmarshal(payload)
	if err != nil {
		return err
	}
	if op != events.OpUpdateNotifySettings {
		return nil
	}

	ev, ok := v.(*events.UpdateNotifySettings)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedEvent, v)
	}
	if err := ev.Settings.Validate(); err != nil {
		return err
	}

	id := chats.MemberIdCompound{ChatId: ev.ChatId, UserId: ev.UserId}
	if r.cache.ApplyRemote(id, ev.Settings) {
		r.changed(id)
	}
	return nil
}

// Edit applies a local edit and, when it changed anything, saves and
// publishes the serialized settings. If the push fails the member is dropped
// from the cache, so the next call reloads from the store and retries.
func (r *Reconciler) Edit(ctx context.Context, id chats.MemberIdCompound, edit notify.LocalEdit) (bool, notify.View, error) {
	// Load first so the save below doesn't drop fields we never saw
	if _, err := r.Fetch(ctx, id); err != nil {
		return false, notify.View{}, err
	}

	if !r.cache.ApplyLocal(id, edit) {
		return false, r.cache.View(id), nil
	}

	view := r.cache.View(id)
	if err := r.push(ctx, id, view.Settings); err != nil {
		r.cache.Forget(id)
		return false, notify.View{}, err
	}
	r.changed(id)
	return true, view, nil
}

func (r *Reconciler) push(ctx context.Context, id chats.MemberIdCompound, in notify.InputPeerNotifySettings) error {
	if err := r.store.SaveNotifySettings(ctx, id, in); err != nil {
		return err
	}
	if r.pub == nil {
		return nil
	}
	return r.pub.Publish(ctx, events.OpSaveNotifySettings, &events.SaveNotifySettings{
		ChatId:   id.ChatId,
		UserId:   id.UserId,
		Settings: in,
	})
}

// Run handles payloads until ctx is done or payloads is closed.
func (r *Reconciler) Run(ctx context.Context, payloads <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-payloads:
			if !ok {
				return
			}
			if err := r.HandlePayload(payload); err != nil {
				log.Println("Failed handling notify settings payload:", err)
				sentry.CaptureException(err)
			}
		}
	}
}
