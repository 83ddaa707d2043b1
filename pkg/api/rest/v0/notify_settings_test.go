package v0_rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meower-media/notify/pkg/chats"
	"github.com/meower-media/notify/pkg/notify"
)

type fakeService struct {
	cache    *notify.Cache[chats.MemberIdCompound]
	err      error
	lastId   chats.MemberIdCompound
	lastEdit notify.LocalEdit
}

func newFakeService() *fakeService {
	return &fakeService{
		cache: notify.NewCache[chats.MemberIdCompound](notify.ClockFunc(func() int64 { return 1000 })),
	}
}

func (s *fakeService) Fetch(ctx context.Context, id chats.MemberIdCompound) (notify.View, error) {
	s.lastId = id
	if s.err != nil {
		return notify.View{}, s.err
	}
	return s.cache.View(id), nil
}

func (s *fakeService) Edit(ctx context.Context, id chats.MemberIdCompound, edit notify.LocalEdit) (bool, notify.View, error) {
	s.lastId = id
	s.lastEdit = edit
	if s.err != nil {
		return false, notify.View{}, s.err
	}
	changed := s.cache.ApplyLocal(id, edit)
	return changed, s.cache.View(id), nil
}

func do(t *testing.T, svc Service, method string, path string, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	Router(svc).ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, decoded
}

func TestGetNotifySettingsUnknown(t *testing.T) {
	svc := newFakeService()
	rec, body := do(t, svc, http.MethodGet, "/chats/5/members/7/notify", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastId != (chats.MemberIdCompound{ChatId: 5, UserId: 7}) {
		t.Fatalf("lastId = %+v", svc.lastId)
	}
	if body["known"] != false || body["muted"] != false || body["error"] != false {
		t.Fatalf("unexpected body %v", body)
	}
	if _, ok := body["changed"]; ok {
		t.Fatal("GET should not report changed")
	}
}

func TestUpdateNotifySettingsMute(t *testing.T) {
	svc := newFakeService()
	rec, body := do(t, svc, http.MethodPatch, "/chats/5/members/7/notify", `{"mute_for":3600}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
	if body["changed"] != true || body["muted"] != true {
		t.Fatalf("unexpected body %v", body)
	}
	settings := body["settings"].(map[string]interface{})
	if settings["mute_until"] != float64(4600) {
		t.Fatalf("mute_until = %v", settings["mute_until"])
	}
	if svc.lastEdit.SilentPosts != nil {
		t.Fatal("silent should be left out of the edit")
	}

	_, body = do(t, svc, http.MethodPatch, "/chats/5/members/7/notify", `{"mute_for":3600}`)
	if body["changed"] != false {
		t.Fatalf("repeat edit changed = %v", body["changed"])
	}
}

func TestUpdateNotifySettingsValidation(t *testing.T) {
	svc := newFakeService()

	rec, body := do(t, svc, http.MethodPatch, "/chats/5/members/7/notify", `{"mute_for":-1}`)
	if rec.Code != http.StatusBadRequest || body["type"] != ErrBadRequest.Error() {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
	fields, _ := body["fields"].(map[string]interface{})
	if _, ok := fields["mute_for"]; !ok {
		t.Fatalf("expected mute_for field error, got %v", body["fields"])
	}

	rec, _ = do(t, svc, http.MethodPatch, "/chats/5/members/7/notify", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNotifySettingsBadIds(t *testing.T) {
	svc := newFakeService()
	rec, body := do(t, svc, http.MethodGet, "/chats/abc/members/7/notify", "")
	if rec.Code != http.StatusBadRequest || body["type"] != ErrBadRequest.Error() {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
}

func TestNotifySettingsServiceErrors(t *testing.T) {
	svc := newFakeService()

	svc.err = chats.ErrMemberNotFound
	rec, body := do(t, svc, http.MethodGet, "/chats/5/members/7/notify", "")
	if rec.Code != http.StatusNotFound || body["type"] != ErrNotFound.Error() {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}

	svc.err = errors.New("mongo is down")
	rec, body = do(t, svc, http.MethodPatch, "/chats/5/members/7/notify", `{"silent":true}`)
	if rec.Code != http.StatusInternalServerError || body["type"] != ErrInternal.Error() {
		t.Fatalf("status = %d, body %v", rec.Code, body)
	}
}
