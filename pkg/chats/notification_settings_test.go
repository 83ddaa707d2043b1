package chats

import (
	"testing"

	"github.com/meower-media/notify/pkg/notify"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRecordEmpty(t *testing.T) {
	var s NotificationSettings
	r := s.Record()
	if r.Type != notify.RecordPeerNotifySettings {
		t.Fatalf("Type = %d", r.Type)
	}
	if r.Flags != 0 {
		t.Fatalf("Flags = %b, want 0", r.Flags)
	}
}

func TestFromInputRecordRoundTrip(t *testing.T) {
	in := notify.InputPeerNotifySettings{
		Flags:        notify.InputFlagMuteUntil | notify.InputFlagSound,
		ShowPreviews: true,
		MuteUntil:    4600,
		Sound:        notify.NotificationSound{Type: notify.SoundRingtone, Id: 42},
	}
	s := FromInput(in)
	if s.ShowPreviews != nil || s.Silent != nil {
		t.Fatalf("unflagged fields must not be stored: %+v", s)
	}

	r := s.Record()
	if r.Flags != notify.FlagMuteUntil|notify.FlagOtherSound {
		t.Fatalf("Flags = %b", r.Flags)
	}
	if r.MuteUntil != 4600 || r.OtherSound != in.Sound {
		t.Fatalf("unexpected record %+v", r)
	}

	tracker := notify.NewSettings(nil)
	tracker.ApplyRemote(r)
	if got := tracker.Serialize(); got.Flags != in.Flags || got.MuteUntil != in.MuteUntil || got.Sound != in.Sound {
		t.Fatalf("tracker serialized %+v, want %+v", got, in)
	}
}

func TestNotifySettingsUpdate(t *testing.T) {
	update := notifySettingsUpdate(notify.InputPeerNotifySettings{
		Flags:  notify.InputFlagSilent,
		Silent: true,
	})

	set, ok := update["$set"].(bson.M)
	if !ok || len(set) != 1 {
		t.Fatalf("$set = %v", update["$set"])
	}
	if v, ok := set["notification_settings.silent"].(*bool); !ok || !*v {
		t.Fatalf("silent = %v", set["notification_settings.silent"])
	}

	unset, ok := update["$unset"].(bson.M)
	if !ok || len(unset) != 3 {
		t.Fatalf("$unset = %v", update["$unset"])
	}
	for _, key := range []string{"show_previews", "muted_until", "sound"} {
		if _, ok := unset["notification_settings."+key]; !ok {
			t.Fatalf("expected %s to be unset", key)
		}
	}
}

func TestNotifySettingsUpdateDefaultRecord(t *testing.T) {
	update := notifySettingsUpdate(notify.NewSettings(nil).Serialize())
	if _, ok := update["$set"]; ok {
		t.Fatal("default record should not set anything")
	}
	if unset := update["$unset"].(bson.M); len(unset) != 4 {
		t.Fatalf("expected all fields unset, got %v", unset)
	}
}
