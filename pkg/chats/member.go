package chats

import (
	"context"
	"errors"

	"github.com/meower-media/notify/pkg/notify"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Member struct {
	Id                   MemberIdCompound     `bson:"_id" msgpack:"id"`
	NotificationSettings NotificationSettings `bson:"notification_settings" msgpack:"notification_settings"`
}

type MemberIdCompound struct {
	ChatId int64 `bson:"chat" msgpack:"chat"`
	UserId int64 `bson:"user" msgpack:"user"`
}

// Store reads and writes member notification settings in MongoDB.
type Store struct {
	members *mongo.Collection
}

func NewStore(members *mongo.Collection) *Store {
	return &Store{members: members}
}

func (s *Store) LoadNotifySettings(ctx context.Context, id MemberIdCompound) (notify.PeerNotifySettings, error) {
	var member Member
	err := s.members.FindOne(
		ctx,
		bson.M{"_id": bson.M{"chat": id.ChatId, "user": id.UserId}},
	).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notify.PeerNotifySettings{}, ErrMemberNotFound
	} else if err != nil {
		return notify.PeerNotifySettings{}, err
	}
	return member.NotificationSettings.Record(), nil
}

func (s *Store) SaveNotifySettings(ctx context.Context, id MemberIdCompound, in notify.InputPeerNotifySettings) error {
	res, err := s.members.UpdateOne(
		ctx,
		bson.M{"_id": bson.M{"chat": id.ChatId, "user": id.UserId}},
		notifySettingsUpdate(in),
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// notifySettingsUpdate sets the flagged fields and unsets the others, so a
// later load returns exactly what was saved.
func notifySettingsUpdate(in notify.InputPeerNotifySettings) bson.M {
	s := FromInput(in)
	set := bson.M{}
	unset := bson.M{}

	field := func(name string, present bool, v interface{}) {
		key := "notification_settings." + name
		if present {
			set[key] = v
		} else {
			unset[key] = ""
		}
	}
	field("show_previews", s.ShowPreviews != nil, s.ShowPreviews)
	field("silent", s.Silent != nil, s.Silent)
	field("muted_until", s.MutedUntil != nil, s.MutedUntil)
	field("sound", s.Sound != nil, s.Sound)

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}
