package chats

import "errors"

var (
	ErrMemberNotFound = errors.New("chat member not found")
)
