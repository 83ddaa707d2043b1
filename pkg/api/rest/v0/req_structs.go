package v0_rest

type UpdateNotifySettingsReq struct {
	MuteFor *int  `json:"mute_for" validate:"omitempty,min=0"`
	Silent  *bool `json:"silent"`
}
