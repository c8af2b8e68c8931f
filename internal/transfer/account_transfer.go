package transfer

type PlanSelection struct {
	Plan string `json:"plan"`
}

type SettingsUpdate struct {
	Language string `json:"language"`
	Timezone string `json:"timezone"`
}

type UnreadCount struct {
	Unread int `json:"unread"`
}

type Cleared struct {
	Removed int64 `json:"removed"`
}
