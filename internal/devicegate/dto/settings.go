package dto

import "time"

type SettingsInput struct {
	MaxDevices   int    `json:"max_devices"`
	BlockMessage string `json:"block_message"`
}

type SettingsOutput struct {
	MaxDevices   int    `json:"max_devices"`
	BlockMessage string `json:"block_message"`
}

type DeviceOutput struct {
	DeviceID  string    `json:"device_id"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}
