package domain

type Settings struct {
	MaxDevices   int
	BlockMessage string
}
