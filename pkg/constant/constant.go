package constant

const (
	// SettingsRowID is the fixed primary key of the singleton settings row.
	SettingsRowID = 1

	DefaultMaxDevices   = 2
	DefaultBlockMessage = "Limite de dispositivos atingido. Saia de outro dispositivo para continuar."
)
