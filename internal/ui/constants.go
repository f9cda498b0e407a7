package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 650
)

// Dialog sizing
const (
	ProjectDialogWidth   float32 = 480
	ProjectDialogHeight  float32 = 320
	SearchDialogWidth    float32 = 360
	SearchDialogHeight   float32 = 160
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 400
)

// Text fragments
const (
	SearchTermFormat = "%s \"%s\""
	ErrorDetailSep   = "\n\n"
)
