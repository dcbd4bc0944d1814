package journal

import "fmt"

// Settings are the display preferences of the single journal user.
type Settings struct {
	ColorMode          string `json:"colorMode"`
	ThemeColor         string `json:"themeColor"`
	FontSize           string `json:"fontSize"`
	ZoomLevel          int    `json:"zoomLevel"`
	BackgroundGradient string `json:"backgroundGradient"`
}

// SettingsUpdate is a partial update; nil fields are left untouched.
type SettingsUpdate struct {
	ColorMode          *string `json:"colorMode"`
	ThemeColor         *string `json:"themeColor"`
	FontSize           *string `json:"fontSize"`
	ZoomLevel          *int    `json:"zoomLevel"`
	BackgroundGradient *string `json:"backgroundGradient"`
}

const (
	MinZoomLevel = 50
	MaxZoomLevel = 200
)

var (
	colorModes          = []string{"light", "dark", "system"}
	themeColors         = []string{"default", "purple", "blue", "green", "pink"}
	fontSizes           = []string{"small", "medium", "large"}
	backgroundGradients = []string{"orange-blue", "purple-pink", "green-teal", "sunset"}
)

// DefaultSettings returns the settings a new journal starts with.
func DefaultSettings() Settings {
	return Settings{
		ColorMode:          "light",
		ThemeColor:         "default",
		FontSize:           "medium",
		ZoomLevel:          100,
		BackgroundGradient: "orange-blue",
	}
}

// Apply returns s with u's non-nil fields applied, or a ValidationError
// listing every invalid field. s itself is never modified.
func (s Settings) Apply(u SettingsUpdate) (Settings, error) {
	var details []string
	pick := func(field string, dst *string, v *string, allowed []string) {
		if v == nil {
			return
		}
		if !contains(allowed, *v) {
			details = append(details, fmt.Sprintf("%s: %q must be one of %v", field, *v, allowed))
			return
		}
		*dst = *v
	}
	pick("colorMode", &s.ColorMode, u.ColorMode, colorModes)
	pick("themeColor", &s.ThemeColor, u.ThemeColor, themeColors)
	pick("fontSize", &s.FontSize, u.FontSize, fontSizes)
	pick("backgroundGradient", &s.BackgroundGradient, u.BackgroundGradient, backgroundGradients)
	if u.ZoomLevel != nil {
		if *u.ZoomLevel < MinZoomLevel || *u.ZoomLevel > MaxZoomLevel {
			details = append(details, fmt.Sprintf("zoomLevel: %d must be between %d and %d", *u.ZoomLevel, MinZoomLevel, MaxZoomLevel))
		} else {
			s.ZoomLevel = *u.ZoomLevel
		}
	}
	if len(details) > 0 {
		return Settings{}, &ValidationError{Message: "Invalid settings", Details: details}
	}
	return s, nil
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
