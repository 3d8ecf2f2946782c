package camera

// Preset names for common configurations
const (
	PresetDefault = "default"
	PresetVGA     = "vga"
	PresetNight   = "night"
	PresetBright  = "bright"
)

// Presets returns all available preset configurations.
func Presets() map[string]Config {
	return map[string]Config{
		PresetDefault: DefaultConfig(),
		PresetVGA:     VGAConfig(),
		PresetNight:   NightModeConfig(),
		PresetBright:  BrightModeConfig(),
	}
}

// PresetNames returns the list of available preset names.
func PresetNames() []string {
	return []string{
		PresetDefault,
		PresetVGA,
		PresetNight,
		PresetBright,
	}
}

// GetPreset returns a preset config by name, or nil if not found.
func GetPreset(name string) *Config {
	presets := Presets()
	if cfg, ok := presets[name]; ok {
		return &cfg
	}
	return nil
}

// VGAConfig captures at 640x480.
// Frames are still scaled to the working resolution by the source.
func VGAConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 640
	cfg.Height = 480
	return cfg
}

// NightModeConfig returns configuration for dim rooms.
// Lower framerate lets the driver use longer exposures.
func NightModeConfig() Config {
	cfg := DefaultConfig()
	cfg.Framerate = 15
	cfg.Brightness = 0.6
	return cfg
}

// BrightModeConfig returns configuration for bright scenes.
// A short fixed exposure keeps ball colors from washing out.
func BrightModeConfig() Config {
	cfg := DefaultConfig()
	cfg.Brightness = 0.4
	cfg.Exposure = 100
	return cfg
}
