package scrollcam

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a scene. DefaultConfig returns the
// compiled-in values; LoadConfig overlays a YAML file on top of them.
type Config struct {
	ViewportWidth  int     `yaml:"viewport_width"`
	ViewportHeight int     `yaml:"viewport_height"`
	Borders        Borders `yaml:"borders"`

	Mode PanMode `yaml:"mode"`
	// Zoom enables compositing through the oversized off-screen buffer.
	Zoom bool `yaml:"zoom"`

	PlayerSpeed   float64 `yaml:"player_speed"`
	KeyboardSpeed float64 `yaml:"keyboard_speed"`
	MouseSpeed    float64 `yaml:"mouse_speed"`
	ZoomStep      float64 `yaml:"zoom_step"`
	WheelZoomStep float64 `yaml:"wheel_zoom_step"`

	// InternalSize is the side length of the square zoom buffer. Large
	// buffers cost fill rate every frame.
	InternalSize int `yaml:"internal_size"`
	FrameRate    int `yaml:"frame_rate"`

	Trees   int `yaml:"trees"`
	TreeMin int `yaml:"tree_min"`
	TreeMax int `yaml:"tree_max"`
	// Seed fixes tree placement. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	ClearColor  string `yaml:"clear_color"`
	GrabPointer bool   `yaml:"grab_pointer"`
	Debug       bool   `yaml:"debug"`
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:  1280,
		ViewportHeight: 720,
		Borders:        Borders{Left: 200, Right: 200, Top: 100, Bottom: 100},
		Mode:           PanMouse,
		Zoom:           true,
		PlayerSpeed:    DefaultPlayerSpeed,
		KeyboardSpeed:  5,
		MouseSpeed:     0.4,
		ZoomStep:       0.1,
		WheelZoomStep:  0.03,
		InternalSize:   2500,
		FrameRate:      60,
		Trees:          20,
		TreeMin:        1000,
		TreeMax:        2000,
		ClearColor:     "#71ddee",
		GrabPointer:    true,
	}
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scrollcam: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig. An empty
// path returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scrollcam: load config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (in %s)", err, path)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", c.ViewportWidth, c.ViewportHeight))
	}
	b := c.Borders
	if b.Left < 0 || b.Right < 0 || b.Top < 0 || b.Bottom < 0 {
		errs = append(errs, fmt.Errorf("borders %+v must not be negative", b))
	}
	if b.Left+b.Right >= float64(c.ViewportWidth) || b.Top+b.Bottom >= float64(c.ViewportHeight) {
		errs = append(errs, fmt.Errorf("borders %+v leave no camera box in a %dx%d viewport", b, c.ViewportWidth, c.ViewportHeight))
	}
	if c.Mode >= panModeCount {
		errs = append(errs, fmt.Errorf("mode %d out of range", uint8(c.Mode)))
	}
	if c.PlayerSpeed < 0 || c.KeyboardSpeed < 0 || c.MouseSpeed < 0 || c.ZoomStep < 0 || c.WheelZoomStep < 0 {
		errs = append(errs, errors.New("speeds and zoom steps must not be negative"))
	}
	if c.Zoom && (c.InternalSize < c.ViewportWidth || c.InternalSize < c.ViewportHeight) {
		errs = append(errs, fmt.Errorf("internal_size %d must cover the viewport", c.InternalSize))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate %d must be positive", c.FrameRate))
	}
	if c.Trees < 0 {
		errs = append(errs, fmt.Errorf("trees %d must not be negative", c.Trees))
	}
	if c.TreeMax < c.TreeMin {
		errs = append(errs, fmt.Errorf("tree range [%d, %d] is empty", c.TreeMin, c.TreeMax))
	}
	if _, err := ParseHexColor(c.ClearColor); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("scrollcam: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// clearColor returns the parsed ClearColor, falling back to white when it
// does not parse. Validate rejects such configs before they get here.
func (c Config) clearColor() Color {
	col, err := ParseHexColor(c.ClearColor)
	if err != nil {
		return ColorWhite
	}
	return col
}

// FrameDelta returns the fixed frame duration in seconds.
func (c Config) FrameDelta() float32 {
	if c.FrameRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float32(c.FrameRate)
}
