package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WaveSpec describes the invader formation geometry and pacing for one wave
// before difficulty scaling is applied.
type WaveSpec struct {
	Rows              int         `yaml:"rows"`
	Columns           int         `yaml:"columns"`
	SidePadding       float32     `yaml:"side_padding"`
	BottomPadding     float32     `yaml:"bottom_padding"`
	HorizontalSpacing float32     `yaml:"horizontal_spacing"`
	VerticalSpacing   float32     `yaml:"vertical_spacing"`
	Invader           InvaderSpec `yaml:"invader"`
	// FireDelayTicks bounds the random pre-fire delay for return fire:
	// each request waits a uniform [0, FireDelayTicks) ticks.
	FireDelayTicks int `yaml:"fire_delay_ticks"`
	KillScore      int `yaml:"kill_score"`
	ExtraLifeScore int `yaml:"extra_life_score"`
}

// InvaderSpec describes a single formation cell.
type InvaderSpec struct {
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	MoveSpeed   float32 `yaml:"move_speed"`
	DescendStep float32 `yaml:"descend_step"`
}

// ShipSpec describes the player ship.
type ShipSpec struct {
	Width     float32 `yaml:"width"`
	Height    float32 `yaml:"height"`
	MoveSpeed float32 `yaml:"move_speed"`
	Lives     int     `yaml:"lives"`
	HitIFrame int     `yaml:"hit_iframe_ticks"`
	Sprite    string  `yaml:"sprite"`
}

// BulletSpec describes one shooter category's projectiles. Speed is signed:
// negative travels up the screen.
type BulletSpec struct {
	Image         string  `yaml:"image"`
	Width         float32 `yaml:"width"`
	Height        float32 `yaml:"height"`
	Speed         float32 `yaml:"speed"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

// BulletsSpec holds the per-category projectile table.
type BulletsSpec struct {
	Player BulletSpec `yaml:"player"`
	Enemy  BulletSpec `yaml:"enemy"`
}

// Specs aggregates every tuning file the game loads at startup and on
// hot reload.
type Specs struct {
	Wave    WaveSpec
	Ship    ShipSpec
	Bullets BulletsSpec
}

// LoadSpec loads and unmarshals one YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadAll loads the full tuning set.
func LoadAll() (*Specs, error) {
	wave, err := LoadSpec[WaveSpec]("wave.yaml")
	if err != nil {
		return nil, err
	}
	ship, err := LoadSpec[ShipSpec]("ship.yaml")
	if err != nil {
		return nil, err
	}
	bullets, err := LoadSpec[BulletsSpec]("bullets.yaml")
	if err != nil {
		return nil, err
	}
	s := &Specs{Wave: wave, Ship: ship, Bullets: bullets}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects specs that would produce a degenerate game.
func (s *Specs) Validate() error {
	if s == nil {
		return fmt.Errorf("prefabs: nil specs")
	}
	if s.Wave.Rows <= 0 || s.Wave.Columns <= 0 {
		return fmt.Errorf("prefabs: wave grid %dx%d must be positive", s.Wave.Rows, s.Wave.Columns)
	}
	if s.Wave.Invader.Width <= 0 || s.Wave.Invader.Height <= 0 {
		return fmt.Errorf("prefabs: invader size must be positive")
	}
	if s.Wave.FireDelayTicks <= 0 {
		return fmt.Errorf("prefabs: fire_delay_ticks must be positive")
	}
	if s.Ship.Width <= 0 || s.Ship.Height <= 0 || s.Ship.Lives <= 0 {
		return fmt.Errorf("prefabs: ship spec incomplete")
	}
	if s.Bullets.Player.Speed >= 0 {
		return fmt.Errorf("prefabs: player bullet speed %v must be negative (upward)", s.Bullets.Player.Speed)
	}
	if s.Bullets.Enemy.Speed <= 0 {
		return fmt.Errorf("prefabs: enemy bullet speed %v must be positive (downward)", s.Bullets.Enemy.Speed)
	}
	return nil
}
