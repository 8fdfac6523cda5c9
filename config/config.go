package config

import "image/color"

// Config holds window-level settings.
type Config struct {
	Width  int
	Height int
}

// ScreenConfig describes the visible window and the simulation frame period.
type ScreenConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	FrameMS float64 `yaml:"frame_ms"` // nominal frame period; dt is measured in these

	// Bad guys outside [scroll-ActiveMargin, scroll+Width+ActiveMargin] do not act.
	ActiveMargin float64 `yaml:"active_margin"`
}

// PhysicsConfig contains the global physics values (pixels per nominal frame).
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MaxDyingFall float64 `yaml:"max_dying_fall"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed        float64 `yaml:"walk_speed"` // reached instantly from rest
	MaxWalkXM        float64 `yaml:"max_walk_xm"`
	MaxRunXM         float64 `yaml:"max_run_xm"`
	WalkAcceleration float64 `yaml:"walk_acceleration"`
	RunAcceleration  float64 `yaml:"run_acceleration"`
	IceAcceleration  float64 `yaml:"ice_acceleration"` // multiplier while standing on ice
	StopDeceleration float64 `yaml:"stop_deceleration"`

	// Skid
	SkidXM          float64 `yaml:"skid_xm"`
	SkidTime        float64 `yaml:"skid_time"`
	ReverseFactor   float64 `yaml:"reverse_factor"`
	SkidStartFactor float64 `yaml:"skid_start_factor"`

	// Jump
	JumpSpeed    float64 `yaml:"jump_speed"`
	RunJumpSpeed float64 `yaml:"run_jump_speed"`
	StompBounce  float64 `yaml:"stomp_bounce"`
	DeathHop     float64 `yaml:"death_hop"`

	// Timers (ms)
	SafeTime       float64 `yaml:"safe_time"`
	InvincibleTime float64 `yaml:"invincible_time"`

	// Lives
	StartingLives int `yaml:"starting_lives"`
	MaxLives      int `yaml:"max_lives"`
	CoinsPerLife  int `yaml:"coins_per_life"`

	// Firing
	MaxBullets int `yaml:"max_bullets"`

	// Holding a stunned shell
	HoldOffsetX float64 `yaml:"hold_offset_x"`
	ThrowOffset float64 `yaml:"throw_offset"`

	// Dimensions
	Width       float64 `yaml:"width"`
	SmallHeight float64 `yaml:"small_height"`
	BigHeight   float64 `yaml:"big_height"`
}

// BadGuyKindConfig contains configuration for a single bad guy kind.
type BadGuyKindConfig struct {
	Name        string     `yaml:"name"`
	WalkSpeed   float64    `yaml:"walk_speed"`
	JumpSpeed   float64    `yaml:"jump_speed"` // non-zero for jumpers
	StompScore  int        `yaml:"stomp_score"`
	KillScore   int        `yaml:"kill_score"`
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Stompable   bool       `yaml:"stompable"`
	HasShell    bool       `yaml:"has_shell"`
	TintColor   color.RGBA `yaml:"-"`
	SquishTimer float64    `yaml:"squish_time"`
}

// BadGuyConfig contains the shared bad guy values and the per-kind table.
type BadGuyConfig struct {
	Kinds map[BadGuyKind]BadGuyKindConfig `yaml:"-"`

	FlatTime      float64 `yaml:"flat_time"`
	KickSpeed     float64 `yaml:"kick_speed"`
	KickGraceTime float64 `yaml:"kick_grace_time"` // a fresh shell does not hurt the kicker
	KickPushRight float64 `yaml:"kick_push_right"`
	KickPushLeft  float64 `yaml:"kick_push_left"`
	HeldLift      float64 `yaml:"held_lift"`
	FallHop       float64 `yaml:"fall_hop"`
	BumpRangeX    float64 `yaml:"bump_range_x"`
	BumpRangeY    float64 `yaml:"bump_range_y"`
}

// ObjectsConfig holds bullets, upgrades and decorations.
type ObjectsConfig struct {
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletSize   float64 `yaml:"bullet_size"`
	UpgradeSpeed float64 `yaml:"upgrade_speed"`
	UpgradeRise  float64 `yaml:"upgrade_rise"`
	HerringHop   float64 `yaml:"herring_hop"`
	BumpHop      float64 `yaml:"bump_hop"`

	BouncyDistroSpeed   float64 `yaml:"bouncy_distro_speed"`
	BouncyDistroGravity float64 `yaml:"bouncy_distro_gravity"`
	BouncyBrickOffset   float64 `yaml:"bouncy_brick_offset"`
	BouncyBrickTime     float64 `yaml:"bouncy_brick_time"`
	BrokenBrickTime     float64 `yaml:"broken_brick_time"`
	BrokenBrickSize     float64 `yaml:"broken_brick_size"`
	FloatingScoreTime   float64 `yaml:"floating_score_time"`
	FloatingScoreRise   float64 `yaml:"floating_score_rise"`
	CoinBrickCoins      int     `yaml:"coin_brick_coins"`
}

// ScoreConfig contains point values.
type ScoreConfig struct {
	Brick int `yaml:"brick"`
	Coin  int `yaml:"coin"`
	Kick  int `yaml:"kick"`
	Shell int `yaml:"shell"` // bad guy knocked out by a kicked shell
}

// LevelConfig holds level geometry values.
type LevelConfig struct {
	EndTiles int `yaml:"end_tiles"` // the level ends this many tiles before its right edge
}

// DebugConfig toggles debug rendering.
type DebugConfig struct {
	DrawBoxes bool `yaml:"draw_boxes"`
	LogEvents bool `yaml:"log_events"`
}

var C *Config
var Screen ScreenConfig
var Physics PhysicsConfig
var Player PlayerConfig
var BadGuy BadGuyConfig
var Objects ObjectsConfig
var Score ScoreConfig
var Level LevelConfig
var Debug DebugConfig

var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	IceBlue    = color.RGBA{R: 170, G: 220, B: 255, A: 255}
	Brown      = color.RGBA{R: 140, G: 80, B: 30, A: 255}
	Gray       = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	DarkGray   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Sky        = color.RGBA{R: 30, G: 40, B: 90, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackAlpha = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Defaults()
}

// Defaults resets every tuning value to the built-in constants.
func Defaults() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Screen = ScreenConfig{
		Width:        640,
		Height:       480,
		FrameMS:      10,
		ActiveMargin: 32,
	}

	Physics = PhysicsConfig{
		Gravity:      0.1,
		MaxFallSpeed: 10.0,
		MaxDyingFall: 18.0,
	}

	Player = PlayerConfig{
		// Movement
		WalkSpeed:        1.0,
		MaxWalkXM:        2.3,
		MaxRunXM:         3.2,
		WalkAcceleration: 0.03,
		RunAcceleration:  0.04,
		IceAcceleration:  0.25,
		StopDeceleration: 1.5,

		// Skid
		SkidXM:          2.0,
		SkidTime:        200,
		ReverseFactor:   2.0,
		SkidStartFactor: 2.5,

		// Jump
		JumpSpeed:    5.2,
		RunJumpSpeed: 5.8,
		StompBounce:  2.0,
		DeathHop:     5.0,

		// Timers
		SafeTime:       1250,
		InvincibleTime: 10000,

		// Lives
		StartingLives: 3,
		MaxLives:      99,
		CoinsPerLife:  100,

		MaxBullets: 2,

		HoldOffsetX: 16,
		ThrowOffset: 24,

		Width:       32,
		SmallHeight: 32,
		BigHeight:   64,
	}

	BadGuy = BadGuyConfig{
		Kinds: map[BadGuyKind]BadGuyKindConfig{
			BadGuyBSOD: {
				Name:        "bsod",
				WalkSpeed:   1.3,
				StompScore:  50,
				KillScore:   50,
				Width:       32,
				Height:      32,
				Stompable:   true,
				TintColor:   color.RGBA{R: 60, G: 90, B: 230, A: 255},
				SquishTimer: 4000,
			},
			BadGuyLaptop: {
				Name:       "laptop",
				WalkSpeed:  1.3,
				StompScore: 25,
				KillScore:  25,
				Width:      32,
				Height:     32,
				Stompable:  true,
				HasShell:   true,
				TintColor:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
			},
			BadGuyMoney: {
				Name:       "money",
				JumpSpeed:  6.0,
				StompScore: 0,
				KillScore:  50,
				Width:      32,
				Height:     32,
				TintColor:  color.RGBA{R: 60, G: 200, B: 60, A: 255},
			},
		},
		FlatTime:      10000,
		KickSpeed:     5.0,
		KickGraceTime: 300,
		KickPushRight: 16,
		KickPushLeft:  32,
		HeldLift:      8,
		FallHop:       4.0,
		BumpRangeX:    32,
		BumpRangeY:    16,
	}

	Objects = ObjectsConfig{
		BulletSpeed:  6.0,
		BulletSize:   4,
		UpgradeSpeed: 2.0,
		UpgradeRise:  0.7,
		HerringHop:   4.0,
		BumpHop:      4.0,

		BouncyDistroSpeed:   2.0,
		BouncyDistroGravity: 0.1,
		BouncyBrickOffset:   8,
		BouncyBrickTime:     180,
		BrokenBrickTime:     200,
		BrokenBrickSize:     16,
		FloatingScoreTime:   1000,
		FloatingScoreRise:   200,
		CoinBrickCoins:      5,
	}

	Score = ScoreConfig{
		Brick: 5,
		Coin:  25,
		Kick:  25,
		Shell: 100,
	}

	Level = LevelConfig{
		EndTiles: 5,
	}

	Debug = DebugConfig{
		DrawBoxes: false,
		LogEvents: false,
	}
}
