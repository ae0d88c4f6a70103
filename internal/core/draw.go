package core

// Hit records a resolved collision for debug visualization: the world-space
// contact point and the collision normal. The log is cleared and repopulated
// on every simulation step.
type Hit struct {
	Pos    Vec
	Normal Vec
}

// BallView is the renderable state of the ball.
type BallView struct {
	Pos    Vec
	Radius float64
	Pierce bool  // Pierce mode active (renderers tint the ball)
	Frozen bool  // Freeze-ball purchase active
	Trail  []Vec // Recent positions, newest last; empty unless trail enabled
}

// BrickView is the renderable state of a live brick.
type BrickView struct {
	Rect  Rect
	Color RGB
	HP    int
}

// BonusView is the renderable state of a falling bonus.
type BonusView struct {
	Rect  Rect
	Color RGB
	Label rune    // Single-character tag for the bonus kind
	Glow  float64 // Pulse phase in radians
}

// ParticleView is the renderable state of a cosmetic particle.
type ParticleView struct {
	Pos   Vec
	Size  float64
	Color RGB
	Alpha float64 // 0..1 fade derived from remaining lifetime
}

// HUDView carries the scalar state the HUD displays.
type HUDView struct {
	Score       int
	Lives       int
	ComboMult   int
	Balance     int
	TotalEarned int
	SpeedCur    float64
	SpeedTarget float64
	Message     string   // Transient shop/economy notice, empty when expired
	Effects     []string // Short tags of active effects, e.g. "MAGNET"
}

// DrawData is the complete world-space export a renderer needs to draw one
// frame. The simulation owns the underlying entities; renderers must treat
// this as read-only.
type DrawData struct {
	World     Vec // Logical world size; renderers derive their own scale
	Ball      BallView
	Paddle    Rect
	Magnet    bool // Draw the magnet field indicator around the paddle
	Bricks    []BrickView
	Bonuses   []BonusView
	Particles []ParticleView
	Hits      []Hit
	HUD       HUDView
	State     GameState
}
