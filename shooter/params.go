package shooter

const (
	playerWidth        = 40
	playerHeight       = 40
	playerSpeed        = 5.0
	playerHP           = 3
	playerFireCooldown = 10
	invulnerableFrames = 60

	playerBulletWidth  = 4
	playerBulletHeight = 12
	playerBulletSpeed  = -10.0

	// Bullets live until they are this far past a vertical edge.
	bulletMargin = 50.0

	// Hitbox insets relative to the player's visual box.
	bulletHitInset  = 10.0
	contactHitInset = 5.0

	baseEnemySpeed    = 2.0
	maxSpawnInterval  = 60.0
	minSpawnInterval  = 20.0
	spawnIntervalStep = 5.0

	scorePerDifficultyStep = 1000
	difficultyStep         = 0.2

	hudInterval = 5
)

// Limits caps the entity stores. Zero means unbounded.
type Limits struct {
	Bullets   int
	Enemies   int
	Particles int
}

// Params describes the arena a match is played in.
type Params struct {
	ArenaWidth  float64
	ArenaHeight float64
	StarCount   int
	Limits      Limits
}

func DefaultParams() Params {
	return Params{
		ArenaWidth:  480,
		ArenaHeight: 640,
		StarCount:   100,
		Limits: Limits{
			Bullets:   512,
			Enemies:   128,
			Particles: 2048,
		},
	}
}

// room returns how many more items fit in a store of size n.
func room(n, limit int) int {
	if limit <= 0 {
		return int(^uint(0) >> 1)
	}
	return max(limit-n, 0)
}
