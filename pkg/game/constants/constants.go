package constants

const (
	// StepInterval is the time, in seconds, between snake steps at normal speed
	StepInterval float64 = 0.1
	// BoostedStepInterval is the time, in seconds, between snake steps while boosted
	BoostedStepInterval float64 = 0.05
	// BoostDuration is how long, in seconds, a collected booster speeds up the snake
	BoostDuration float64 = 3.0

	// FoodScore is the score awarded for eating food
	FoodScore int = 1
	// BoosterScore is the score awarded for collecting a booster
	BoosterScore int = 5

	// BoosterLifetime is how long, in seconds, an uncollected booster stays on the grid
	BoosterLifetime float64 = 6.0
	// BoosterSpawnInterval is the time, in seconds, between booster spawns
	BoosterSpawnInterval float64 = 8.0
	// MaxBoosters is the number of boosters allowed on the grid at once
	MaxBoosters int = 2

	// DefaultObstacleCount is the number of obstacles placed at round start
	DefaultObstacleCount int = 10
	// ObstacleSafeDistance is the Manhattan distance around the snake's start kept clear of obstacles
	ObstacleSafeDistance int = 4

	// InputBufferSize is the number of direction changes buffered between steps
	InputBufferSize int = 4
)
