package game

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/grid"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// GameManager owns one round of snake: the snake, food, obstacles and
// boosters, and advances them on a fixed step interval.
type GameManager struct {
	roundID        string
	mapping        grid.Mapping
	collisionSpace *resolv.Space
	inputQueue     queue.Queue
	rand           *rand.Rand

	snake      *Snake
	headObject *resolv.Object
	probe      *resolv.Object
	food       grid.Point
	foodObject *resolv.Object
	obstacles  *Obstacles
	boosters   *Boosters

	score          int
	stepTimer      float64
	boostRemaining float64
	boosterTimer   float64
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// GridWidth is the number of grid columns.
	GridWidth int
	// GridHeight is the number of grid rows.
	GridHeight int
	// ObstacleCount is the number of obstacles placed at round start.
	ObstacleCount int
	// InputQueue buffers direction changes between steps.
	InputQueue queue.Queue
	// Seed seeds the placement of food, obstacles and boosters.
	Seed int64
}

func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	if opts.GridWidth <= 0 || opts.GridHeight <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", opts.GridWidth, opts.GridHeight)
	}
	inputQueue := opts.InputQueue
	if inputQueue == nil {
		inputQueue = queue.NewInMemoryQueue(constants.InputBufferSize)
	}

	start := grid.Point{X: opts.GridWidth / 2, Y: opts.GridHeight / 2}
	gm := &GameManager{
		roundID:        uuid.New().String(),
		mapping:        grid.NewMapping(opts.GridWidth, opts.GridHeight, opts.GridWidth, opts.GridHeight),
		collisionSpace: NewCollisionSpace(opts.GridWidth, opts.GridHeight),
		inputQueue:     inputQueue,
		rand:           rand.New(rand.NewSource(opts.Seed)),
		snake:          NewSnake(start, types.DirectionUp),
		obstacles:      NewObstacles(),
		boosters:       NewBoosters(),
	}

	gm.headObject = NewCellObject(start, types.CollisionSpaceTagSnake)
	gm.probe = NewCellObject(start, types.CollisionSpaceTagProbe)
	gm.collisionSpace.Add(gm.headObject, gm.probe)

	for i := 0; i < opts.ObstacleCount; i++ {
		p, ok := gm.findFreeCell(func(p grid.Point) bool {
			return manhattan(p, start) > constants.ObstacleSafeDistance
		})
		if !ok {
			log.Warn("Round %s: no free cell for obstacle %d of %d", gm.roundID, i+1, opts.ObstacleCount)
			break
		}
		object := NewCellObject(p, types.CollisionSpaceTagObstacle)
		gm.collisionSpace.Add(object)
		gm.obstacles.add(p, object)
	}

	if err := gm.placeFood(); err != nil {
		return nil, fmt.Errorf("failed to place food: %v", err)
	}

	log.Info("Round %s started on %dx%d grid with %d obstacles", gm.roundID, opts.GridWidth, opts.GridHeight, gm.obstacles.Len())
	return gm, nil
}

func (gm *GameManager) RoundID() string {
	return gm.roundID
}

func (gm *GameManager) Snake() *Snake {
	return gm.snake
}

func (gm *GameManager) Food() grid.Point {
	return gm.food
}

func (gm *GameManager) Obstacles() *Obstacles {
	return gm.obstacles
}

func (gm *GameManager) Boosters() *Boosters {
	return gm.boosters
}

func (gm *GameManager) Score() int {
	return gm.score
}

// Boosted reports whether a collected booster is still speeding up the snake.
func (gm *GameManager) Boosted() bool {
	return gm.boostRemaining > 0
}

func (gm *GameManager) GameOver() bool {
	return !gm.snake.Alive()
}

// QueueDirection buffers a direction change to be applied on a later step.
func (gm *GameManager) QueueDirection(direction types.Direction) {
	if err := gm.inputQueue.Enqueue(direction); err != nil {
		log.Trace("Dropped direction %s: %v", direction, err)
	}
}

// Update advances the round by dt seconds.
func (gm *GameManager) Update(dt float64) {
	if gm.GameOver() {
		return
	}

	gm.updateBoosters(dt)

	if gm.boostRemaining > 0 {
		gm.boostRemaining -= dt
	}

	gm.stepTimer += dt
	for gm.stepTimer >= gm.stepInterval() {
		gm.stepTimer -= gm.stepInterval()
		gm.step()
		if gm.GameOver() {
			log.Info("Round %s over with score %d", gm.roundID, gm.score)
			gm.logState()
			return
		}
	}
}

func (gm *GameManager) stepInterval() float64 {
	if gm.boostRemaining > 0 {
		return constants.BoostedStepInterval
	}
	return constants.StepInterval
}

// step applies at most one buffered direction change and moves the snake one cell.
func (gm *GameManager) step() {
	for {
		item, ok := gm.inputQueue.Dequeue()
		if !ok {
			break
		}
		direction, ok := item.(types.Direction)
		if !ok {
			log.Error("Failed to cast input to types.Direction")
			continue
		}
		if gm.snake.SetDirection(direction) {
			break
		}
	}

	next := gm.snake.Next(gm.mapping)
	head := gm.snake.Head()
	dx, dy := next.X-head.X, next.Y-head.Y

	hitObstacle := cellHasTags(gm.headObject, dx, dy, types.CollisionSpaceTagObstacle)
	ateFood := cellHasTags(gm.headObject, dx, dy, types.CollisionSpaceTagFood)
	hitBooster := cellHasTags(gm.headObject, dx, dy, types.CollisionSpaceTagBooster)

	gm.snake.Step(gm.mapping)
	moveTo(gm.headObject, gm.snake.Head())

	if hitObstacle {
		gm.snake.Kill()
		return
	}
	if !gm.snake.Alive() {
		return
	}

	if ateFood {
		gm.score += constants.FoodScore
		gm.snake.Grow(1)
		if err := gm.placeFood(); err != nil {
			log.Warn("Round %s: %v", gm.roundID, err)
		}
	}

	if hitBooster {
		if object := gm.boosters.remove(next); object != nil {
			gm.collisionSpace.Remove(object)
		}
		gm.score += constants.BoosterScore
		gm.boostRemaining = constants.BoostDuration
		log.Debug("Round %s: booster collected at %v", gm.roundID, next)
	}
}

func (gm *GameManager) updateBoosters(dt float64) {
	for _, object := range gm.boosters.age(dt) {
		gm.collisionSpace.Remove(object)
	}

	gm.boosterTimer += dt
	if gm.boosterTimer < constants.BoosterSpawnInterval {
		return
	}
	gm.boosterTimer = 0

	if gm.boosters.Len() >= constants.MaxBoosters {
		return
	}
	p, ok := gm.findFreeCell(nil)
	if !ok {
		return
	}
	object := NewCellObject(p, types.CollisionSpaceTagBooster)
	gm.collisionSpace.Add(object)
	gm.boosters.add(p, constants.BoosterLifetime, object)
}

func (gm *GameManager) placeFood() error {
	p, ok := gm.findFreeCell(nil)
	if !ok {
		return fmt.Errorf("no free cell for food")
	}
	gm.food = p
	if gm.foodObject == nil {
		gm.foodObject = NewCellObject(p, types.CollisionSpaceTagFood)
		gm.collisionSpace.Add(gm.foodObject)
		return nil
	}
	moveTo(gm.foodObject, p)
	return nil
}

// findFreeCell picks a random cell not occupied by the snake or any collision
// object, falling back to a full scan when random picks keep colliding.
func (gm *GameManager) findFreeCell(accept func(grid.Point) bool) (grid.Point, bool) {
	width, height := gm.mapping.GridSize()
	free := func(p grid.Point) bool {
		if gm.snake.Occupies(p) {
			return false
		}
		if accept != nil && !accept(p) {
			return false
		}
		moveTo(gm.probe, p)
		return !cellHasTags(gm.probe, 0, 0, occupyingTags...)
	}

	for attempt := 0; attempt < width*height; attempt++ {
		p := grid.Point{X: gm.rand.Intn(width), Y: gm.rand.Intn(height)}
		if free(p) {
			return p, true
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if p := (grid.Point{X: x, Y: y}); free(p) {
				return p, true
			}
		}
	}
	return grid.Point{}, false
}

func (gm *GameManager) logState() {
	b, err := json.Marshal(gm.State())
	if err != nil {
		log.Error("Failed to marshal state of round %s: %v", gm.roundID, err)
		return
	}
	log.Debug("Round %s final state: %s", gm.roundID, b)
}

// State returns a snapshot of the round.
func (gm *GameManager) State() *types.GameState {
	return &types.GameState{
		RoundID:   gm.roundID,
		Score:     gm.score,
		Alive:     gm.snake.Alive(),
		Head:      gm.snake.Head(),
		Body:      gm.snake.Body(),
		Food:      gm.food,
		Obstacles: gm.obstacles.Coordinates(),
		Boosters:  gm.boosters.List(),
		Boosted:   gm.Boosted(),
	}
}

func manhattan(a, b grid.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
