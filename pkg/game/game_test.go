package game

import (
	"bytes"
	"os"
	"testing"

	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/grid"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGameManager(t *testing.T, obstacleCount int) *GameManager {
	t.Helper()
	gm, err := NewGameManager(NewGameManagerOptions{
		GridWidth:     32,
		GridHeight:    24,
		ObstacleCount: obstacleCount,
		InputQueue:    queue.NewInMemoryQueue(constants.InputBufferSize),
		Seed:          1,
	})
	require.NoError(t, err)
	return gm
}

// setFood moves the food to p, bypassing random placement.
func setFood(gm *GameManager, p grid.Point) {
	gm.food = p
	moveTo(gm.foodObject, p)
}

func addObstacle(gm *GameManager, p grid.Point) {
	object := NewCellObject(p, types.CollisionSpaceTagObstacle)
	gm.collisionSpace.Add(object)
	gm.obstacles.add(p, object)
}

func addBooster(gm *GameManager, p grid.Point, lifetime float64) {
	object := NewCellObject(p, types.CollisionSpaceTagBooster)
	gm.collisionSpace.Add(object)
	gm.boosters.add(p, lifetime, object)
}

func TestNewGameManager_invalidGrid(t *testing.T) {
	_, err := NewGameManager(NewGameManagerOptions{GridWidth: 0, GridHeight: 24})
	assert.Error(t, err)
}

func TestNewGameManager_placement(t *testing.T) {
	gm := newTestGameManager(t, 10)
	start := grid.Point{X: 16, Y: 12}

	assert.NotEmpty(t, gm.RoundID())
	assert.Equal(t, start, gm.Snake().Head())
	assert.Equal(t, 10, gm.Obstacles().Len())

	seen := map[grid.Point]bool{}
	for _, p := range gm.Obstacles().Coordinates() {
		assert.False(t, seen[p], "duplicate obstacle at %v", p)
		seen[p] = true
		assert.Greater(t, manhattan(p, start), constants.ObstacleSafeDistance)
	}
	assert.False(t, gm.Obstacles().Contains(gm.Food()))
	assert.NotEqual(t, start, gm.Food())
}

func TestNewGameManager_noRoomForObstacles(t *testing.T) {
	gm, err := NewGameManager(NewGameManagerOptions{
		GridWidth:     3,
		GridHeight:    3,
		ObstacleCount: 100,
	})
	require.NoError(t, err)
	assert.Zero(t, gm.Obstacles().Len())
}

func TestGameManager_Update(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(gm *GameManager)
		steps     int
		wantHead  grid.Point
		wantScore int
		wantAlive bool
		wantSize  int
	}{
		{
			name: "moves one cell per step",
			setup: func(gm *GameManager) {
				setFood(gm, grid.Point{X: 0, Y: 0})
			},
			steps:     3,
			wantHead:  grid.Point{X: 16, Y: 9},
			wantScore: 0,
			wantAlive: true,
			wantSize:  1,
		},
		{
			name: "eats food and grows",
			setup: func(gm *GameManager) {
				setFood(gm, grid.Point{X: 16, Y: 10})
			},
			steps:     3,
			wantHead:  grid.Point{X: 16, Y: 9},
			wantScore: constants.FoodScore,
			wantAlive: true,
			wantSize:  2,
		},
		{
			name: "dies on obstacle",
			setup: func(gm *GameManager) {
				setFood(gm, grid.Point{X: 0, Y: 0})
				addObstacle(gm, grid.Point{X: 16, Y: 10})
			},
			steps:     5,
			wantHead:  grid.Point{X: 16, Y: 10},
			wantScore: 0,
			wantAlive: false,
			wantSize:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gm := newTestGameManager(t, 0)
			tt.setup(gm)
			for i := 0; i < tt.steps; i++ {
				gm.Update(constants.StepInterval)
			}
			assert.Equal(t, tt.wantHead, gm.Snake().Head())
			assert.Equal(t, tt.wantScore, gm.Score())
			assert.Equal(t, tt.wantAlive, gm.Snake().Alive())
			assert.Equal(t, !tt.wantAlive, gm.GameOver())
			assert.Equal(t, tt.wantSize, gm.Snake().Size())
		})
	}
}

func TestGameManager_foodRespawns(t *testing.T) {
	gm := newTestGameManager(t, 0)
	setFood(gm, grid.Point{X: 16, Y: 11})

	gm.Update(constants.StepInterval)

	assert.Equal(t, constants.FoodScore, gm.Score())
	assert.NotEqual(t, grid.Point{X: 16, Y: 11}, gm.Food())
	assert.False(t, gm.Snake().Occupies(gm.Food()))
}

func TestGameManager_QueueDirection(t *testing.T) {
	gm := newTestGameManager(t, 0)
	setFood(gm, grid.Point{X: 0, Y: 0})

	gm.QueueDirection(types.DirectionLeft)
	gm.QueueDirection(types.DirectionDown)

	gm.Update(constants.StepInterval)
	assert.Equal(t, grid.Point{X: 15, Y: 12}, gm.Snake().Head())

	gm.Update(constants.StepInterval)
	assert.Equal(t, grid.Point{X: 15, Y: 13}, gm.Snake().Head())
}

func TestGameManager_booster(t *testing.T) {
	gm := newTestGameManager(t, 0)
	setFood(gm, grid.Point{X: 0, Y: 0})
	addBooster(gm, grid.Point{X: 16, Y: 11}, constants.BoosterLifetime)

	gm.Update(constants.StepInterval)

	assert.Equal(t, constants.BoosterScore, gm.Score())
	assert.True(t, gm.Boosted())
	assert.Zero(t, gm.Boosters().Len())

	// boosted snakes take two steps in one normal interval
	gm.Update(constants.StepInterval)
	assert.Equal(t, grid.Point{X: 16, Y: 9}, gm.Snake().Head())

	for i := 0; i < 40; i++ {
		gm.Update(constants.StepInterval)
	}
	assert.False(t, gm.Boosted())
}

func TestGameManager_boosterExpires(t *testing.T) {
	gm := newTestGameManager(t, 0)
	setFood(gm, grid.Point{X: 0, Y: 0})
	addBooster(gm, grid.Point{X: 2, Y: 2}, 0.15)

	gm.Update(constants.StepInterval)
	assert.Equal(t, 1, gm.Boosters().Len())

	gm.Update(constants.StepInterval)
	assert.Zero(t, gm.Boosters().Len())

	moveTo(gm.probe, grid.Point{X: 2, Y: 2})
	assert.False(t, cellHasTags(gm.probe, 0, 0, types.CollisionSpaceTagBooster))
}

func TestGameManager_boosterSpawns(t *testing.T) {
	gm := newTestGameManager(t, 0)
	for i := 0; i < int(constants.BoosterSpawnInterval); i++ {
		gm.Update(1.0)
	}
	assert.True(t, gm.Boosters().Len() == 1 || gm.Boosted())
}

func TestGameManager_State(t *testing.T) {
	gm := newTestGameManager(t, 3)
	state := gm.State()

	assert.Equal(t, gm.RoundID(), state.RoundID)
	assert.True(t, state.Alive)
	assert.Equal(t, gm.Snake().Head(), state.Head)
	assert.Equal(t, gm.Food(), state.Food)
	assert.Len(t, state.Obstacles, 3)
	assert.Empty(t, state.Boosters)
}

func TestGameManager_logsFinalState(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetDefaultLogger(log.New(buf, "", 0, log.LogLevelDebug))
	defer log.SetDefaultLogger(log.New(os.Stdout, "", log.DefaultLoggerFlag, log.LogLevelDebug))

	gm := newTestGameManager(t, 0)
	head := gm.Snake().Head()
	addObstacle(gm, grid.Point{X: head.X, Y: head.Y - 1})

	gm.Update(constants.StepInterval)
	require.True(t, gm.GameOver())

	assert.Contains(t, buf.String(), "Round "+gm.RoundID()+" final state")
	assert.Contains(t, buf.String(), `\"Alive\":false`)
}
