package system

import (
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/grid"
)

const (
	clockwise        = -1.0
	counterClockwise = 1.0
)

// FireRequest asks the projectile system for a new shot.
type FireRequest struct {
	Tower     types.EntityID
	Position  grid.Vec2
	Direction grid.Vec2 // unit vector
}

// TargetingSystem runs the per-tower acquire / slew / fire state machine.
//
// A tower keeps its target while the enemy exists and stays within range;
// otherwise it takes the closest enemy in range, the oldest one on equal
// distance. The turret then turns by at most AngularSpeed per tick along the
// shorter arc and may only fire once the aim is within that budget.
type TargetingSystem struct {
	ecs             *entity.ECS
	maxDistanceSq   float64
	angularSpeed    float64
	fireCooldown    float64
	eventDispatcher *event.Dispatcher
}

func NewTargetingSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher) *TargetingSystem {
	return &TargetingSystem{
		ecs:             ecs,
		maxDistanceSq:   tuning.TowerMaxDistance * tuning.TowerMaxDistance,
		angularSpeed:    tuning.AngularSpeed,
		fireCooldown:    tuning.TowerFireCooldown,
		eventDispatcher: eventDispatcher,
	}
}

// Update steps every tower once and returns the shots fired this tick.
// Projectiles are not created here so the enemy scan never sees a
// half-updated world.
func (s *TargetingSystem) Update(ctx *Context, deltaTime float64) []FireRequest {
	var shots []FireRequest
	s.ecs.Towers.Each(func(id types.EntityID, tower *component.Tower) bool {
		pos, ok := s.ecs.Positions.Get(id)
		if !ok {
			return true
		}
		if req, fired := s.step(ctx, id, tower, *pos); fired {
			shots = append(shots, req)
		}
		return true
	})

	for _, shot := range shots {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TowerFired,
			Data: event.TowerFiredData{Tower: shot.Tower, Position: shot.Position, Direction: shot.Direction},
		})
	}
	return shots
}

func (s *TargetingSystem) step(ctx *Context, id types.EntityID, tower *component.Tower, pos grid.Vec2) (FireRequest, bool) {
	direction, ok := s.acquire(tower, pos)
	if !ok {
		tower.State = component.Idle
		return FireRequest{}, false
	}

	targetAngle := utils.NormalizeAngle(direction.Angle())
	currentAngle := utils.NormalizeAngle(tower.Facing)
	angleToTarget := targetAngle - currentAngle

	if math.Abs(angleToTarget) > s.angularSpeed+config.AngleEpsilon {
		tower.Facing = utils.NormalizeAngle(currentAngle + s.angularSpeed*spin(targetAngle, currentAngle))
		tower.State = component.Tracking
		return FireRequest{}, false
	}

	tower.Facing = targetAngle
	tower.State = component.Locked

	if ctx.Now-tower.LastFired <= s.fireCooldown {
		return FireRequest{}, false
	}
	tower.LastFired = ctx.Now
	tower.Shots++
	return FireRequest{Tower: id, Position: pos, Direction: direction.Normalize()}, true
}

// acquire re-validates the current target or picks a new one. It returns the
// vector from the tower to the target.
func (s *TargetingSystem) acquire(tower *component.Tower, pos grid.Vec2) (grid.Vec2, bool) {
	if tower.Target != 0 {
		if enemyPos, ok := s.ecs.LiveEnemy(tower.Target); ok && pos.DistanceSq(*enemyPos) <= s.maxDistanceSq {
			return enemyPos.Sub(pos), true
		}
	}

	var (
		best   types.EntityID
		bestSq float64
		bestTo grid.Vec2
	)
	s.ecs.Enemies.Each(func(enemyID types.EntityID, _ *component.Enemy) bool {
		enemyPos, ok := s.ecs.LiveEnemy(enemyID)
		if !ok {
			return true
		}
		distSq := pos.DistanceSq(*enemyPos)
		if distSq > s.maxDistanceSq {
			return true
		}
		// Strictly closer only: on a tie the enemy seen first keeps the slot.
		if best != 0 && distSq >= bestSq {
			return true
		}
		best, bestSq, bestTo = enemyID, distSq, enemyPos.Sub(pos)
		return true
	})

	tower.Target = best
	return bestTo, best != 0
}

// spin picks the rotation sign that closes the gap along the shorter arc.
// Both angles are in [0, 2π).
func spin(targetAngle, currentAngle float64) float64 {
	angleToTarget := targetAngle - currentAngle
	if targetAngle > currentAngle {
		if angleToTarget < math.Pi {
			return counterClockwise
		}
		return clockwise
	}
	if angleToTarget > -math.Pi {
		return clockwise
	}
	return counterClockwise
}
