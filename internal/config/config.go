// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"math"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// Fixed simulation step used by the headless runner.
	TickRate = 60

	StartingCoins = 10
	TowerCost     = 5
	BaseHealth    = 20

	EnemyHealth        = 6
	EnemyProgressRate  = 0.025 // fraction of the path per second
	EnemyReward        = 1
	BaseDamagePerEnemy = 1
	SpawnInterval      = 2.0 // seconds

	TowerMaxDistance  = 256.0
	TowerFireCooldown = 1.0 // seconds

	ProjectileSpeed     = 200.0 // world units per second
	ProjectileHitRadius = 20.0
	ProjectileLifetime  = 2.0 // seconds
	ProjectileDamage    = 1

	// AngleEpsilon absorbs rounding accumulated by repeated slew steps.
	AngleEpsilon = 1e-9

	EnemyRadius      = 12.0
	TowerRadius      = 12.0
	BaseRadius       = 14.0
	ProjectileRadius = 2.0
	BarrelLength     = 24.0
	BuildSpotSize    = 30.0
)

// AngularSpeed is the tower rotation budget per tick, in radians.
const AngularSpeed = 2 * math.Pi / 200

// Tuning groups the numbers a level file may override.
type Tuning struct {
	StartingCoins     int     `json:"starting_coins" yaml:"starting_coins"`
	TowerCost         int     `json:"tower_cost" yaml:"tower_cost"`
	BaseHealth        int     `json:"base_health" yaml:"base_health"`
	TowerMaxDistance  float64 `json:"tower_max_distance" yaml:"tower_max_distance"`
	TowerFireCooldown float64 `json:"tower_fire_cooldown" yaml:"tower_fire_cooldown"`
	AngularSpeed      float64 `json:"angular_speed" yaml:"angular_speed"`
	ProjectileSpeed   float64 `json:"projectile_speed" yaml:"projectile_speed"`
	HitRadius         float64 `json:"hit_radius" yaml:"hit_radius"`
	ProjectileLife    float64 `json:"projectile_lifetime" yaml:"projectile_lifetime"`
	ProjectileDamage  int     `json:"projectile_damage" yaml:"projectile_damage"`
	EnemyReward       int     `json:"enemy_reward" yaml:"enemy_reward"`
	BaseDamage        int     `json:"base_damage" yaml:"base_damage"`
}

// DefaultTuning returns the stock values.
func DefaultTuning() Tuning {
	return Tuning{
		StartingCoins:     StartingCoins,
		TowerCost:         TowerCost,
		BaseHealth:        BaseHealth,
		TowerMaxDistance:  TowerMaxDistance,
		TowerFireCooldown: TowerFireCooldown,
		AngularSpeed:      AngularSpeed,
		ProjectileSpeed:   ProjectileSpeed,
		HitRadius:         ProjectileHitRadius,
		ProjectileLife:    ProjectileLifetime,
		ProjectileDamage:  ProjectileDamage,
		EnemyReward:       EnemyReward,
		BaseDamage:        BaseDamagePerEnemy,
	}
}

// Merge returns t with every non-zero field of o applied on top.
func (t Tuning) Merge(o Tuning) Tuning {
	if o.StartingCoins != 0 {
		t.StartingCoins = o.StartingCoins
	}
	if o.TowerCost != 0 {
		t.TowerCost = o.TowerCost
	}
	if o.BaseHealth != 0 {
		t.BaseHealth = o.BaseHealth
	}
	if o.TowerMaxDistance != 0 {
		t.TowerMaxDistance = o.TowerMaxDistance
	}
	if o.TowerFireCooldown != 0 {
		t.TowerFireCooldown = o.TowerFireCooldown
	}
	if o.AngularSpeed != 0 {
		t.AngularSpeed = o.AngularSpeed
	}
	if o.ProjectileSpeed != 0 {
		t.ProjectileSpeed = o.ProjectileSpeed
	}
	if o.HitRadius != 0 {
		t.HitRadius = o.HitRadius
	}
	if o.ProjectileLife != 0 {
		t.ProjectileLife = o.ProjectileLife
	}
	if o.ProjectileDamage != 0 {
		t.ProjectileDamage = o.ProjectileDamage
	}
	if o.EnemyReward != 0 {
		t.EnemyReward = o.EnemyReward
	}
	if o.BaseDamage != 0 {
		t.BaseDamage = o.BaseDamage
	}
	return t
}

// Validate rejects values that would break the rules of play: towers must
// cost something, the base must start alive, turrets must turn and shots
// must travel. Counts and rewards may be zero but not negative.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"tower_cost", float64(t.TowerCost)},
		{"base_health", float64(t.BaseHealth)},
		{"angular_speed", t.AngularSpeed},
		{"tower_max_distance", t.TowerMaxDistance},
		{"projectile_speed", t.ProjectileSpeed},
		{"hit_radius", t.HitRadius},
		{"projectile_lifetime", t.ProjectileLife},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return fmt.Errorf("%s must be positive, got %v", f.name, f.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"starting_coins", float64(t.StartingCoins)},
		{"enemy_reward", float64(t.EnemyReward)},
		{"projectile_damage", float64(t.ProjectileDamage)},
		{"base_damage", float64(t.BaseDamage)},
		{"tower_fire_cooldown", t.TowerFireCooldown},
	}
	for _, f := range nonNegative {
		if !(f.v >= 0) {
			return fmt.Errorf("%s must not be negative, got %v", f.name, f.v)
		}
	}
	return nil
}

var (
	BackgroundColor = color.RGBA{51, 51, 51, 255}
	PathColor       = color.RGBA{90, 90, 90, 255}
	BuildSpotColor  = color.RGBA{77, 77, 77, 255}
	BuildSpotHover  = color.RGBA{110, 110, 110, 255}
	TowerColor      = color.RGBA{0, 128, 255, 255}
	BarrelColor     = color.RGBA{102, 102, 102, 255}
	EnemyColor      = color.RGBA{255, 77, 0, 255}
	BaseColor       = color.RGBA{255, 153, 51, 255}
	SpawnerColor    = color.RGBA{102, 51, 153, 255}
	ProjectileColor = color.RGBA{26, 26, 26, 255}
	RangeColor      = color.RGBA{255, 255, 0, 40}
	TextLightColor  = color.RGBA{204, 204, 204, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
)
