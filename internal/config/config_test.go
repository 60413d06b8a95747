package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuningMergeKeepsDefaultsForZeroFields(t *testing.T) {
	base := DefaultTuning()
	got := base.Merge(Tuning{TowerCost: 8, HitRadius: 12})

	assert.Equal(t, 8, got.TowerCost)
	assert.Equal(t, 12.0, got.HitRadius)
	assert.Equal(t, base.StartingCoins, got.StartingCoins)
	assert.Equal(t, base.AngularSpeed, got.AngularSpeed)
	assert.Equal(t, base, base.Merge(Tuning{}))
}

func TestTuningValidate(t *testing.T) {
	assert.NoError(t, DefaultTuning().Validate())

	free := DefaultTuning()
	free.TowerCost = 0
	assert.ErrorContains(t, free.Validate(), "tower_cost")

	nan := DefaultTuning()
	nan.ProjectileSpeed = math.NaN()
	assert.ErrorContains(t, nan.Validate(), "projectile_speed")

	generous := DefaultTuning()
	generous.EnemyReward = -1
	assert.ErrorContains(t, generous.Validate(), "enemy_reward")

	zeroReward := DefaultTuning()
	zeroReward.EnemyReward = 0
	assert.NoError(t, zeroReward.Validate())
}
