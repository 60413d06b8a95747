package component

// WaveSpec is one entry of a spawner's schedule.
type WaveSpec struct {
	Tier     string
	Count    int // 0 = endless
	Interval float64
}

// Spawner emits enemies at its position on a fixed interval.
type Spawner struct {
	Interval  float64
	LastSpawn float64
	Tier      string

	Waves     []WaveSpec
	WaveIndex int
	Spawned   int // spawned in the current wave
	Done      bool
}

// BeginWave switches the spawner to wave i, or marks it done past the end.
func (s *Spawner) BeginWave(i int) {
	s.WaveIndex = i
	s.Spawned = 0
	if i >= len(s.Waves) {
		s.Done = true
		return
	}
	s.Tier = s.Waves[i].Tier
	s.Interval = s.Waves[i].Interval
}
