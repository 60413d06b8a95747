package component

// Phase is the coarse lifecycle of a level.
type Phase int

const (
	Playing Phase = iota
	GameOver
)
