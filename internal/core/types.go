package core

// Stage names the pipeline step an error came from
type Stage string

const (
	StageSelect    Stage = "select"
	StageTransform Stage = "transform"
	StagePersist   Stage = "persist"
)

type Result struct {
	Source      string
	Destination string
	Records     int
	Size        int
}
