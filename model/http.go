package model

type SongOverview struct {
	Name           string `json:"name"`
	NumCheckpoints int    `json:"num_checkpoints"`
	DurationMS     int64  `json:"duration_ms"`
}

type SongResponse struct {
	Name        string           `json:"name"`
	Checkpoints []CheckpointJSON `json:"checkpoints"`
}

type CheckpointJSON struct {
	OffsetMS int64 `json:"offset_ms"`
	Notes    Notes `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
