package entity

// Status is the delivery state of an outbox event.
type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Processed  Status = "processed"
	Failed     Status = "failed"
)

type HighlightStatus string

const (
	HighlightProcessing HighlightStatus = "processing"
	HighlightCompleted  HighlightStatus = "completed"
	HighlightFailed     HighlightStatus = "failed"
)
