package models

// Candidate status vocabulary
const (
	StatusInProcess = "In Process"
	StatusAccepted  = "Accepted"
	StatusRejected  = "Rejected"
	StatusPending   = "Pending"
)

// Interview stage vocabulary, in pipeline order
const (
	StageScreening       = "Screening"
	StageDesignChallenge = "Design Challenge"
	StageTechnicalRound  = "Technical Round"
	StageRound2Interview = "Round 2 Interview"
	StageHRRound         = "HR Round"
	StageRejected        = "Rejected"
	StageSelected        = "Selected"
)

// PipelineStages lists the ordered steps rendered in the stage timeline.
// Terminal stages (Rejected, Selected) sit outside the walkable pipeline.
var PipelineStages = []string{
	StageScreening,
	StageDesignChallenge,
	StageTechnicalRound,
	StageRound2Interview,
	StageHRRound,
}

// TimelineStatus marks a pipeline step relative to the candidate's current stage
type TimelineStatus string

const (
	TimelineCompleted TimelineStatus = "completed"
	TimelineCurrent   TimelineStatus = "current"
	TimelinePending   TimelineStatus = "pending"
)

// StageStep is one entry of a candidate's stage timeline
type StageStep struct {
	Name   string         `json:"name"`
	Status TimelineStatus `json:"status"`
}

var stageColors = map[string]string{
	StageScreening:       "#E8A34B",
	StageDesignChallenge: "#2CACE3",
	StageTechnicalRound:  "#9D6EF8",
	StageRound2Interview: "#C88568",
	StageHRRound:         "#59C339",
	StageRejected:        "#E85A5A",
	StageSelected:        "#59C339",
}

var statusColors = map[string]string{
	StatusInProcess: "#E8A34B",
	StatusAccepted:  "#59C339",
	StatusRejected:  "#E85A5A",
	StatusPending:   "#8A8A8A",
}

const defaultColor = "#8A8A8A"

// StageColor returns the display color for a stage, falling back to a
// default for unrecognized values rather than rejecting them.
func StageColor(stage string) string {
	if c, ok := stageColors[stage]; ok {
		return c
	}
	return defaultColor
}

// StatusColor returns the display color for a status, with the same
// graceful default as StageColor.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return defaultColor
}

// StageTimeline builds the pipeline timeline for a candidate's current
// stage: everything before it is completed, everything after pending.
// Unrecognized stages produce an all-pending timeline.
func StageTimeline(current string) []StageStep {
	idx := -1
	for i, s := range PipelineStages {
		if s == current {
			idx = i
			break
		}
	}

	steps := make([]StageStep, len(PipelineStages))
	for i, s := range PipelineStages {
		status := TimelinePending
		switch {
		case idx >= 0 && i < idx:
			status = TimelineCompleted
		case idx >= 0 && i == idx:
			status = TimelineCurrent
		}
		steps[i] = StageStep{Name: s, Status: status}
	}
	return steps
}
