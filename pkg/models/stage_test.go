package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTimeline(t *testing.T) {
	steps := StageTimeline(StageTechnicalRound)

	require.Len(t, steps, len(PipelineStages))
	assert.Equal(t, TimelineCompleted, steps[0].Status)
	assert.Equal(t, TimelineCompleted, steps[1].Status)
	assert.Equal(t, TimelineCurrent, steps[2].Status)
	assert.Equal(t, TimelinePending, steps[3].Status)
	assert.Equal(t, TimelinePending, steps[4].Status)
}

func TestStageTimeline_FirstAndLast(t *testing.T) {
	first := StageTimeline(StageScreening)
	assert.Equal(t, TimelineCurrent, first[0].Status)
	assert.Equal(t, TimelinePending, first[1].Status)

	last := StageTimeline(StageHRRound)
	assert.Equal(t, TimelineCurrent, last[len(last)-1].Status)
	for _, step := range last[:len(last)-1] {
		assert.Equal(t, TimelineCompleted, step.Status)
	}
}

func TestStageTimeline_UnknownStage(t *testing.T) {
	for _, stage := range []string{StageRejected, StageSelected, "Nonsense"} {
		for _, step := range StageTimeline(stage) {
			assert.Equal(t, TimelinePending, step.Status, "terminal and unknown stages walk nothing")
		}
	}
}

func TestColors_GracefulDefault(t *testing.T) {
	assert.Equal(t, "#2CACE3", StageColor(StageDesignChallenge))
	assert.Equal(t, "#59C339", StatusColor(StatusAccepted))

	assert.Equal(t, defaultColor, StageColor("Unheard Of"))
	assert.Equal(t, defaultColor, StatusColor(""))
}

func TestCandidateURLs_Count(t *testing.T) {
	var none *CandidateURLs
	assert.Equal(t, 0, none.Count())
	assert.Equal(t, 0, (&CandidateURLs{}).Count())
	assert.Equal(t, 2, (&CandidateURLs{Resume: "r", Project: "p"}).Count())
	assert.Equal(t, 3, (&CandidateURLs{Resume: "r", CoverLetter: "c", Project: "p"}).Count())
}

func TestUpdateStatusRequest_Empty(t *testing.T) {
	rating := 3.0
	assert.True(t, (&UpdateStatusRequest{}).Empty())
	assert.False(t, (&UpdateStatusRequest{Status: StatusAccepted}).Empty())
	assert.False(t, (&UpdateStatusRequest{Stage: StageHRRound}).Empty())
	assert.False(t, (&UpdateStatusRequest{Rating: &rating}).Empty())
}
