package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/disaster_connect/internal/models"
)

func TestWizard_Flow(t *testing.T) {
	w := NewWizard(NewValidator(), StepDetails, models.IncidentDraft{})
	assert.Equal(t, StepDetails, w.Step())
	assert.Equal(t, 0.0, w.Progress())

	err := w.Next()
	requireValidationError(t, err, StepDetails, MsgDetailsRequired)
	assert.Equal(t, StepDetails, w.Step())

	w.Draft.Title = "Tornado touchdown"
	w.Draft.Description = "Funnel cloud seen west of town"
	require.NoError(t, w.Next())
	assert.Equal(t, StepClassification, w.Step())
	assert.InDelta(t, 33.33, w.Progress(), 0.01)

	w.Draft.Type = models.IncidentTypeTornado
	w.Draft.Severity = models.SeverityMedium
	require.NoError(t, w.Next())
	assert.Equal(t, StepLocation, w.Step())

	requireValidationError(t, w.Next(), StepLocation, MsgLocationRequired)

	w.Draft.Location = ResolveLocation(nil)
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())
	assert.Equal(t, 100.0, w.Progress())

	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())

	draft, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Tornado touchdown", draft.Title)
}

func TestNewWizard_ResumesAtStep(t *testing.T) {
	w := NewWizard(NewValidator(), StepLocation, validDraft())
	assert.Equal(t, StepLocation, w.Step())
	require.NoError(t, w.Next())
	assert.Equal(t, StepReview, w.Step())

	for _, step := range []Step{0, 5, -1} {
		assert.Equal(t, StepDetails, NewWizard(NewValidator(), step, models.IncidentDraft{}).Step(), step)
	}
}

func TestWizard_NextStaysOnFailedStep(t *testing.T) {
	draft := validDraft()
	draft.Severity = ""
	w := NewWizard(NewValidator(), StepClassification, draft)

	requireValidationError(t, w.Next(), StepClassification, MsgClassificationRequired)
	assert.Equal(t, StepClassification, w.Step())
}

func TestWizard_Back(t *testing.T) {
	w := NewWizard(NewValidator(), StepDetails, validDraft())
	w.Back()
	assert.Equal(t, StepDetails, w.Step())

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	w.Back()
	assert.Equal(t, StepClassification, w.Step())
}

func TestWizard_SubmitRejectsIncompleteDraft(t *testing.T) {
	draft := validDraft()
	draft.Description = ""
	w := NewWizard(NewValidator(), StepReview, draft)

	_, err := w.Submit()
	requireValidationError(t, err, StepDetails, MsgSubmitFieldsRequired)
}

func TestResolveLocation(t *testing.T) {
	fallback := ResolveLocation(nil)
	assert.Equal(t, models.Location{Lat: 37.7749, Lng: -122.4194, Address: "123 Market St, San Francisco, CA"}, fallback)

	current := ResolveLocation(&models.Coordinates{Lat: 40.7128, Lng: -74.006})
	assert.Equal(t, 40.7128, current.Lat)
	assert.Equal(t, -74.006, current.Lng)
	assert.Equal(t, CurrentLocationLabel, current.Address)
}
