package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/disaster_connect/internal/models"
)

func validDraft() models.IncidentDraft {
	return models.IncidentDraft{
		Title:       "Flash Flooding on Main Street",
		Description: "Water is rising fast near the bridge",
		Type:        models.IncidentTypeFlood,
		Severity:    models.SeverityHigh,
		Location:    models.Location{Lat: 37.7749, Lng: -122.4194},
	}
}

func requireValidationError(t *testing.T, err error, step Step, msg string) {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
	assert.Equal(t, step, vErr.Step)
	assert.Equal(t, msg, vErr.Message)
}

func TestValidateStep(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		step   Step
		modify func(d *models.IncidentDraft)
		msg    string
	}{
		{name: "details ok", step: StepDetails},
		{name: "missing title", step: StepDetails, modify: func(d *models.IncidentDraft) { d.Title = "" }, msg: MsgDetailsRequired},
		{name: "missing description", step: StepDetails, modify: func(d *models.IncidentDraft) { d.Description = "" }, msg: MsgDetailsRequired},
		{name: "classification ok", step: StepClassification},
		{name: "missing type", step: StepClassification, modify: func(d *models.IncidentDraft) { d.Type = "" }, msg: MsgClassificationRequired},
		{name: "unknown type", step: StepClassification, modify: func(d *models.IncidentDraft) { d.Type = "volcano" }, msg: MsgClassificationRequired},
		{name: "unknown severity", step: StepClassification, modify: func(d *models.IncidentDraft) { d.Severity = "critical" }, msg: MsgClassificationRequired},
		{name: "location ok", step: StepLocation},
		{name: "location unset", step: StepLocation, modify: func(d *models.IncidentDraft) { d.Location = models.Location{} }, msg: MsgLocationRequired},
		{name: "review never fails", step: StepReview, modify: func(d *models.IncidentDraft) { *d = models.IncidentDraft{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			if tt.modify != nil {
				tt.modify(&d)
			}
			err := v.ValidateStep(tt.step, d)
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.step, tt.msg)
		})
	}
}

func TestValidateStep_OnlyChecksOwnFields(t *testing.T) {
	v := NewValidator()
	d := models.IncidentDraft{Title: "Fire", Description: "Smoke visible"}

	assert.NoError(t, v.ValidateStep(StepDetails, d))
	assert.Error(t, v.ValidateStep(StepClassification, d))
}

func TestValidateStep_UnknownStep(t *testing.T) {
	err := NewValidator().ValidateStep(Step(7), validDraft())
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestValidateDraft(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateDraft(validDraft()))

	d := validDraft()
	d.Title = ""
	requireValidationError(t, v.ValidateDraft(d), StepDetails, MsgSubmitFieldsRequired)

	d = validDraft()
	d.Severity = ""
	requireValidationError(t, v.ValidateDraft(d), StepClassification, MsgSubmitFieldsRequired)

	d = validDraft()
	d.Location = models.Location{Address: "somewhere"}
	requireValidationError(t, v.ValidateDraft(d), StepLocation, MsgLocationRequired)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "details", StepDetails.String())
	assert.Equal(t, "review", StepReview.String())
	assert.Equal(t, "step(9)", Step(9).String())
	assert.False(t, Step(0).Valid())
}
