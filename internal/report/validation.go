// Package report содержит пошаговую проверку формы отправки инцидента.
package report

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/shenikar/disaster_connect/internal/models"
)

// Сообщения, которые видит пользователь мастера
const (
	MsgDetailsRequired        = "Please fill in all required fields"
	MsgClassificationRequired = "Please select incident type and severity"
	MsgLocationRequired       = "Please set your location"
	MsgSubmitFieldsRequired   = "Please fill all required fields"
)

// Step - шаг мастера отправки
type Step int

const (
	StepDetails Step = iota + 1
	StepClassification
	StepLocation
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepClassification:
		return "classification"
	case StepLocation:
		return "location"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Valid сообщает, что шаг существует
func (s Step) Valid() bool {
	return s >= StepDetails && s <= StepReview
}

// ValidationError - отказ локальной проверки; Message показывается пользователю как есть
type ValidationError struct {
	Step    Step
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrUnknownStep возвращается для номера шага вне 1..4
var ErrUnknownStep = errors.New("unknown wizard step")

// Validator проверяет черновик инцидента по шагам
type Validator struct {
	validate *validator.Validate
}

// NewValidator регистрирует проверки перечислений incident_type и severity
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("incident_type", func(fl validator.FieldLevel) bool {
		return models.IncidentType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("severity", func(fl validator.FieldLevel) bool {
		return models.Severity(fl.Field().String()).Valid()
	})
	return &Validator{validate: v}
}

// ValidateStep проверяет поля, собранные на шаге step. Шаг Review ничего не проверяет.
func (v *Validator) ValidateStep(step Step, draft models.IncidentDraft) error {
	switch step {
	case StepDetails:
		if err := v.validate.StructPartial(draft, "Title", "Description"); err != nil {
			return &ValidationError{Step: step, Message: MsgDetailsRequired}
		}
	case StepClassification:
		if err := v.validate.StructPartial(draft, "Type", "Severity"); err != nil {
			return &ValidationError{Step: step, Message: MsgClassificationRequired}
		}
	case StepLocation:
		if !draft.Location.IsSet() {
			return &ValidationError{Step: step, Message: MsgLocationRequired}
		}
	case StepReview:
	default:
		return fmt.Errorf("report: %w: %d", ErrUnknownStep, int(step))
	}
	return nil
}

// ValidateDraft - итоговая проверка перед отправкой
func (v *Validator) ValidateDraft(draft models.IncidentDraft) error {
	if err := v.validate.Struct(draft); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return &ValidationError{Step: stepOf(invalid[0].StructField()), Message: MsgSubmitFieldsRequired}
		}
		return fmt.Errorf("report: could not validate draft: %w", err)
	}
	if !draft.Location.IsSet() {
		return &ValidationError{Step: StepLocation, Message: MsgLocationRequired}
	}
	return nil
}

func stepOf(field string) Step {
	switch field {
	case "Type", "Severity":
		return StepClassification
	}
	return StepDetails
}
