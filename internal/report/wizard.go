package report

import (
	"github.com/shenikar/disaster_connect/internal/models"
)

// Адрес по умолчанию, когда геолокация недоступна
const (
	FallbackLat     = 37.7749
	FallbackLng     = -122.4194
	FallbackAddress = "123 Market St, San Francisco, CA"

	CurrentLocationLabel = "Your current location"
)

// ResolveLocation возвращает место инцидента: текущее положение пользователя или адрес по умолчанию
func ResolveLocation(coords *models.Coordinates) models.Location {
	if coords == nil {
		return models.Location{Lat: FallbackLat, Lng: FallbackLng, Address: FallbackAddress}
	}
	return models.Location{Lat: coords.Lat, Lng: coords.Lng, Address: CurrentLocationLabel}
}

// Wizard - состояние мастера отправки
type Wizard struct {
	validator *Validator
	step      Step
	Draft     models.IncidentDraft
}

// NewWizard создает мастер на шаге step с уже собранным черновиком.
// Неизвестный шаг заменяется первым.
func NewWizard(v *Validator, step Step, draft models.IncidentDraft) *Wizard {
	if !step.Valid() {
		step = StepDetails
	}
	return &Wizard{validator: v, step: step, Draft: draft}
}

// Step возвращает текущий шаг
func (w *Wizard) Step() Step {
	return w.step
}

// Next проверяет текущий шаг и переходит к следующему. На шаге Review остается на месте.
func (w *Wizard) Next() error {
	if err := w.validator.ValidateStep(w.step, w.Draft); err != nil {
		return err
	}
	if w.step < StepReview {
		w.step++
	}
	return nil
}

// Back возвращается на шаг назад без проверки
func (w *Wizard) Back() {
	if w.step > StepDetails {
		w.step--
	}
}

// Progress - процент заполнения: (step-1)/3*100
func (w *Wizard) Progress() float64 {
	return Progress(w.step)
}

// Progress считает процент для произвольного шага
func Progress(step Step) float64 {
	return float64(step-1) / float64(StepReview-1) * 100
}

// Submit выполняет итоговую проверку черновика
func (w *Wizard) Submit() (models.IncidentDraft, error) {
	if err := w.validator.ValidateDraft(w.Draft); err != nil {
		return models.IncidentDraft{}, err
	}
	return w.Draft, nil
}
