package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/shenikar/disaster_connect/internal/models"
)

// ErrIncidentNotFound возвращается, когда инцидента с таким id нет в хранилище
var ErrIncidentNotFound = errors.New("incident not found")

// DefaultReportedBy - автор новых сообщений, пока в системе нет пользователей
const DefaultReportedBy = "currentUser"

// IncidentStore - хранилище инцидентов в памяти процесса.
// Новые записи добавляются в начало; записи не изменяются и не удаляются.
type IncidentStore struct {
	mu         sync.RWMutex
	incidents  []models.Incident
	clock      clockwork.Clock
	reportedBy string
	lastID     int64
}

// NewIncidentStore создает хранилище с начальными записями seed в заданном порядке
func NewIncidentStore(clock clockwork.Clock, reportedBy string, seed ...models.Incident) *IncidentStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if reportedBy == "" {
		reportedBy = DefaultReportedBy
	}
	incidents := make([]models.Incident, len(seed))
	copy(incidents, seed)

	return &IncidentStore{
		incidents:  incidents,
		clock:      clock,
		reportedBy: reportedBy,
	}
}

// GetAll возвращает копию всех инцидентов в порядке хранения (новые первыми)
func (s *IncidentStore) GetAll(ctx context.Context) ([]models.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out, nil
}

// GetByID ищет инцидент по id
func (s *IncidentStore) GetByID(ctx context.Context, id string) (models.Incident, error) {
	if err := ctx.Err(); err != nil {
		return models.Incident{}, fmt.Errorf("failed to get incident by id: %w", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, incident := range s.incidents {
		if incident.ID == id {
			return incident, nil
		}
	}
	return models.Incident{}, fmt.Errorf("incident with id %s: %w", id, ErrIncidentNotFound)
}

// Add создает инцидент из черновика: назначает id, время, автора, verified=false и ставит его первым
func (s *IncidentStore) Add(ctx context.Context, draft models.IncidentDraft) (models.Incident, error) {
	if err := ctx.Err(); err != nil {
		return models.Incident{}, fmt.Errorf("failed to add incident: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	incident := models.Incident{
		ID:          s.nextID(now.UnixMilli()),
		Title:       draft.Title,
		Description: draft.Description,
		Type:        draft.Type,
		Severity:    draft.Severity,
		Location:    draft.Location,
		ImageURL:    draft.ImageURL,
		ReportedBy:  s.reportedBy,
		Timestamp:   now,
		Verified:    false,
	}

	incidents := make([]models.Incident, 0, len(s.incidents)+1)
	incidents = append(incidents, incident)
	s.incidents = append(incidents, s.incidents...)
	return incident, nil
}

// Len возвращает число инцидентов
func (s *IncidentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.incidents)
}

// nextID - время создания в миллисекундах; при совпадении берется следующее значение
func (s *IncidentStore) nextID(millis int64) string {
	if millis <= s.lastID {
		millis = s.lastID + 1
	}
	s.lastID = millis
	return strconv.FormatInt(millis, 10)
}
