package patient

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/medblocks/records-service/internal/messaging"
)

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// Register validates and stores a new patient, returning the generated id.
func (s *Service) Register(ctx context.Context, req RegisterPatientRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, ErrMissingName
	}
	if strings.TrimSpace(req.Phone) == "" {
		return 0, ErrMissingPhone
	}
	if strings.TrimSpace(req.DOB) == "" {
		return 0, ErrMissingDOB
	}
	if strings.TrimSpace(req.Sex) == "" {
		return 0, ErrMissingSex
	}
	switch req.Sex {
	case "male", "female", "other":
	default:
		return 0, ErrInvalidSex
	}

	id, err := s.repo.Insert(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("failed to register patient: %w", err)
	}

	if s.publisher != nil {
		event := messaging.NewPatientRegisteredEvent(id, req.Name)
		if perr := s.publisher.Publish(ctx, messaging.EventPatientRegistered, event); perr != nil {
			log.Printf("Warning: failed to publish %s event: %v", messaging.EventPatientRegistered, perr)
		}
	}

	return id, nil
}

// List returns all patients, optionally filtered by a case-insensitive
// name prefix. The filter runs on the fetched rows, matching the search
// behaviour of the patient list view.
func (s *Service) List(ctx context.Context, search string) ([]Patient, error) {
	patients, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	if search == "" {
		return patients, nil
	}

	prefix := strings.ToLower(search)
	filtered := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if strings.HasPrefix(strings.ToLower(p.Name), prefix) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Get returns the patient with the given id, or nil when no such
// patient exists.
func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return p, nil
}
