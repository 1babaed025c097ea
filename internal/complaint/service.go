package complaint

import (
	"context"
	"fmt"
	"log"
	"sort"
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

// File validates and stores a complaint for a patient. Whether the
// patient exists is decided by the engine's foreign key, not here.
func (s *Service) File(ctx context.Context, patientID int64, req FileComplaintRequest) error {
	if strings.TrimSpace(req.Date) == "" {
		return ErrMissingDate
	}
	if strings.TrimSpace(req.Complaint) == "" {
		return ErrMissingComplaint
	}
	if strings.TrimSpace(req.Doctor) == "" {
		return ErrMissingDoctor
	}
	if strings.TrimSpace(req.Medicine) == "" {
		return ErrMissingMedicine
	}

	if err := s.repo.Insert(ctx, patientID, req); err != nil {
		return fmt.Errorf("failed to file complaint: %w", err)
	}

	if s.publisher != nil {
		event := messaging.NewComplaintFiledEvent(patientID, req.Date, req.Doctor)
		if perr := s.publisher.Publish(ctx, messaging.EventComplaintFiled, event); perr != nil {
			log.Printf("Warning: failed to publish %s event: %v", messaging.EventComplaintFiled, perr)
		}
	}

	return nil
}

// ListByPatient returns a patient's complaints sorted by date
// descending, most recent first. The engine gives no ordering guarantee,
// so the sort happens here.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]Complaint, error) {
	complaints, err := s.repo.ListByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}

	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].Date > complaints[j].Date
	})
	return complaints, nil
}
