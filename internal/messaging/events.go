package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys as constants
const (
	EventPatientRegistered = "patient.registered"
	EventComplaintFiled    = "complaint.filed"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// PatientRegisteredEvent represents a patient registration event
type PatientRegisteredEvent struct {
	BaseEvent
	Data PatientRegisteredData `json:"data"`
}

type PatientRegisteredData struct {
	PatientID int64  `json:"patient_id"`
	Name      string `json:"name"`
}

// ComplaintFiledEvent represents a complaint being filed for a patient
type ComplaintFiledEvent struct {
	BaseEvent
	Data ComplaintFiledData `json:"data"`
}

type ComplaintFiledData struct {
	PatientID int64  `json:"patient_id"`
	Date      string `json:"date"`
	Doctor    string `json:"doctor"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: "records-service",
	}
}

func NewPatientRegisteredEvent(patientID int64, name string) PatientRegisteredEvent {
	return PatientRegisteredEvent{
		BaseEvent: NewBaseEvent(EventPatientRegistered),
		Data: PatientRegisteredData{
			PatientID: patientID,
			Name:      name,
		},
	}
}

func NewComplaintFiledEvent(patientID int64, date, doctor string) ComplaintFiledEvent {
	return ComplaintFiledEvent{
		BaseEvent: NewBaseEvent(EventComplaintFiled),
		Data: ComplaintFiledData{
			PatientID: patientID,
			Date:      date,
			Doctor:    doctor,
		},
	}
}
