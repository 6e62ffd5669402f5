package models

import (
	"time"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// Request models

// UpdateScheduleRequest carries the editable fields of a schedule.
// Tier, mode, date and time edits change the derived duration on the next
// read; nothing derived is persisted.
type UpdateScheduleRequest struct {
	CustomerName     string  `json:"namaPelanggan"`
	OutletName       string  `json:"namaOutlet"`
	WhatsApp         string  `json:"noWhatsapp"`
	Address          *string `json:"alamat,omitempty"`
	SubscriptionTier string  `json:"tipeLangganan"`
	DeliveryMode     string  `json:"tipeOutlet"`
	InstallDate      string  `json:"tanggalInstalasi"` // YYYY-MM-DD
	InstallTime      string  `json:"pukulInstalasi"`   // HH:MM
	Technician       *string `json:"teknisi,omitempty"`
	Notes            *string `json:"catatan,omitempty"`
}

// UpdateStatusRequest changes the lifecycle label of a schedule.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListSchedulesRequest asks for one page of the schedule table.
type ListSchedulesRequest struct {
	Page   int     `json:"page"`
	Status *string `json:"status,omitempty"`
}

// Response models

// ScheduleResponse is a schedule plus its derived session interval.
type ScheduleResponse struct {
	ID               string  `json:"id"`
	CustomerName     string  `json:"namaPelanggan"`
	OutletName       string  `json:"namaOutlet"`
	WhatsApp         string  `json:"noWhatsapp"`
	Address          *string `json:"alamat,omitempty"`
	SubscriptionTier string  `json:"tipeLangganan"`
	DeliveryMode     string  `json:"tipeOutlet"`
	InstallDate      string  `json:"tanggalInstalasi"`
	InstallTime      string  `json:"pukulInstalasi"`
	Technician       *string `json:"teknisi,omitempty"`
	Status           string  `json:"status"`
	Notes            *string `json:"catatan,omitempty"`
	CalendarEventID  *string `json:"calendarEventId,omitempty"`

	// Derived on every read from tier + mode + date + time.
	DurationHours float64 `json:"durationHours"`
	SessionStart  *string `json:"sessionStart,omitempty"` // RFC 3339, absent when date/time is malformed
	SessionEnd    *string `json:"sessionEnd,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleListResponse is one page of schedules.
type ScheduleListResponse struct {
	Schedules  []ScheduleResponse `json:"schedules"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalItems int                `json:"totalItems"`
	TotalPages int                `json:"totalPages"`
}

// MessageLogResponse is one sent-message record.
type MessageLogResponse struct {
	ID           string    `json:"id"`
	ScheduleID   string    `json:"jadwalId"`
	TemplateType string    `json:"templateType"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sentAt"`
}

// Conversion helpers

// FromDomainSchedule converts a domain schedule into a DTO, computing the
// derived interval fresh.
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:               s.ID,
		CustomerName:     s.CustomerName,
		OutletName:       s.OutletName,
		WhatsApp:         s.WhatsApp,
		Address:          s.Address,
		SubscriptionTier: s.SubscriptionTier,
		DeliveryMode:     s.DeliveryMode,
		InstallDate:      s.InstallDate.Format(domain.DateFormat),
		InstallTime:      s.InstallTime.String(),
		Technician:       s.Technician,
		Status:           s.Status,
		Notes:            s.Notes,
		CalendarEventID:  s.CalendarEventID,
		DurationHours:    domain.DurationHours(s.Duration()),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}

	if interval := domain.NewInterval(s); interval.Valid() {
		start := interval.Start.Format(time.RFC3339)
		end := interval.End.Format(time.RFC3339)
		resp.SessionStart = &start
		resp.SessionEnd = &end
	}

	return resp
}

// FromDomainScheduleList converts a slice of domain schedules.
func FromDomainScheduleList(schedules []*domain.Schedule) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		if resp := FromDomainSchedule(s); resp != nil {
			out = append(out, *resp)
		}
	}
	return out
}

// FromDomainMessageLog converts a message-log entry.
func FromDomainMessageLog(m *domain.MessageLog) *MessageLogResponse {
	if m == nil {
		return nil
	}
	return &MessageLogResponse{
		ID:           m.ID,
		ScheduleID:   m.ScheduleID,
		TemplateType: m.TemplateType,
		Body:         m.Body,
		SentAt:       m.SentAt,
	}
}

// FromDomainMessageLogList converts a slice of message-log entries.
func FromDomainMessageLogList(entries []*domain.MessageLog) []MessageLogResponse {
	out := make([]MessageLogResponse, 0, len(entries))
	for _, e := range entries {
		if resp := FromDomainMessageLog(e); resp != nil {
			out = append(out, *resp)
		}
	}
	return out
}
