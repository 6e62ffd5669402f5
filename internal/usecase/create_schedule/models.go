package create_schedule

import "github.com/nadipos/jadwal-service/internal/service/schedules/models"

// Request carries the fields of a new installation appointment.
type Request struct {
	CustomerName     string  `json:"namaPelanggan"`
	OutletName       string  `json:"namaOutlet"`
	WhatsApp         string  `json:"noWhatsapp"`
	Address          *string `json:"alamat,omitempty"`
	SubscriptionTier string  `json:"tipeLangganan"`
	DeliveryMode     string  `json:"tipeOutlet"`
	InstallDate      string  `json:"tanggalInstalasi"` // YYYY-MM-DD
	InstallTime      string  `json:"pukulInstalasi"`   // HH:MM
	Technician       *string `json:"teknisi,omitempty"`
	Status           string  `json:"status,omitempty"` // defaults to "terjadwal"
	Notes            *string `json:"catatan,omitempty"`
}

// Response is the stored schedule plus the prepared confirmation message.
type Response struct {
	Schedule            models.ScheduleResponse `json:"schedule"`
	ConfirmationMessage string                  `json:"confirmationMessage"`

	// CalendarDegraded is set when the session is online but the calendar
	// event could not be created; the schedule itself is stored regardless.
	CalendarDegraded bool `json:"calendarDegraded,omitempty"`
}
