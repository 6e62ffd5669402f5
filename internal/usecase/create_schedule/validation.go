package create_schedule

import (
	"fmt"
	"time"

	"github.com/nadipos/jadwal-service/internal/domain"
	"github.com/nadipos/jadwal-service/pkg/types"
)

// validateRequest checks the request and returns the parsed date and time.
// Tier and mode are free text on purpose: unknown values resolve to the
// default session duration instead of being rejected.
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if req.CustomerName == "" {
		return time.Time{}, "", fmt.Errorf("%w: namaPelanggan is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return time.Time{}, "", fmt.Errorf("%w: namaPelanggan is too long", ErrInvalidInput)
	}
	if req.OutletName == "" {
		return time.Time{}, "", fmt.Errorf("%w: namaOutlet is required", ErrInvalidInput)
	}
	if req.WhatsApp == "" {
		return time.Time{}, "", fmt.Errorf("%w: noWhatsapp is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return time.Time{}, "", fmt.Errorf("%w: catatan is too long", ErrInvalidInput)
	}

	installDate, err := time.ParseInLocation(domain.DateFormat, req.InstallDate, time.Local)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid tanggalInstalasi %q", ErrInvalidInput, req.InstallDate)
	}

	installTime, err := types.NewTimeStringFromString(req.InstallTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid pukulInstalasi %q", ErrInvalidInput, req.InstallTime)
	}

	return installDate, installTime, nil
}
