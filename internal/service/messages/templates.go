package messages

import (
	"fmt"
	"strings"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// Template types selectable by the caller.
const (
	TemplateReminder   = "reminder"
	TemplateKonfirmasi = "konfirmasi"
	TemplateFollowUp   = "follow_up"
)

// templates is a static lookup by type. Message text is data, not logic:
// placeholders are substituted from the schedule, nothing else is computed.
var templates = map[string]string{
	TemplateKonfirmasi: "Halo Kak {nama},\n\n" +
		"Jadwal instalasi untuk outlet {outlet} sudah kami terima dengan detail berikut:\n" +
		"- Tanggal: {tanggal}\n" +
		"- Pukul: {pukul}\n" +
		"- Tipe: {mode}\n" +
		"- Estimasi durasi: {durasi} jam\n\n" +
		"Mohon balas pesan ini untuk konfirmasi ya. Terima kasih!",

	TemplateReminder: "Halo Kak {nama},\n\n" +
		"Mengingatkan kembali jadwal instalasi {outlet} pada {tanggal} pukul {pukul} ({mode}, estimasi {durasi} jam).\n" +
		"Mohon pastikan perangkat dan koneksi internet sudah siap sebelum sesi dimulai. Terima kasih!",

	TemplateFollowUp: "Halo Kak {nama},\n\n" +
		"Terima kasih sudah mengikuti sesi instalasi {outlet}. " +
		"Jika ada kendala atau pertanyaan seputar penggunaan, silakan hubungi kami kapan saja ya!",
}

// TemplateTypes lists the available template types.
func TemplateTypes() []string {
	return []string{TemplateKonfirmasi, TemplateReminder, TemplateFollowUp}
}

// RenderTemplate fills the template of the given type with schedule data.
func RenderTemplate(templateType string, s *domain.Schedule) (string, error) {
	text, ok := templates[templateType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, templateType)
	}

	hours := domain.DurationHours(s.Duration())

	replacer := strings.NewReplacer(
		"{nama}", s.CustomerName,
		"{outlet}", s.OutletName,
		"{tanggal}", s.InstallDate.Format(domain.DateFormat),
		"{pukul}", s.InstallTime.String(),
		"{mode}", s.DeliveryMode,
		"{durasi}", formatHours(hours),
	)

	return replacer.Replace(text), nil
}

// formatHours renders fractional hours without trailing zeros: 2 -> "2",
// 3.5 -> "3.5". Display values are never truncated to integers.
func formatHours(hours float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", hours), "0"), ".")
}
