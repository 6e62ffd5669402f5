package send_message

// Request selects which template to render for the schedule.
type Request struct {
	TemplateType string `json:"templateType"`
}
