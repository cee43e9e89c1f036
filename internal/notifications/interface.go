package notifications

import "github.com/Aniket-Subudh1/EventSentix/internal/models"

// Notifier defines the contract for delivering report summaries
type Notifier interface {
	SendReportSummary(report *models.Report) error
}
