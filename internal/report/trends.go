package report

import (
	"math"
	"time"

	"github.com/Aniket-Subudh1/EventSentix/internal/models"
)

// significantPeriodMin is the minimum bucket total for a period to take part
// in peak-sentiment and change-point detection; sparser buckets are noise.
const significantPeriodMin = 5

// changePointDelta is the minimum shift, in percentage points of negative
// share, between consecutive significant periods to count as a change.
const changePointDelta = 15

const maxSentimentChanges = 5

// AnalyzeSentimentTrends reshapes the hourly and daily sentiment series into
// report timelines, fills the per-day volume table across the full event span,
// and runs peak and change-point detection over the hourly buckets.
func AnalyzeSentimentTrends(event *models.Event, hourly, daily []models.SentimentRecord) models.SentimentTrends {
	trends := models.SentimentTrends{
		Hourly:        reshapeTimeline(hourly),
		Daily:         reshapeTimeline(daily),
		EventDayCount: eventDayCount(event.StartDate, event.EndDate),
	}

	trends.DailyVolume = buildDailyVolume(event.StartDate, event.EndDate, daily)

	trends.PeakVolumePeriod = peakVolumePeriod(hourly)

	significant := significantPeriods(hourly)
	trends.PeakNegativePeriod = peakRatioPeriod(significant, func(r models.SentimentRecord) int { return r.Negative })
	trends.PeakPositivePeriod = peakRatioPeriod(significant, func(r models.SentimentRecord) int { return r.Positive })
	trends.SentimentChanges = detectSentimentChanges(significant)

	return trends
}

// eventDayCount is the inclusive number of calendar days between start and end
func eventDayCount(start, end time.Time) int {
	startDay := start.UTC().Truncate(24 * time.Hour)
	endDay := end.UTC().Truncate(24 * time.Hour)
	if endDay.Before(startDay) {
		return 1
	}
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

func reshapeTimeline(records []models.SentimentRecord) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, models.TrendPoint{
			Timestamp: rec.Timestamp,
			Positive:  rec.Positive,
			Neutral:   rec.Neutral,
			Negative:  rec.Negative,
			Total:     rec.Total,
			SentimentPct: models.SentimentPercentages{
				Positive: percentage(rec.Positive, rec.Total),
				Neutral:  percentage(rec.Neutral, rec.Total),
				Negative: percentage(rec.Negative, rec.Total),
			},
		})
	}
	return points
}

// buildDailyVolume pre-seeds one zero-filled entry per calendar day of the
// event span, then overwrites with actual daily totals. Gaps stay explicit.
func buildDailyVolume(start, end time.Time, daily []models.SentimentRecord) []models.DailyVolume {
	startDay := start.UTC().Truncate(24 * time.Hour)
	days := eventDayCount(start, end)

	volumes := make([]models.DailyVolume, 0, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := startDay.AddDate(0, 0, i).Format("2006-01-02")
		index[date] = i
		volumes = append(volumes, models.DailyVolume{Date: date})
	}

	for _, rec := range daily {
		date := rec.Timestamp.UTC().Format("2006-01-02")
		if i, ok := index[date]; ok {
			volumes[i] = models.DailyVolume{
				Date:     date,
				Positive: rec.Positive,
				Neutral:  rec.Neutral,
				Negative: rec.Negative,
				Total:    rec.Total,
			}
		}
	}

	return volumes
}

func peakVolumePeriod(hourly []models.SentimentRecord) *models.PeakPeriod {
	var peak *models.SentimentRecord
	for i := range hourly {
		if peak == nil || hourly[i].Total > peak.Total {
			peak = &hourly[i]
		}
	}
	if peak == nil {
		return nil
	}
	return &models.PeakPeriod{
		Timestamp: peak.Timestamp,
		Positive:  peak.Positive,
		Neutral:   peak.Neutral,
		Negative:  peak.Negative,
		Total:     peak.Total,
	}
}

func significantPeriods(hourly []models.SentimentRecord) []models.SentimentRecord {
	var significant []models.SentimentRecord
	for _, rec := range hourly {
		if rec.Total >= significantPeriodMin {
			significant = append(significant, rec)
		}
	}
	return significant
}

// peakRatioPeriod maximizes count(rec)/total over the significant periods.
// With no significant periods there is no peak to report.
func peakRatioPeriod(significant []models.SentimentRecord, count func(models.SentimentRecord) int) *models.PeakPeriod {
	var (
		peak      *models.SentimentRecord
		peakRatio float64
	)
	for i := range significant {
		ratio := float64(count(significant[i])) / float64(significant[i].Total)
		if peak == nil || ratio > peakRatio {
			peak = &significant[i]
			peakRatio = ratio
		}
	}
	if peak == nil {
		return nil
	}
	return &models.PeakPeriod{
		Timestamp: peak.Timestamp,
		Positive:  peak.Positive,
		Neutral:   peak.Neutral,
		Negative:  peak.Negative,
		Total:     peak.Total,
		Ratio:     round2(peakRatio),
	}
}

// detectSentimentChanges walks consecutive significant periods and records a
// change whenever the negative share moves by at least changePointDelta
// percentage points. The first maxSentimentChanges found are kept in series
// order, not re-ranked by magnitude; downstream consumers rely on the first
// entry being the earliest shift.
func detectSentimentChanges(significant []models.SentimentRecord) []models.SentimentChange {
	var changes []models.SentimentChange
	for i := 1; i < len(significant); i++ {
		prev := significant[i-1]
		curr := significant[i]

		delta := percentage(curr.Negative, curr.Total) - percentage(prev.Negative, prev.Total)
		if math.Abs(delta) < changePointDelta {
			continue
		}

		direction := "positive"
		if delta > 0 {
			direction = "negative"
		}
		changes = append(changes, models.SentimentChange{
			From:      prev.Timestamp,
			To:        curr.Timestamp,
			Delta:     round2(delta),
			Direction: direction,
		})
		if len(changes) == maxSentimentChanges {
			break
		}
	}
	return changes
}
