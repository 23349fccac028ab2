package main

import "time"

// Cost statistics shown next to the purchase table. These are simple
// closed-form estimates over calendar dates; the dining-plan numbers
// are configurable via settings.

// monthlySwipeEstimate is the dining cost accumulated so far this month:
// days elapsed since the 1st times swipes per day times cost per swipe.
func monthlySwipeEstimate(now time.Time, cfg settings) float64 {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	days := int(now.Sub(first).Hours() / 24)
	return float64(days) * float64(cfg.SwipesPerDay) * cfg.SwipeCost
}

// semesterSwipeEstimate returns the swipes used since the configured
// semester start and their cost.
func semesterSwipeEstimate(now time.Time, cfg settings) (int64, float64) {
	start, err := time.ParseInLocation(dateISOFormat, cfg.SemesterStart, now.Location())
	if err != nil {
		return 0, 0
	}
	days := int64(now.Sub(start).Hours() / 24)
	if days < 0 {
		days = 0
	}
	swipes := days * int64(cfg.SwipesPerDay)
	return swipes, float64(swipes) * cfg.SwipeCost
}

// monthSpendCents sums the recorded purchases dated in the current month.
func monthSpendCents(rows []purchase, now time.Time) int64 {
	prefix := now.Format("2006-01")
	var total int64
	for _, p := range rows {
		if len(p.purchaseDate) >= len(prefix) && p.purchaseDate[:len(prefix)] == prefix {
			total += p.priceCents
		}
	}
	return total
}

// dailySpendSeries aggregates purchase totals per day over the trailing
// window ending today. Days without purchases are zero so the chart
// x-axis stays continuous.
func dailySpendSeries(rows []purchase, days int, now time.Time) ([]time.Time, []float64) {
	if days <= 0 {
		return nil, nil
	}
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -(days - 1))

	byDay := make(map[string]int64)
	for _, p := range rows {
		byDay[p.purchaseDate] += p.priceCents
	}

	dates := make([]time.Time, 0, days)
	values := make([]float64, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
		values = append(values, float64(byDay[d.Format(dateISOFormat)])/100)
	}
	return dates, values
}
