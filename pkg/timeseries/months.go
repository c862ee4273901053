package timeseries

import "fmt"

// MonthCount aggregation sonucundaki tek ay
type MonthCount struct {
	Month string `bson:"_id" json:"month"` // YYYY-MM
	Count int64  `bson:"count" json:"count"`
}

// MonthViews track-view aggregation sonucu
type MonthViews struct {
	Month string `bson:"_id" json:"month"`
	Views int64  `bson:"views" json:"views"`
}

// FillYearCounts verilen yıl için 12 elemanlı, eksik ayları sıfırla dolduran seri üretir
func FillYearCounts(year int, results []MonthCount) []MonthCount {
	byMonth := make(map[string]int64, len(results))
	for _, r := range results {
		byMonth[r.Month] = r.Count
	}

	months := make([]MonthCount, 12)
	for i := 0; i < 12; i++ {
		key := fmt.Sprintf("%d-%02d", year, i+1)
		months[i] = MonthCount{Month: key, Count: byMonth[key]}
	}
	return months
}

// FillYearViews FillYearCounts'un görüntülenme sayaçları için karşılığı
func FillYearViews(year int, results []MonthViews) []MonthViews {
	byMonth := make(map[string]int64, len(results))
	for _, r := range results {
		byMonth[r.Month] = r.Views
	}

	months := make([]MonthViews, 12)
	for i := 0; i < 12; i++ {
		key := fmt.Sprintf("%d-%02d", year, i+1)
		months[i] = MonthViews{Month: key, Views: byMonth[key]}
	}
	return months
}
