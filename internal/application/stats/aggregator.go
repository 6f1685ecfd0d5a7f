package stats

import (
	"sort"
	"time"

	"licenza/internal/domain/license"
	"licenza/internal/shared/biztime"
)

const windowMonths = 12

// MonthsWindow returns the ordered "YYYY-MM" keys for the 12-month span
// starting at the first day of today's month.
func MonthsWindow(today time.Time) []string {
	start := biztime.StartOfMonth(today)
	months := make([]string, 0, windowMonths)
	for i := 0; i < windowMonths; i++ {
		months = append(months, biztime.MonthKey(start.AddDate(0, i, 0)))
	}
	return months
}

// Compute aggregates a set of license records into a Summary. It is a pure
// function over its input snapshot and safe for concurrent use.
//
// The whole summary is built in one pass. Records with a zero expiry date
// still count toward the status/authority/type groupings and the SLA total,
// but are skipped for every date-bucketed field.
func Compute(licenses []*license.License, today time.Time) *Summary {
	today = biztime.DateOf(today)
	months := MonthsWindow(today)

	summary := &Summary{
		ByStatus:       make(map[string]int),
		ByAuthority:    make(map[string]int),
		ByType:         make(map[string]int),
		ByTypePerMonth: make(map[string]map[string]int, windowMonths),
		Heatmap:        make(map[string]map[int]int, windowMonths),
		MonthsWindow:   months,
	}
	for _, mo := range months {
		summary.ByTypePerMonth[mo] = make(map[string]int)
		summary.Heatmap[mo] = make(map[int]int)
	}

	horizon30 := biztime.AddDays(today, 30)
	horizon60 := biztime.AddDays(today, 60)

	expiriesPerMonth := make(map[string]int)
	total := len(licenses)
	ok30 := 0
	ok60 := 0

	for _, lic := range licenses {
		summary.ByStatus[lic.Status()]++
		summary.ByAuthority[lic.Authority()]++
		ltype := lic.NormalizedType()
		summary.ByType[ltype]++

		expiry := lic.ExpiryDate()
		if expiry.IsZero() {
			continue
		}

		key := biztime.MonthKey(expiry)
		expiriesPerMonth[key]++
		if byType, ok := summary.ByTypePerMonth[key]; ok {
			byType[ltype]++
		}
		if heat, ok := summary.Heatmap[key]; ok {
			heat[expiry.Day()]++
		}

		if expiry.After(horizon30) {
			ok30++
		}
		if expiry.After(horizon60) {
			ok60++
		}
	}

	keys := make([]string, 0, len(expiriesPerMonth))
	for key := range expiriesPerMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	summary.ExpiriesPerMonth = make([]MonthCount, 0, len(keys))
	for _, key := range keys {
		summary.ExpiriesPerMonth = append(summary.ExpiriesPerMonth, MonthCount{Month: key, Count: expiriesPerMonth[key]})
	}

	summary.SLA = SLA{Total: total}
	if total > 0 {
		summary.SLA.OK30Ratio = float64(ok30) / float64(total) * 100
		summary.SLA.OK60Ratio = float64(ok60) / float64(total) * 100
	}

	return summary
}
