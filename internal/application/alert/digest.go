package alert

import (
	"fmt"
	"sort"
	"strings"

	"licenza/internal/domain/license"
)

const (
	digestDateFormat = "02/01/2006"
	placeholder      = "—"
)

// FormatDigest renders the grouped alert message. Groups appear in ascending
// threshold order; empty groups are skipped; within a group the evaluator's
// order is preserved. Missing optional fields render as a placeholder, so
// formatting never fails.
func FormatDigest(itemsByThreshold map[int][]*license.License) string {
	thresholds := make([]int, 0, len(itemsByThreshold))
	for t := range itemsByThreshold {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)

	var b strings.Builder
	b.WriteString("Summary of licenses expiring soon:\n\n")

	for _, t := range thresholds {
		items := itemsByThreshold[t]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&b, "== Within %d day(s) ==\n", t)
		for _, lic := range items {
			companyName := lic.CompanyName()
			if companyName == "" {
				companyName = placeholder
			}
			number := lic.Number()
			if number == "" {
				number = placeholder
			}
			fmt.Fprintf(&b, "- %s | %s (%s) no. %s -> expires on %s\n",
				companyName,
				lic.LicenseType(),
				lic.Authority(),
				number,
				lic.ExpiryDate().Format(digestDateFormat),
			)
		}
		b.WriteString("\n")
	}

	return b.String()
}
