package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"licenza/internal/domain/license"
)

func reconstruct(id uint, company, authority, licType, number string, expiry time.Time) *license.License {
	return license.ReconstructLicense(id, 1, company, authority, licType, number, nil, expiry, license.StatusActive, "", expiry)
}

func TestFormatDigest(t *testing.T) {
	items := map[int][]*license.License{
		30: {
			reconstruct(2, "Beta Labs", "ANVISA", "GMP", "B-77", date(2024, 1, 20)),
		},
		15: {
			reconstruct(1, "Acme Pharma", "FDA", "Import", "A-123", date(2024, 1, 10)),
		},
	}

	got := FormatDigest(items)

	want := "Summary of licenses expiring soon:\n\n" +
		"== Within 15 day(s) ==\n" +
		"- Acme Pharma | Import (FDA) no. A-123 -> expires on 10/01/2024\n\n" +
		"== Within 30 day(s) ==\n" +
		"- Beta Labs | GMP (ANVISA) no. B-77 -> expires on 20/01/2024\n\n"

	assert.Equal(t, want, got, "groups ascending by threshold, dates as DD/MM/YYYY")
}

func TestFormatDigest_PlaceholdersForMissingFields(t *testing.T) {
	items := map[int][]*license.License{
		15: {
			reconstruct(1, "", "FDA", "Import", "", date(2024, 1, 10)),
		},
	}

	got := FormatDigest(items)

	assert.Contains(t, got, "- — | Import (FDA) no. — -> expires on 10/01/2024")
}

func TestFormatDigest_SkipsEmptyGroups(t *testing.T) {
	items := map[int][]*license.License{
		15: {},
		30: {
			reconstruct(1, "Acme", "FDA", "Import", "A-1", date(2024, 1, 20)),
		},
		60: {},
	}

	got := FormatDigest(items)

	assert.NotContains(t, got, "Within 15")
	assert.NotContains(t, got, "Within 60")
	assert.Contains(t, got, "== Within 30 day(s) ==")
}

func TestFormatDigest_NoItems(t *testing.T) {
	got := FormatDigest(map[int][]*license.License{})
	assert.Equal(t, "Summary of licenses expiring soon:\n\n", got)
}
