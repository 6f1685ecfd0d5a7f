package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licenza/internal/domain/license"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func lic(id uint, status, authority, licType string, expiry time.Time) *license.License {
	return license.ReconstructLicense(id, 1, "Acme", authority, licType, "", nil, expiry, status, "", expiry)
}

func TestMonthsWindow(t *testing.T) {
	months := MonthsWindow(date(2024, 1, 15))

	require.Len(t, months, 12)
	assert.Equal(t, "2024-01", months[0])
	assert.Equal(t, "2024-12", months[11])

	// year boundary
	months = MonthsWindow(date(2024, 11, 1))
	assert.Equal(t, "2024-11", months[0])
	assert.Equal(t, "2025-10", months[11])
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, date(2024, 1, 1))

	assert.Empty(t, s.ByStatus)
	assert.Empty(t, s.ExpiriesPerMonth)
	assert.Equal(t, 0, s.SLA.Total)
	assert.Equal(t, 0.0, s.SLA.OK30Ratio)
	assert.Equal(t, 0.0, s.SLA.OK60Ratio)
	assert.Len(t, s.MonthsWindow, 12)
}

func TestCompute_Groupings(t *testing.T) {
	today := date(2024, 1, 1)
	licenses := []*license.License{
		lic(1, license.StatusActive, "FDA", "import", date(2024, 2, 10)),
		lic(2, license.StatusActive, "FDA", "Import", date(2024, 3, 5)),
		lic(3, license.StatusPending, "ANVISA", "  gmp ", date(2024, 2, 20)),
		lic(4, license.StatusExpired, "ANVISA", "", date(2023, 12, 1)),
	}

	s := Compute(licenses, today)

	assert.Equal(t, map[string]int{
		license.StatusActive:  2,
		license.StatusPending: 1,
		license.StatusExpired: 1,
	}, s.ByStatus)

	assert.Equal(t, map[string]int{"FDA": 2, "ANVISA": 2}, s.ByAuthority)

	// types are upper-cased, trimmed, blanks bucketed as OTHER
	assert.Equal(t, map[string]int{"IMPORT": 2, "GMP": 1, "OTHER": 1}, s.ByType)
}

func TestCompute_SLARatios(t *testing.T) {
	today := date(2024, 1, 1)

	// of 10 licenses, 7 expire strictly beyond 30 days and 4 beyond 60
	var licenses []*license.License
	for i := 0; i < 3; i++ {
		licenses = append(licenses, lic(uint(i+1), license.StatusActive, "FDA", "A", date(2024, 1, 15))) // within 30
	}
	for i := 0; i < 3; i++ {
		licenses = append(licenses, lic(uint(i+4), license.StatusActive, "FDA", "A", date(2024, 2, 15))) // >30, <=60
	}
	for i := 0; i < 4; i++ {
		licenses = append(licenses, lic(uint(i+7), license.StatusActive, "FDA", "A", date(2024, 6, 1))) // >60
	}

	s := Compute(licenses, today)

	assert.Equal(t, 10, s.SLA.Total)
	assert.InDelta(t, 70.0, s.SLA.OK30Ratio, 1e-9)
	assert.InDelta(t, 40.0, s.SLA.OK60Ratio, 1e-9)
}

func TestCompute_SLABoundaryIsStrict(t *testing.T) {
	today := date(2024, 1, 1)

	// expiry exactly today+30 does not count as beyond the horizon
	s := Compute([]*license.License{
		lic(1, license.StatusActive, "FDA", "A", date(2024, 1, 31)),
	}, today)

	assert.Equal(t, 0.0, s.SLA.OK30Ratio)

	s = Compute([]*license.License{
		lic(1, license.StatusActive, "FDA", "A", date(2024, 2, 1)),
	}, today)

	assert.InDelta(t, 100.0, s.SLA.OK30Ratio, 1e-9)
}

func TestCompute_MonthBuckets(t *testing.T) {
	today := date(2024, 1, 15)
	licenses := []*license.License{
		lic(1, license.StatusActive, "FDA", "import", date(2024, 2, 10)),
		lic(2, license.StatusActive, "FDA", "import", date(2024, 2, 27)),
		lic(3, license.StatusActive, "FDA", "gmp", date(2024, 5, 3)),
	}

	s := Compute(licenses, today)

	assert.Equal(t, []MonthCount{
		{Month: "2024-02", Count: 2},
		{Month: "2024-05", Count: 1},
	}, s.ExpiriesPerMonth)

	assert.Equal(t, 2, s.ByTypePerMonth["2024-02"]["IMPORT"])
	assert.Equal(t, 1, s.ByTypePerMonth["2024-05"]["GMP"])

	assert.Equal(t, 1, s.Heatmap["2024-02"][10])
	assert.Equal(t, 1, s.Heatmap["2024-02"][27])
	assert.Equal(t, 1, s.Heatmap["2024-05"][3])
}

func TestCompute_OutOfWindowExpiryStillCountsInGroupings(t *testing.T) {
	today := date(2024, 1, 1)
	past := lic(1, license.StatusExpired, "FDA", "import", date(2020, 6, 1))

	s := Compute([]*license.License{past}, today)

	assert.Equal(t, 1, s.ByStatus[license.StatusExpired])
	assert.Equal(t, 1, s.ByType["IMPORT"])
	assert.Equal(t, 1, s.SLA.Total)

	// the expiry series includes the past month, but the 12-month keyed
	// structures only carry window months
	assert.Equal(t, []MonthCount{{Month: "2020-06", Count: 1}}, s.ExpiriesPerMonth)
	_, inWindow := s.ByTypePerMonth["2020-06"]
	assert.False(t, inWindow)
	_, inWindow = s.Heatmap["2020-06"]
	assert.False(t, inWindow)
}
