package alert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licenza/internal/domain/license"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func makeLicense(t *testing.T, id uint, expiry time.Time) *license.License {
	t.Helper()
	lic, err := license.NewLicense(1, "FDA", "import", "", nil, expiry, "", "")
	require.NoError(t, err)
	lic.SetID(id)
	return lic
}

func TestEvaluator_WindowBoundaries(t *testing.T) {
	today := date(2024, 1, 1)

	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2023, 12, 31)), // already expired, never alerts
		makeLicense(t, 2, today),              // expires today, inclusive lower bound
		makeLicense(t, 3, date(2024, 1, 16)),  // day 15, inclusive upper bound
		makeLicense(t, 4, date(2024, 1, 17)),  // day 16, outside
	}}

	ev := NewEvaluator(repo, newFakeLedger())

	result, err := ev.Evaluate(context.Background(), today, []int{15})
	require.NoError(t, err)

	require.Len(t, result, 1)
	ids := licenseIDs(result[15])
	assert.Equal(t, []uint{2, 3}, ids)
}

func TestEvaluator_LicenseQualifiesForMultipleThresholds(t *testing.T) {
	today := date(2024, 1, 1)

	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}

	ev := NewEvaluator(repo, newFakeLedger())

	result, err := ev.Evaluate(context.Background(), today, []int{15, 30})
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, licenseIDs(result[15]))
	assert.Equal(t, []uint{1}, licenseIDs(result[30]))
}

func TestEvaluator_LedgerEntriesAreFiltered(t *testing.T) {
	today := date(2024, 1, 1)

	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
		makeLicense(t, 2, date(2024, 1, 12)),
	}}

	ledger := newFakeLedger()
	ledger.entries[ledgerKey(1, 15)] = true

	ev := NewEvaluator(repo, ledger)

	result, err := ev.Evaluate(context.Background(), today, []int{15, 30})
	require.NoError(t, err)

	assert.Equal(t, []uint{2}, licenseIDs(result[15]), "license 1 was already notified at 15")
	assert.Equal(t, []uint{1, 2}, licenseIDs(result[30]), "ledger entries are per threshold")
}

func TestEvaluator_EveryThresholdPresentInResult(t *testing.T) {
	ev := NewEvaluator(&fakeLicenseRepo{}, newFakeLedger())

	result, err := ev.Evaluate(context.Background(), date(2024, 1, 1), []int{15, 30, 60})
	require.NoError(t, err)

	require.Len(t, result, 3)
	for _, threshold := range []int{15, 30, 60} {
		group, ok := result[threshold]
		assert.True(t, ok)
		assert.Empty(t, group)
	}
	assert.False(t, HasAny(result))
}

func licenseIDs(licenses []*license.License) []uint {
	ids := make([]uint, 0, len(licenses))
	for _, lic := range licenses {
		ids = append(ids, lic.ID())
	}
	return ids
}
