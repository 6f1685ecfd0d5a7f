package license

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licenza/internal/domain/company"
	"licenza/internal/domain/license"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
)

type fakeLicenseRepo struct {
	licenses map[uint]*license.License
	nextID   uint
}

func newFakeLicenseRepo() *fakeLicenseRepo {
	return &fakeLicenseRepo{licenses: make(map[uint]*license.License), nextID: 1}
}

func (f *fakeLicenseRepo) Create(ctx context.Context, lic *license.License) error {
	lic.SetID(f.nextID)
	f.licenses[f.nextID] = lic
	f.nextID++
	return nil
}

func (f *fakeLicenseRepo) Update(ctx context.Context, lic *license.License) error {
	if _, ok := f.licenses[lic.ID()]; !ok {
		return license.ErrLicenseNotFound
	}
	f.licenses[lic.ID()] = lic
	return nil
}

func (f *fakeLicenseRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.licenses[id]; !ok {
		return license.ErrLicenseNotFound
	}
	delete(f.licenses, id)
	return nil
}

func (f *fakeLicenseRepo) FindByID(ctx context.Context, id uint) (*license.License, error) {
	lic, ok := f.licenses[id]
	if !ok {
		return nil, license.ErrLicenseNotFound
	}
	return lic, nil
}

func (f *fakeLicenseRepo) List(ctx context.Context, filter license.ListFilter) ([]*license.License, error) {
	var out []*license.License
	for _, lic := range f.licenses {
		out = append(out, lic)
	}
	return out, nil
}

func (f *fakeLicenseRepo) FindByExpiryRange(ctx context.Context, companyID *uint, from, to time.Time) ([]*license.License, error) {
	return nil, nil
}

func (f *fakeLicenseRepo) FindUpcoming(ctx context.Context, today time.Time, limit int) ([]*license.License, error) {
	return nil, nil
}

func (f *fakeLicenseRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.licenses)), nil
}

func (f *fakeLicenseRepo) CountExpiryBefore(ctx context.Context, date time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeLicenseRepo) CountExpiryBetween(ctx context.Context, after, upTo time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeLicenseRepo) CountExpired(ctx context.Context, today time.Time) (int64, error) {
	return 0, nil
}

type fakeCompanyRepo struct {
	companies map[uint]*company.Company
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *company.Company) error { return nil }
func (f *fakeCompanyRepo) Update(ctx context.Context, c *company.Company) error { return nil }
func (f *fakeCompanyRepo) Delete(ctx context.Context, id uint) error            { return nil }

func (f *fakeCompanyRepo) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, company.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) Search(ctx context.Context, query string) ([]*company.Company, error) {
	return nil, nil
}

func (f *fakeCompanyRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.companies)), nil
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate(ctx context.Context) error {
	c.calls++
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeLicenseRepo, *countingInvalidator) {
	t.Helper()
	acme, err := company.NewCompany("Acme", "", "", "", "", "", "")
	require.NoError(t, err)
	acme.SetID(1)

	repo := newFakeLicenseRepo()
	invalidator := &countingInvalidator{}
	svc := NewService(repo, &fakeCompanyRepo{companies: map[uint]*company.Company{1: acme}}, invalidator, logger.NewLogger())
	return svc, repo, invalidator
}

func TestService_Create(t *testing.T) {
	svc, repo, invalidator := newTestService(t)

	resp, err := svc.Create(context.Background(), Request{
		CompanyID:   1,
		Authority:   "FDA",
		LicenseType: "import",
		Number:      "A-1",
		IssueDate:   "2023-06-01",
		ExpiryDate:  "2026-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "2026-06-01", resp.ExpiryDate)
	assert.Equal(t, "2023-06-01", resp.IssueDate)
	assert.Equal(t, license.StatusActive, resp.Status)
	assert.Len(t, repo.licenses, 1)
	assert.Equal(t, 1, invalidator.calls, "writes invalidate cached stats")
}

func TestService_Create_UnknownCompany(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), Request{
		CompanyID:   99,
		Authority:   "FDA",
		LicenseType: "import",
		ExpiryDate:  "2026-06-01",
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrorTypeValidation, appErr.Type)
}

func TestService_Create_BadDates(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), Request{
		CompanyID:   1,
		Authority:   "FDA",
		LicenseType: "import",
		ExpiryDate:  "01/06/2026",
	})
	assert.Error(t, err, "expiry must be YYYY-MM-DD")

	_, err = svc.Create(context.Background(), Request{
		CompanyID:   1,
		Authority:   "FDA",
		LicenseType: "import",
		IssueDate:   "not-a-date",
		ExpiryDate:  "2026-06-01",
	})
	assert.Error(t, err)
}

func TestService_Update(t *testing.T) {
	svc, _, invalidator := newTestService(t)

	created, err := svc.Create(context.Background(), Request{
		CompanyID:   1,
		Authority:   "FDA",
		LicenseType: "import",
		ExpiryDate:  "2026-06-01",
	})
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, Request{
		CompanyID:   1,
		Authority:   "FDA",
		LicenseType: "import",
		ExpiryDate:  "2027-01-15",
		Status:      license.StatusSuspended,
	})
	require.NoError(t, err)
	assert.Equal(t, "2027-01-15", resp.ExpiryDate)
	assert.Equal(t, license.StatusSuspended, resp.Status)
	assert.Equal(t, 2, invalidator.calls)
}

func TestService_GetAndDelete_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Get(context.Background(), 42)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrorTypeNotFound, appErr.Type)

	err = svc.Delete(context.Background(), 42)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrorTypeNotFound, appErr.Type)
}
