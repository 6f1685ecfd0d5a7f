package alert

import (
	"context"
	"fmt"
	"time"

	domain "licenza/internal/domain/alert"
	"licenza/internal/domain/license"
)

type fakeLicenseRepo struct {
	licenses []*license.License
	findErr  error
}

func (f *fakeLicenseRepo) Create(ctx context.Context, lic *license.License) error { return nil }
func (f *fakeLicenseRepo) Update(ctx context.Context, lic *license.License) error { return nil }
func (f *fakeLicenseRepo) Delete(ctx context.Context, id uint) error              { return nil }

func (f *fakeLicenseRepo) FindByID(ctx context.Context, id uint) (*license.License, error) {
	for _, lic := range f.licenses {
		if lic.ID() == id {
			return lic, nil
		}
	}
	return nil, license.ErrLicenseNotFound
}

func (f *fakeLicenseRepo) List(ctx context.Context, filter license.ListFilter) ([]*license.License, error) {
	return f.licenses, nil
}

func (f *fakeLicenseRepo) FindByExpiryRange(ctx context.Context, companyID *uint, from, to time.Time) ([]*license.License, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*license.License
	for _, lic := range f.licenses {
		if companyID != nil && lic.CompanyID() != *companyID {
			continue
		}
		expiry := lic.ExpiryDate()
		if expiry.Before(from) || expiry.After(to) {
			continue
		}
		out = append(out, lic)
	}
	return out, nil
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

type fakeLedger struct {
	entries   map[string]bool
	recordErr error
	existsErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{entries: make(map[string]bool)}
}

func ledgerKey(licenseID uint, threshold int) string {
	return fmt.Sprintf("%d:%d", licenseID, threshold)
}

func (f *fakeLedger) Exists(ctx context.Context, licenseID uint, threshold int) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.entries[ledgerKey(licenseID, threshold)], nil
}

func (f *fakeLedger) Record(ctx context.Context, n *domain.Notification) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	key := ledgerKey(n.LicenseID(), n.Threshold())
	if f.entries[key] {
		return domain.ErrDuplicateNotification
	}
	f.entries[key] = true
	return nil
}

func (f *fakeLedger) size() int { return len(f.entries) }

type fakeSettingsRepo struct {
	settings *domain.Settings
	getErr   error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *domain.Settings) error {
	f.settings = settings
	return nil
}

func (f *fakeSettingsRepo) EnsureDefault(ctx context.Context) error { return nil }

type sentMail struct {
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(settings *domain.Settings, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{subject: subject, body: body})
	return nil
}
