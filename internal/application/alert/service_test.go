package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "licenza/internal/domain/alert"
	"licenza/internal/domain/license"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
)

func testSettings(thresholds string) *domain.Settings {
	return domain.ReconstructSettings(
		1, "smtp.example.com", 587, domain.SecurityStartTLS,
		"", "", "alerts@example.com", "ops@example.com", thresholds,
	)
}

func newTestService(settings *domain.Settings, repo *fakeLicenseRepo, ledger *fakeLedger, mailer *fakeMailer, today time.Time) *Service {
	s := NewService(&fakeSettingsRepo{settings: settings}, repo, ledger, mailer, logger.NewLogger())
	s.now = func() time.Time { return today }
	return s
}

func TestRunAlerts_SendsAndRecords(t *testing.T) {
	today := date(2024, 1, 1)
	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}
	ledger := newFakeLedger()
	mailer := &fakeMailer{}

	svc := newTestService(testSettings("15,30"), repo, ledger, mailer, today)

	sent, message, err := svc.RunAlerts(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, "alerts sent", message)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "License Expiry Alerts", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "== Within 15 day(s) ==")
	assert.Contains(t, mailer.sent[0].body, "== Within 30 day(s) ==")

	// one ledger entry per (license, threshold) pair included in the digest
	assert.Equal(t, 2, ledger.size())
	assert.True(t, ledger.entries[ledgerKey(1, 15)])
	assert.True(t, ledger.entries[ledgerKey(1, 30)])
}

func TestRunAlerts_SecondRunSendsNothing(t *testing.T) {
	today := date(2024, 1, 1)
	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}
	ledger := newFakeLedger()
	mailer := &fakeMailer{}

	svc := newTestService(testSettings("15,30"), repo, ledger, mailer, today)

	sent, _, err := svc.RunAlerts(context.Background())
	require.NoError(t, err)
	require.True(t, sent)

	sent, message, err := svc.RunAlerts(context.Background())
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Equal(t, "no alerts to send", message)
	assert.Len(t, mailer.sent, 1, "no second mail")
}

func TestRunAlerts_NothingToSend(t *testing.T) {
	svc := newTestService(testSettings("15"), &fakeLicenseRepo{}, newFakeLedger(), &fakeMailer{}, date(2024, 1, 1))

	sent, message, err := svc.RunAlerts(context.Background())
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Equal(t, "no alerts to send", message)
}

func TestRunAlerts_TransportFailureLeavesLedgerUntouched(t *testing.T) {
	today := date(2024, 1, 1)
	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}
	ledger := newFakeLedger()
	mailer := &fakeMailer{sendErr: errors.New("dial tcp: connection refused")}

	svc := newTestService(testSettings("15"), repo, ledger, mailer, today)

	sent, _, err := svc.RunAlerts(context.Background())
	assert.False(t, sent)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrorTypeUnavailable, appErr.Type)

	assert.Equal(t, 0, ledger.size(), "transport failure must not consume threshold crossings")

	// the crossing is retried on the next run once the transport recovers
	mailer.sendErr = nil
	sent, _, err = svc.RunAlerts(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, 1, ledger.size())
}

func TestRunAlerts_DuplicateRecordTreatedAsSuccess(t *testing.T) {
	today := date(2024, 1, 1)
	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}
	ledger := newFakeLedger()
	ledger.recordErr = domain.ErrDuplicateNotification
	mailer := &fakeMailer{}

	svc := newTestService(testSettings("15"), repo, ledger, mailer, today)

	sent, message, err := svc.RunAlerts(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, "alerts sent", message)
}

func TestRunAlerts_RecordFailureAfterSend(t *testing.T) {
	today := date(2024, 1, 1)
	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}
	ledger := newFakeLedger()
	ledger.recordErr = errors.New("disk full")
	mailer := &fakeMailer{}

	svc := newTestService(testSettings("15"), repo, ledger, mailer, today)

	sent, _, err := svc.RunAlerts(context.Background())
	assert.True(t, sent, "the mail did go out")
	require.Error(t, err)
}

func TestRunAlerts_NoRecipients(t *testing.T) {
	today := date(2024, 1, 1)
	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}
	mailer := &fakeMailer{sendErr: domain.ErrNoRecipients}

	svc := newTestService(testSettings("15"), repo, newFakeLedger(), mailer, today)

	sent, _, err := svc.RunAlerts(context.Background())
	assert.False(t, sent)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrorTypeValidation, appErr.Type)
}

func TestRunAlerts_SettingsMissing(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: domain.ErrSettingsNotFound}, &fakeLicenseRepo{}, newFakeLedger(), &fakeMailer{}, logger.NewLogger())

	_, _, err := svc.RunAlerts(context.Background())
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrorTypeNotFound, appErr.Type)
}

func TestRunAlerts_MalformedThresholdsFallBackToDefault(t *testing.T) {
	today := date(2024, 1, 1)
	repo := &fakeLicenseRepo{licenses: []*license.License{
		makeLicense(t, 1, date(2024, 1, 10)),
	}}
	ledger := newFakeLedger()

	svc := newTestService(testSettings("garbage"), repo, ledger, &fakeMailer{}, today)

	sent, _, err := svc.RunAlerts(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)

	// default thresholds 15, 30, 60 all cover an expiry 9 days out
	assert.Equal(t, 3, ledger.size())
}

func TestSendTest(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(&fakeSettingsRepo{settings: testSettings("15")}, &fakeLicenseRepo{}, newFakeLedger(), mailer, logger.NewLogger())

	require.NoError(t, svc.SendTest(context.Background()))
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].subject, "Test")
}

func TestUpdateSettings_BlankPasswordKeepsStored(t *testing.T) {
	stored := domain.ReconstructSettings(
		1, "smtp.example.com", 587, domain.SecurityStartTLS,
		"mailer", "stored-secret", "alerts@example.com", "ops@example.com", "15,30,60",
	)
	repo := &fakeSettingsRepo{settings: stored}
	svc := NewService(repo, &fakeLicenseRepo{}, newFakeLedger(), &fakeMailer{}, logger.NewLogger())

	resp, err := svc.UpdateSettings(context.Background(), UpdateSettingsRequest{
		SMTPHost:    "smtp.example.com",
		SMTPPort:    587,
		Security:    "starttls",
		SMTPUser:    "mailer",
		SMTPPass:    "",
		FromAddress: "alerts@example.com",
		Recipients:  "ops@example.com",
		Thresholds:  "7,30",
	})
	require.NoError(t, err)

	assert.Equal(t, "stored-secret", repo.settings.SMTPPassword())
	assert.True(t, resp.HasPassword)
	assert.Equal(t, "7,30", resp.Thresholds)
}

func TestUpdateSettings_Validation(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{settings: testSettings("15")}, &fakeLicenseRepo{}, newFakeLedger(), &fakeMailer{}, logger.NewLogger())

	_, err := svc.UpdateSettings(context.Background(), UpdateSettingsRequest{
		SMTPHost:    "smtp.example.com",
		SMTPPort:    587,
		Security:    "carrier-pigeon",
		FromAddress: "alerts@example.com",
		Recipients:  "ops@example.com",
	})
	assert.Error(t, err)
}

func TestGetSettings_NeverEchoesPassword(t *testing.T) {
	stored := domain.ReconstructSettings(
		1, "smtp.example.com", 587, domain.SecuritySSL,
		"mailer", "secret", "alerts@example.com", "ops@example.com", "15",
	)
	svc := NewService(&fakeSettingsRepo{settings: stored}, &fakeLicenseRepo{}, newFakeLedger(), &fakeMailer{}, logger.NewLogger())

	resp, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.HasPassword)
	assert.Equal(t, "ssl", resp.Security)
}
