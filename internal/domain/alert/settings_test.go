package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "smtp.example.com", s.SMTPHost())
	assert.Equal(t, 587, s.SMTPPort())
	assert.Equal(t, SecurityStartTLS, s.Security())
	assert.Equal(t, "alerts@example.com", s.FromAddress())
	assert.Equal(t, []int{15, 30, 60}, s.ThresholdDays())
}

func TestSettings_Update(t *testing.T) {
	s := DefaultSettings()

	err := s.Update("mail.corp.example", 465, SecuritySSL, "mailer", "secret", "noreply@corp.example", "a@corp.example,b@corp.example", "7,30")
	require.NoError(t, err)

	assert.Equal(t, "mail.corp.example", s.SMTPHost())
	assert.Equal(t, 465, s.SMTPPort())
	assert.Equal(t, SecuritySSL, s.Security())
	assert.Equal(t, "mailer", s.SMTPUser())
	assert.Equal(t, "secret", s.SMTPPassword())
	assert.Equal(t, "noreply@corp.example", s.FromAddress())
	assert.Equal(t, []string{"a@corp.example", "b@corp.example"}, s.RecipientList())
	assert.Equal(t, []int{7, 30}, s.ThresholdDays())
}

func TestSettings_Update_BlankPasswordKeepsStored(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Update("mail.corp.example", 587, SecurityStartTLS, "mailer", "secret", "noreply@corp.example", "", ""))

	require.NoError(t, s.Update("mail.corp.example", 587, SecurityStartTLS, "mailer", "", "noreply@corp.example", "", ""))

	assert.Equal(t, "secret", s.SMTPPassword(), "blank password on update must keep the stored credential")
}

func TestSettings_Update_Validation(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		mode SecurityMode
		from string
	}{
		{"missing host", "", 587, SecurityStartTLS, "a@b.c"},
		{"zero port", "smtp.example.com", 0, SecurityStartTLS, "a@b.c"},
		{"port too large", "smtp.example.com", 70000, SecurityStartTLS, "a@b.c"},
		{"unknown security mode", "smtp.example.com", 587, SecurityMode("tls13"), "a@b.c"},
		{"missing sender", "smtp.example.com", 587, SecurityStartTLS, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			err := s.Update(tt.host, tt.port, tt.mode, "", "", tt.from, "", "")
			assert.Error(t, err)
		})
	}
}

func TestSettings_Update_EmptySecurityDefaultsToStartTLS(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Update("smtp.example.com", 587, "", "", "", "a@b.c", "", ""))
	assert.Equal(t, SecurityStartTLS, s.Security())
}

func TestSplitRecipients(t *testing.T) {
	assert.Equal(t, []string{"a@b.c", "d@e.f"}, SplitRecipients(" a@b.c ,, d@e.f "))
	assert.Empty(t, SplitRecipients(""))
	assert.Empty(t, SplitRecipients(" , ,"))
}
