package alert

import (
	"fmt"
	"strings"
)

// SecurityMode selects how the SMTP session is secured.
type SecurityMode string

const (
	SecurityStartTLS SecurityMode = "starttls"
	SecuritySSL      SecurityMode = "ssl"
	SecurityNone     SecurityMode = "none"
)

// IsValidSecurityMode reports whether m is a known security mode.
func IsValidSecurityMode(m SecurityMode) bool {
	switch m {
	case SecurityStartTLS, SecuritySSL, SecurityNone:
		return true
	default:
		return false
	}
}

// Settings is the singleton alert configuration: SMTP transport parameters,
// sender, recipient list and day-count thresholds. Exactly one row exists;
// it is created with defaults at startup when absent.
type Settings struct {
	id           uint
	smtpHost     string
	smtpPort     int
	security     SecurityMode
	smtpUser     string
	smtpPassword string
	fromAddress  string
	recipients   string // comma-separated addresses
	thresholds   string // comma-separated day counts
}

// DefaultSettings returns the settings row created on first startup.
func DefaultSettings() *Settings {
	return &Settings{
		smtpHost:    "smtp.example.com",
		smtpPort:    587,
		security:    SecurityStartTLS,
		fromAddress: "alerts@example.com",
		recipients:  "you@example.com",
		thresholds:  "15,30,60",
	}
}

// ReconstructSettings reconstructs Settings from the persistence layer
func ReconstructSettings(
	id uint,
	smtpHost string,
	smtpPort int,
	security SecurityMode,
	smtpUser string,
	smtpPassword string,
	fromAddress string,
	recipients string,
	thresholds string,
) *Settings {
	return &Settings{
		id:           id,
		smtpHost:     smtpHost,
		smtpPort:     smtpPort,
		security:     security,
		smtpUser:     smtpUser,
		smtpPassword: smtpPassword,
		fromAddress:  fromAddress,
		recipients:   recipients,
		thresholds:   thresholds,
	}
}

// Getters
func (s *Settings) ID() uint               { return s.id }
func (s *Settings) SMTPHost() string       { return s.smtpHost }
func (s *Settings) SMTPPort() int          { return s.smtpPort }
func (s *Settings) Security() SecurityMode { return s.security }
func (s *Settings) SMTPUser() string       { return s.smtpUser }
func (s *Settings) SMTPPassword() string   { return s.smtpPassword }
func (s *Settings) FromAddress() string    { return s.fromAddress }
func (s *Settings) Recipients() string     { return s.recipients }
func (s *Settings) Thresholds() string     { return s.thresholds }

// SetID sets the settings ID (only for persistence layer use)
func (s *Settings) SetID(id uint) {
	s.id = id
}

// Update replaces the configuration. A blank password keeps the stored one so
// that settings edits do not have to re-enter the credential.
func (s *Settings) Update(
	smtpHost string,
	smtpPort int,
	security SecurityMode,
	smtpUser string,
	smtpPassword string,
	fromAddress string,
	recipients string,
	thresholds string,
) error {
	if strings.TrimSpace(smtpHost) == "" {
		return fmt.Errorf("smtp host is required")
	}
	if smtpPort <= 0 || smtpPort > 65535 {
		return fmt.Errorf("smtp port must be between 1 and 65535")
	}
	if security == "" {
		security = SecurityStartTLS
	}
	if !IsValidSecurityMode(security) {
		return fmt.Errorf("invalid security mode: %s", security)
	}
	if strings.TrimSpace(fromAddress) == "" {
		return fmt.Errorf("sender address is required")
	}

	s.smtpHost = strings.TrimSpace(smtpHost)
	s.smtpPort = smtpPort
	s.security = security
	s.smtpUser = smtpUser
	if smtpPassword != "" {
		s.smtpPassword = smtpPassword
	}
	s.fromAddress = strings.TrimSpace(fromAddress)
	s.recipients = recipients
	s.thresholds = thresholds
	return nil
}

// RecipientList splits the configured recipients on commas, trimming blanks.
func (s *Settings) RecipientList() []string {
	return SplitRecipients(s.recipients)
}

// ThresholdDays parses the configured thresholds, falling back to the default
// set when the configuration is empty or malformed.
func (s *Settings) ThresholdDays() []int {
	return ParseThresholds(s.thresholds)
}

// SplitRecipients splits a comma-separated address list, dropping blanks.
func SplitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if addr := strings.TrimSpace(p); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
