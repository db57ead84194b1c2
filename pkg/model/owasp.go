package model

// OwaspCategory identifies one of the ten OWASP Top-10 (2021)
// vulnerability classes. The stored representation is the lowercase
// snake_case value.
type OwaspCategory string

const (
	BrokenAccessControl       OwaspCategory = "broken_access_control"
	CryptographicFailures     OwaspCategory = "cryptographic_failures"
	Injection                 OwaspCategory = "injection"
	InsecureDesign            OwaspCategory = "insecure_design"
	SecurityMisconfiguration  OwaspCategory = "security_misconfiguration"
	VulnerableComponents      OwaspCategory = "vulnerable_components"
	AuthenticationFailures    OwaspCategory = "authentication_failures"
	SoftwareIntegrityFailures OwaspCategory = "software_integrity_failures"
	LoggingMonitoringFailures OwaspCategory = "logging_monitoring_failures"
	SSRF                      OwaspCategory = "ssrf"
)

// AllOwaspCategories lists the ten categories in A01..A10 order.
func AllOwaspCategories() []OwaspCategory {
	return []OwaspCategory{
		BrokenAccessControl,
		CryptographicFailures,
		Injection,
		InsecureDesign,
		SecurityMisconfiguration,
		VulnerableComponents,
		AuthenticationFailures,
		SoftwareIntegrityFailures,
		LoggingMonitoringFailures,
		SSRF,
	}
}

// IsValid reports whether c is one of the ten 2021 categories.
func (c OwaspCategory) IsValid() bool {
	switch c {
	case BrokenAccessControl, CryptographicFailures, Injection,
		InsecureDesign, SecurityMisconfiguration, VulnerableComponents,
		AuthenticationFailures, SoftwareIntegrityFailures,
		LoggingMonitoringFailures, SSRF:
		return true
	}
	return false
}

// String returns the category as a string.
func (c OwaspCategory) String() string {
	return string(c)
}
