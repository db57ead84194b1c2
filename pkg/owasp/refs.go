package owasp

import "github.com/Heykelog/PenSH/pkg/model"

// Reference holds the per-category reference metadata rendered in the
// "OWASP Referans Bilgileri" block of detailed findings.
type Reference struct {
	CWEIDs     []string
	CVSSVector string
	OwaspURL   string
	CWEURLs    []string
}

// IsZero reports whether the reference carries no data; sections
// depending on it are simply omitted in that case.
func (r Reference) IsZero() bool {
	return len(r.CWEIDs) == 0 && r.CVSSVector == "" && r.OwaspURL == "" && len(r.CWEURLs) == 0
}

var references = map[model.OwaspCategory]Reference{
	model.BrokenAccessControl: {
		CWEIDs:     []string{"CWE-285", "CWE-639", "CWE-862", "CWE-863"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A01_2021-Broken_Access_Control/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/285.html"},
	},
	model.CryptographicFailures: {
		CWEIDs:     []string{"CWE-259", "CWE-327", "CWE-330"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A02_2021-Cryptographic_Failures/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/259.html"},
	},
	model.Injection: {
		CWEIDs:     []string{"CWE-89", "CWE-78", "CWE-79"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A03_2021-Injection/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/89.html"},
	},
	model.InsecureDesign: {
		CWEIDs:     []string{"CWE-209", "CWE-213", "CWE-352"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A04_2021-Insecure_Design/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/209.html"},
	},
	model.SecurityMisconfiguration: {
		CWEIDs:     []string{"CWE-16", "CWE-200", "CWE-209"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A05_2021-Security_Misconfiguration/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/16.html"},
	},
	model.VulnerableComponents: {
		CWEIDs:     []string{"CWE-1104", "CWE-79", "CWE-89"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A06_2021-Vulnerable_and_Outdated_Components/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/1104.html"},
	},
	model.AuthenticationFailures: {
		CWEIDs:     []string{"CWE-287", "CWE-798", "CWE-522"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A07_2021-Identification_and_Authentication_Failures/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/287.html"},
	},
	model.SoftwareIntegrityFailures: {
		CWEIDs:     []string{"CWE-345", "CWE-494", "CWE-502"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A08_2021-Software_and_Data_Integrity_Failures/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/345.html"},
	},
	model.LoggingMonitoringFailures: {
		CWEIDs:     []string{"CWE-778", "CWE-117", "CWE-532"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A09_2021-Security_Logging_and_Monitoring_Failures/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/778.html"},
	},
	model.SSRF: {
		CWEIDs:     []string{"CWE-918", "CWE-352", "CWE-79"},
		CVSSVector: "AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H",
		OwaspURL:   "https://owasp.org/Top10/A10_2021-Server-Side_Request_Forgery/",
		CWEURLs:    []string{"https://cwe.mitre.org/data/definitions/918.html"},
	},
}

// References returns the reference metadata for a category. An absent
// or unknown category yields a zero Reference.
func References(c model.OwaspCategory) Reference {
	return references[c]
}
