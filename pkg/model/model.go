package model

import (
	"sort"
	"time"
)

// Customer is a client organization a report is written for.
type Customer struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	IsDefault     bool      `json:"is_default,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// Tester is a security analyst who performed a test.
type Tester struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Title     string    `json:"title,omitempty"` // e.g. "Senior Security Analyst"
	IsDefault bool      `json:"is_default,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Report is the aggregate root for one penetration test engagement.
type Report struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Methodology string `json:"methodology,omitempty"`
	Scope       string `json:"scope,omitempty"`

	ClientName string `json:"client_name,omitempty"`
	TestDate   string `json:"test_date,omitempty"` // free text, e.g. "12-16 Mayıs 2025"
	TesterName string `json:"tester_name,omitempty"`
	LogoPath   string `json:"logo_path,omitempty"`

	CustomerID int `json:"customer_id,omitempty"`
	TesterID   int `json:"tester_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Finding is a single reported vulnerability or observation.
type Finding struct {
	ID               int           `json:"id"`
	ReportID         int           `json:"report_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	AffectedArea     string        `json:"affected_area,omitempty"`
	RiskLevel        RiskLevel     `json:"risk_level"`
	OwaspCategory    OwaspCategory `json:"owasp_category,omitempty"`
	Solution         string        `json:"solution,omitempty"`
	StepsToReproduce string        `json:"steps_to_reproduce,omitempty"`
	Impact           string        `json:"impact,omitempty"`
	Request          string        `json:"request,omitempty"`
	Response         string        `json:"response,omitempty"`
	DisplayOrder     int           `json:"display_order"`

	CVSSScore string `json:"cvss_score,omitempty"`
	CWEID     string `json:"cwe_id,omitempty"`
	Refs      string `json:"refs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`

	POCImages []*POCImage `json:"poc_images,omitempty"`
}

// POCImage is a proof-of-concept screenshot attached to a finding.
type POCImage struct {
	ID               int       `json:"id"`
	FindingID        int       `json:"finding_id"`
	Filename         string    `json:"filename"`          // stored (unique) name
	OriginalFilename string    `json:"original_filename"` // user-facing name
	FilePath         string    `json:"file_path"`
	FileSize         int64     `json:"file_size,omitempty"`
	MimeType         string    `json:"mime_type,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// KnowledgeBaseTemplate is a reusable snapshot of a finding, kept in
// the knowledge base independently of the report it came from.
type KnowledgeBaseTemplate struct {
	ID               int           `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	AffectedArea     string        `json:"affected_area,omitempty"`
	Impact           string        `json:"impact,omitempty"`
	Solution         string        `json:"solution,omitempty"`
	RiskLevel        RiskLevel     `json:"risk_level"`
	OwaspCategory    OwaspCategory `json:"owasp_category,omitempty"`
	StepsToReproduce string        `json:"steps_to_reproduce,omitempty"`
	Request          string        `json:"request,omitempty"`
	Response         string        `json:"response,omitempty"`
	CVSSScore        string        `json:"cvss_score,omitempty"`
	CWEID            string        `json:"cwe_id,omitempty"`
	Refs             string        `json:"refs,omitempty"`
	FromFinding      bool          `json:"from_finding"`
	FindingID        int           `json:"finding_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at,omitempty"`
}

// SortFindings orders findings canonically: display_order ascending,
// ties broken by id ascending. Every renderer and export backend
// relies on this single definition of the order.
func SortFindings(findings []*Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].DisplayOrder != findings[j].DisplayOrder {
			return findings[i].DisplayOrder < findings[j].DisplayOrder
		}
		return findings[i].ID < findings[j].ID
	})
}

// SortedFindings returns a canonically ordered copy, leaving the
// input slice untouched.
func SortedFindings(findings []*Finding) []*Finding {
	out := make([]*Finding, len(findings))
	copy(out, findings)
	SortFindings(out)
	return out
}
