package owasp

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Heykelog/PenSH/pkg/model"
)

// Unspecified is the literal marker rendered when a finding carries
// no OWASP category.
const Unspecified = "Belirtilmemiş"

// labels maps category keys to their "A0N:2021 - <name>" display
// strings. Legacy keys from earlier data imports are kept so old
// records keep formatting correctly.
var labels = map[string]string{
	"broken_access_control":       "A01:2021 - Erişim Kontrolünün Kötüye Kullanımı",
	"cryptographic_failures":      "A02:2021 - Kriptografik Hatalar",
	"injection":                   "A03:2021 - Enjeksiyon",
	"insecure_design":             "A04:2021 - Güvenli Olmayan Tasarım",
	"security_misconfiguration":   "A05:2021 - Güvenlik Yanlış Yapılandırması",
	"vulnerable_components":       "A06:2021 - Güvenlik Açıklı ve Güncel Olmayan Bileşenler",
	"authentication_failures":     "A07:2021 - Kimlik Doğrulama Hataları",
	"software_integrity_failures": "A08:2021 - Yazılım ve Veri Bütünlüğü Hataları",
	"logging_monitoring_failures": "A09:2021 - Güvenlik Günlüğü ve İzleme Hataları",
	"ssrf":                        "A10:2021 - Sunucu Taraflı İstek Sahteciliği",

	// Legacy keys
	"identification_failures":                  "A07:2021 - Kimlik Doğrulama Hataları",
	"software_data_integrity_failures":         "A08:2021 - Yazılım ve Veri Bütünlüğü Hataları",
	"security_logging_monitoring_failures":     "A09:2021 - Güvenlik Günlüğü ve İzleme Hataları",
	"server_side_request_forgery":              "A10:2021 - Sunucu Taraflı İstek Sahteciliği",
	"a01_broken_access_control":                "A01:2021 - Erişim Kontrolünün Kötüye Kullanımı",
	"a02_cryptographic_failures":               "A02:2021 - Kriptografik Hatalar",
	"a03_injection":                            "A03:2021 - Enjeksiyon",
	"a04_insecure_design":                      "A04:2021 - Güvenli Olmayan Tasarım",
	"a05_security_misconfiguration":            "A05:2021 - Güvenlik Yanlış Yapılandırması",
	"a06_vulnerable_components":                "A06:2021 - Güvenlik Açıklı ve Güncel Olmayan Bileşenler",
	"a07_identification_failures":              "A07:2021 - Kimlik Doğrulama Hataları",
	"a08_software_data_integrity_failures":     "A08:2021 - Yazılım ve Veri Bütünlüğü Hataları",
	"a09_security_logging_monitoring_failures": "A09:2021 - Güvenlik Günlüğü ve İzleme Hataları",
	"a10_server_side_request_forgery":          "A10:2021 - Sunucu Taraflı İstek Sahteciliği",
}

var titleCaser = cases.Title(language.Turkish)

// Label returns the display label for a category enum value.
func Label(c model.OwaspCategory) string {
	if c == "" {
		return Unspecified
	}
	return FormatCategory(string(c))
}

// FormatCategory maps a raw category string to its display label.
// Unknown strings fall back to a title-cased, underscores-to-spaces
// transform instead of failing.
func FormatCategory(category string) string {
	if category == "" || category == Unspecified {
		return Unspecified
	}
	if label, ok := labels[strings.ToLower(category)]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(category, "_", " "))
}
