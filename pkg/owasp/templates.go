package owasp

import "github.com/Heykelog/PenSH/pkg/model"

// Template is the seeded finding template for one OWASP Top-10
// category. Users create findings from these and then edit the
// specifics (affected area, steps, evidence).
type Template struct {
	Category    model.OwaspCategory
	Title       string
	Description string
	Impact      string
	Solution    string
	RiskLevel   model.RiskLevel
}

// Templates lists the ten seeded templates in A01..A10 order.
func Templates() []Template {
	out := make([]Template, 0, len(model.AllOwaspCategories()))
	for _, c := range model.AllOwaspCategories() {
		out = append(out, templates[c])
	}
	return out
}

// TemplateFor returns the seeded template for a category.
func TemplateFor(c model.OwaspCategory) (Template, bool) {
	t, ok := templates[c]
	return t, ok
}

var templates = map[model.OwaspCategory]Template{
	model.BrokenAccessControl: {
		Category: model.BrokenAccessControl,
		Title:    "Erişim Kontrolünün Kötüye Kullanımı (Broken Access Control)",
		Description: "Erişim kontrolü, kullanıcıların yalnızca yetkili oldukları kaynaklara erişmesini sağlayan güvenlik mekanizmasıdır.\n" +
			"Bu zafiyet, kullanıcıların yetkisi olmayan kaynaklara erişebilmesi durumunda ortaya çıkar. Saldırganlar bu zafiyeti kullanarak:\n" +
			"- Yetkisiz veri erişimi sağlayabilir\n" +
			"- Diğer kullanıcıların hesaplarını ele geçirebilir\n" +
			"- Sistem yönetici yetkilerini elde edebilir\n" +
			"- Hassas bilgileri görüntüleyebilir veya değiştirebilir",
		Impact: "• Kişisel verilerin ifşası\n" +
			"• Finansal kayıplar\n" +
			"• Sistem bütünlüğünün bozulması\n" +
			"• Yasal sorumluluklar\n" +
			"• Kurumsal itibar kaybı",
		Solution: "• Varsayılan olarak erişimi reddet ilkesini uygulayın\n" +
			"• Role-based access control (RBAC) sistemini kurun\n" +
			"• API endpoint'lerinde yetkilendirme kontrolü yapın\n" +
			"• Session yönetimini güvenli şekilde gerçekleştirin\n" +
			"• Düzenli erişim denetimi yapın\n" +
			"• Privilege escalation saldırılarına karşı koruma sağlayın",
		RiskLevel: model.RiskCritical,
	},
	model.CryptographicFailures: {
		Category: model.CryptographicFailures,
		Title:    "Kriptografik Hatalar (Cryptographic Failures)",
		Description: "Kriptografik hatalar, hassas verilerin yetersiz şifrelenmesi veya hiç şifrelenmemesi durumunda ortaya çıkar.\n" +
			"Bu kategori aşağıdaki durumları kapsar:\n" +
			"- Zayıf şifreleme algoritmalarının kullanılması\n" +
			"- Şifreleme anahtarlarının güvenli olmayan şekilde saklanması\n" +
			"- Hassas verilerin düz metin olarak iletilmesi\n" +
			"- SSL/TLS konfigürasyon hataları",
		Impact: "• Hassas verilerin ifşası\n" +
			"• Kimlik hırsızlığı\n" +
			"• Finansal bilgilerin çalınması\n" +
			"• İş sırlarının ele geçirilmesi\n" +
			"• Yasal yaptırımlar",
		Solution: "• Güncel ve güçlü şifreleme algoritmalarını kullanın (AES-256, RSA-2048+)\n" +
			"• HTTPS'i her yerde zorunlu kılın\n" +
			"• Şifreleme anahtarlarını güvenli şekilde saklayın\n" +
			"• Salt kullanarak password hash'leme işlemi yapın\n" +
			"• Perfect Forward Secrecy (PFS) sağlayın\n" +
			"• Düzenli kriptografik güvenlik testleri yapın",
		RiskLevel: model.RiskHigh,
	},
	model.Injection: {
		Category: model.Injection,
		Title:    "Enjeksiyon (Injection)",
		Description: "Enjeksiyon saldırıları, güvenilmeyen verilerin komut veya sorgu olarak yorumlanması sonucu ortaya çıkar.\n" +
			"En yaygın enjeksiyon türleri:\n" +
			"- SQL Injection\n" +
			"- NoSQL Injection\n" +
			"- OS Command Injection\n" +
			"- LDAP Injection\n" +
			"- XPath Injection",
		Impact: "• Veritabanının tamamen ele geçirilmesi\n" +
			"• Sistem komutlarının çalıştırılması\n" +
			"• Veri kaybı veya bozulması\n" +
			"• Unauthorized veri erişimi\n" +
			"• Sistem çökmesi",
		Solution: "• Parameterized queries (prepared statements) kullanın\n" +
			"• Input validation ve sanitization uygulayın\n" +
			"• Whitelist tabanlı input filtreleme yapın\n" +
			"• ORM framework'leri kullanın\n" +
			"• Least privilege ilkesini uygulayın\n" +
			"• Web Application Firewall (WAF) kullanın",
		RiskLevel: model.RiskCritical,
	},
	model.InsecureDesign: {
		Category: model.InsecureDesign,
		Title:    "Güvenli Olmayan Tasarım (Insecure Design)",
		Description: "Güvenli olmayan tasarım, uygulamanın tasarım aşamasında güvenlik gereksinimlerinin dikkate alınmaması sonucu ortaya çıkar.\n" +
			"Bu kategori şunları içerir:\n" +
			"- Threat modeling eksikliği\n" +
			"- Güvenlik kontrollerinin yetersizliği\n" +
			"- Business logic flaws\n" +
			"- Architecture güvenlik açıkları",
		Impact: "• Business logic bypass\n" +
			"• Unauthorized işlem gerçekleştirme\n" +
			"• Sistem bütünlüğünün bozulması\n" +
			"• Veri manipülasyonu\n" +
			"• Fraud ve finansal kayıplar",
		Solution: "• Secure Development Lifecycle (SDL) uygulayın\n" +
			"• Threat modeling yapın\n" +
			"• Security requirements tanımlayın\n" +
			"• Defense in depth stratejisi benimseyin\n" +
			"• Security by design ilkesini uygulayın\n" +
			"• Düzenli security review yapın",
		RiskLevel: model.RiskHigh,
	},
	model.SecurityMisconfiguration: {
		Category: model.SecurityMisconfiguration,
		Title:    "Güvenlik Yanlış Yapılandırması (Security Misconfiguration)",
		Description: "Güvenlik yanlış yapılandırması, sistemlerin güvenli olmayan şekilde yapılandırılması sonucu ortaya çıkar.\n" +
			"Yaygın yanlış yapılandırmalar:\n" +
			"- Default parolalar\n" +
			"- Gereksiz servislerin açık olması\n" +
			"- Debug modunun production'da açık olması\n" +
			"- Güvenlik header'larının eksik olması",
		Impact: "• Unauthorized sistem erişimi\n" +
			"• Hassas bilgilerin ifşası\n" +
			"• System takeover\n" +
			"• Lateral movement\n" +
			"• Privilege escalation",
		Solution: "• Security hardening checklist kullanın\n" +
			"• Default konfigürasyonları değiştirin\n" +
			"• Gereksiz servisleri kapatın\n" +
			"• Security header'larını ekleyin\n" +
			"• Regular security scanning yapın\n" +
			"• Configuration management tools kullanın",
		RiskLevel: model.RiskHigh,
	},
	model.VulnerableComponents: {
		Category: model.VulnerableComponents,
		Title:    "Güvenlik Açıklı ve Güncel Olmayan Bileşenler (Vulnerable & Outdated Components)",
		Description: "Bu kategori, bilinen güvenlik açıkları bulunan veya güncel olmayan third-party bileşenlerin kullanılması durumunu kapsar.\n" +
			"Riskli bileşenler:\n" +
			"- Eski framework'ler\n" +
			"- Güvenlik açıklı kütüphaneler\n" +
			"- Güncellenmeyen işletim sistemleri\n" +
			"- Vulnerable web server'lar",
		Impact: "• Remote code execution\n" +
			"• Veri ihlali\n" +
			"• Server takeover\n" +
			"• Botnet'e dahil edilme\n" +
			"• Reputation damage",
		Solution: "• Dependency scanning tools kullanın\n" +
			"• Düzenli güncelleme yapın\n" +
			"• Vulnerability databases takip edin\n" +
			"• Software composition analysis (SCA) uygulayın\n" +
			"• Patch management process kurun\n" +
			"• Third-party risk assessment yapın",
		RiskLevel: model.RiskHigh,
	},
	model.AuthenticationFailures: {
		Category: model.AuthenticationFailures,
		Title:    "Kimlik Doğrulama Hataları (Identification and Authentication Failures)",
		Description: "Kimlik doğrulama hatalarında, kullanıcı kimlik tespiti veya session yönetimi güvenli şekilde gerçekleştirilmez.\n" +
			"Yaygın hatalar:\n" +
			"- Zayıf parola politikaları\n" +
			"- Brute force koruması eksikliği\n" +
			"- Session hijacking\n" +
			"- Credential stuffing",
		Impact: "• Account takeover\n" +
			"• Identity theft\n" +
			"• Unauthorized access\n" +
			"• Data breach\n" +
			"• Financial fraud",
		Solution: "• Multi-factor authentication (MFA) uygulayın\n" +
			"• Güçlü parola politikaları belirleyin\n" +
			"• Account lockout mekanizması kurun\n" +
			"• Session management'i güvenli yapın\n" +
			"• CAPTCHA kullanın\n" +
			"• Rate limiting uygulayın",
		RiskLevel: model.RiskHigh,
	},
	model.SoftwareIntegrityFailures: {
		Category: model.SoftwareIntegrityFailures,
		Title:    "Yazılım ve Veri Bütünlüğü Hataları (Software & Data Integrity Failures)",
		Description: "Bu kategori, yazılım güncellemeleri, kritik veriler ve CI/CD pipeline'ların bütünlük kontrolü olmadan kullanılması durumlarını kapsar.\n" +
			"Yaygın senaryolar:\n" +
			"- Güvenilmeyen kaynaklardan plugin/library kullanımı\n" +
			"- İmzasız yazılım güncellemeleri\n" +
			"- CI/CD pipeline güvenlik açıkları",
		Impact: "• Supply chain attacks\n" +
			"• Malware injection\n" +
			"• Data corruption\n" +
			"• Backdoor installation\n" +
			"• System compromise",
		Solution: "• Digital signature verification\n" +
			"• Integrity checks uygulayın\n" +
			"• Secure CI/CD pipeline kurun\n" +
			"• Code signing kullanın\n" +
			"• Trusted repositories kullanın\n" +
			"• Supply chain security controls",
		RiskLevel: model.RiskHigh,
	},
	model.LoggingMonitoringFailures: {
		Category: model.LoggingMonitoringFailures,
		Title:    "Güvenlik Günlüğü ve İzleme Hataları (Security Logging & Monitoring Failures)",
		Description: "Bu kategori, yetersiz logging, monitoring ve incident response capability'lerini kapsar.\n" +
			"Yaygın eksiklikler:\n" +
			"- Kritik olayların loglanmaması\n" +
			"- Log analiz eksikliği\n" +
			"- Real-time monitoring eksikliği\n" +
			"- Incident response planı eksikliği",
		Impact: "• Attack detection gecikmesi\n" +
			"• Forensic analysis zorluğu\n" +
			"• Compliance violations\n" +
			"• Extended breach duration\n" +
			"• Regulatory penalties",
		Solution: "• Comprehensive logging strategy\n" +
			"• SIEM/SOAR solutions\n" +
			"• Real-time monitoring\n" +
			"• Incident response plan\n" +
			"• Log retention policies\n" +
			"• Security metrics ve KPI'lar",
		RiskLevel: model.RiskMedium,
	},
	model.SSRF: {
		Category: model.SSRF,
		Title:    "Sunucu Taraflı İstek Sahteciliği (Server-Side Request Forgery - SSRF)",
		Description: "SSRF, web uygulamasının kullanıcı tarafından sağlanan URL'lere validation olmadan istek göndermesi durumunda ortaya çıkar.\n" +
			"Saldırı senaryoları:\n" +
			"- Internal network scanning\n" +
			"- Cloud metadata service erişimi\n" +
			"- Port scanning\n" +
			"- Internal service bypass",
		Impact: "• Internal network exposure\n" +
			"• Cloud credentials theft\n" +
			"• Service enumeration\n" +
			"• Data exfiltration\n" +
			"• Remote code execution",
		Solution: "• URL whitelist uygulayın\n" +
			"• Network segmentation yapın\n" +
			"• Input validation ve sanitization\n" +
			"• Response filtering\n" +
			"• Firewall rules\n" +
			"• Cloud security groups",
		RiskLevel: model.RiskHigh,
	},
}
