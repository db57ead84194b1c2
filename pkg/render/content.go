package render

// Fixed narrative content and reference tables. These render
// identically in every report; only the surrounding metadata changes.

const methodologyApproach = "Bu penetrasyon testi, güvenlik açıklarını tespit etmek ve sistemin güvenlik durumunu " +
	"değerlendirmek amacıyla gerçekleştirilmiştir. Test süreci, etik hacking prensipleri çerçevesinde " +
	"ve müşteri onayı dahilinde yürütülmüştür."

const noFindingsNotice = "Gerçekleştirilen penetrasyon testi kapsamında herhangi bir güvenlik açığı tespit edilememiştir."

const recommendationsText = "Genel Öneriler:\n\n" +
	"1. Kritik ve Yüksek Riskli Açıklar: Bu kategorideki güvenlik açıklarının acil olarak giderilmesi gerekmektedir.\n\n" +
	"2. Güvenlik Farkındalığı: Personel güvenlik farkındalığı eğitimleri düzenli olarak verilmelidir.\n\n" +
	"3. Düzenli Testler: Güvenlik testleri düzenli aralıklarla tekrarlanmalıdır.\n\n" +
	"4. Patch Yönetimi: Sistem güncellemeleri düzenli olarak uygulanmalıdır.\n\n" +
	"5. İzleme ve Loglama: Güvenlik olayları için kapsamlı izleme ve loglama sistemi kurulmalıdır.\n\n" +
	"Sonuç:\n" +
	"Gerçekleştirilen penetrasyon testi sonucunda tespit edilen güvenlik açıklarının giderilmesi ve " +
	"önerilen güvenlik önlemlerinin uygulanması, sistemin genel güvenlik seviyesinin artırılmasına " +
	"katkı sağlayacaktır."

func standardsTable() *Table {
	return &Table{
		Theme:  ThemePrimary,
		Header: []string{"Standart", "Versiyon", "Açıklama"},
		Widths: []float64{2, 1, 3},
		Rows: [][]Cell{
			{{Text: "OWASP Testing Guide"}, {Text: "v4.2"}, {Text: "Web uygulama güvenlik testi rehberi"}},
			{{Text: "NIST SP 800-115"}, {Text: "2015"}, {Text: "Teknik güvenlik testi ve değerlendirme kılavuzu"}},
			{{Text: "PTES"}, {Text: "v1.1"}, {Text: "Penetrasyon testi yürütme standardı"}},
			{{Text: "ISO 27001"}, {Text: "2013"}, {Text: "Bilgi güvenliği yönetim sistemi"}},
		},
	}
}

func phasesTable() *Table {
	return &Table{
		Theme:  ThemeSecondary,
		Header: []string{"Aşama", "Açıklama", "Süre"},
		Widths: []float64{2, 3, 1},
		Rows: [][]Cell{
			{{Text: "1. Planlama ve Hazırlık"}, {Text: "Test kapsamının belirlenmesi ve hazırlık"}, {Text: "1 gün"}},
			{{Text: "2. Keşif"}, {Text: "Hedef sistem hakkında bilgi toplama"}, {Text: "1-2 gün"}},
			{{Text: "3. Zafiyet Tespiti"}, {Text: "Otomatik ve manuel zafiyet taraması"}, {Text: "2-3 gün"}},
			{{Text: "4. Sömürü"}, {Text: "Tespit edilen zafiyetlerin sömürülmesi"}, {Text: "2-3 gün"}},
			{{Text: "5. Post-Exploitation"}, {Text: "Erişim sonrası aktiviteler"}, {Text: "1 gün"}},
			{{Text: "6. Raporlama"}, {Text: "Bulguların analizi ve rapor hazırlama"}, {Text: "1-2 gün"}},
		},
	}
}

func toolsTable() *Table {
	return &Table{
		Theme:  ThemeAccent,
		Header: []string{"Araç", "Kategori", "Açıklama"},
		Widths: []float64{2, 1.5, 2.5},
		Rows: [][]Cell{
			{{Text: "Nmap"}, {Text: "Port Tarama"}, {Text: "Ağ keşfi ve port tarama"}},
			{{Text: "Burp Suite Professional"}, {Text: "Web Testi"}, {Text: "Web uygulama güvenlik testi"}},
			{{Text: "OWASP ZAP"}, {Text: "Web Testi"}, {Text: "Otomatik güvenlik taraması"}},
			{{Text: "Nessus"}, {Text: "Zafiyet Tarama"}, {Text: "Kapsamlı zafiyet taraması"}},
			{{Text: "Metasploit Framework"}, {Text: "Exploit"}, {Text: "Exploit geliştirme ve test"}},
			{{Text: "Custom Scripts"}, {Text: "Özel"}, {Text: "Özel test senaryoları"}},
		},
	}
}
