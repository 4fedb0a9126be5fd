package classify

import "github.com/ekaraca/docsorter/internal/core/domain"

// DefaultTable returns the built-in keyword table for scanned Turkish
// business documents. Entry order is the classification priority and is a
// configuration invariant: reordering entries changes classification results
// for texts matching more than one category.
func DefaultTable() *Table {
	return NewTable([]Entry{
		{Category: domain.CategoryTradeRegistryGazette, Keywords: []string{
			"türkiye ticaret sicili gazetesi", "ticaret sicili müdürlüğü",
		}},
		{Category: domain.CategoryDigitalABFCommitment, Keywords: []string{
			"dijital abf taahhütnamesi", "taahhütte bulunan", "tarafınızla akdetmiş olduğum", "sms ile", "sms",
		}},
		{Category: domain.CategoryKVKKExplicitConsent, Keywords: []string{
			"6698 sayılı", "kişisel verilerin korunması kanunu", "açık rıza metni", "veri sorumlusu", "aydınlatma metni", "rıza gösteriyorum",
		}},
		{Category: domain.CategoryFactoringAgreement, Keywords: []string{
			"faktoring hizmet sözleşmesi", "alacakların devri", "temlik", "finansman hizmeti", "faktör şirketi",
		}},
		{Category: domain.CategoryPowerOfAttorney, Keywords: []string{
			"vekaletname", "vekil tayin ettim", "adıma işlem yapmaya yetkilidir", "noter tasdikli vekaletname", "işbu vekaletname ile",
		}},
		{Category: domain.CategorySignatureDeclaration, Keywords: []string{
			"imza beyannamesi", "imzaya yetkili kişi", "ticaret sicil müdürlüğü", "imza örneği",
		}},
		{Category: domain.CategoryABF, Keywords: []string{
			"abf formu", "abf başvuru", "abf numarası", "abf", "alacak bildirimi formu",
		}},
		{Category: domain.CategoryIDs, Keywords: []string{
			"t.c. kimlik no", "t.c. kimlik no.", "nüfus cüzdanı", "kimlik kartı", "türkiye cumhuriyeti",
			"uyruğu", "gender", "nationality", "identity card",
		}},
		{Category: domain.CategoryInvoices, Keywords: []string{
			"e-fatura", "ettn", "fatura no", "fatura tarihi", "fatura tipi", "mal hizmet toplam tutarı", "fatura",
			"invoice", "ınvoıce", "taşıma irsaliye", "taşıma ırsaliye", "müşteri v.d.", "müşteri v.d.no.", "irsaliye",
		}},
		{Category: domain.CategoryCheque, Keywords: []string{
			"çek", "keşideci", "keşide yeri", "çek seri no", "çak", "çak no", "tacir", "basım tarihi", "keşide", "bu çek", "çek karşılığında",
			"bu çek karşılığında", "findeks", "çok seri no", "çok sori no", "mersis no", "morsis no",
		}},
		{Category: domain.CategoryPromissoryNote, Keywords: []string{
			"senet", "emre yazılı senet", "borçlunun adı", "ödenecek meblağ", "vade tarihi", "düzenlenme yeri",
		}},
		{Category: domain.CategoryContracts, Keywords: []string{
			"taraflar arasında akdedilmiştir", "işbu sözleşme", "sözleşmenin konusu", "hak ve yükümlülükler", "tarafların mutabakatı", "kefalet",
			"faktoring sözleşmesi", "sözleşmesi",
		}},
		{Category: domain.CategoryResidenceCertificate, Keywords: []string{
			"yerleşim yeri belgesi", "yerleşim yeri", "ikametgah belgesi", "adres kayıt sistemi", "nüfus ve vatandaşlık işleri genel müdürlüğü",
		}},
		{Category: domain.CategoryDriverLicense, Keywords: []string{
			"sürücü belgesi", "driving licence", "veriliş tarihi", "sınıf", "ehliyet no",
		}},
		{Category: domain.CategoryPopulationRegister, Keywords: []string{
			"nüfus kayıt örneği", "nüfus kayıt", "nüfus kayit örneği", "aile sıra no", "cilt no", "mahallesi", "nüfus müdürlüğü",
		}},
		{Category: domain.CategoryTaxPlate, Keywords: []string{
			"vergi levhası", "vergi kimlik no", "vergı levhası", "faaliyet kodu", "gelir idaresi", "beyan edilen matrah",
			"levhası", "beyan olunan matrah", "matrah", "vergi türü", "vergi kimlik", "tahakkuk eden vergi",
			"intvd.gib.gov.tr",
		}},
		{Category: domain.CategoryOffsetAndPaymentOrder, Keywords: []string{
			"ödeme emri", "mahsup talebi", "vergi dairesi müdürlüğü", "6183 sayılı kanun",
		}},
		{Category: domain.CategoryUnprocessedReturnOrder, Keywords: []string{
			"işlenmemiş iade", "ödenmemiş ödeme emri", "vergi iadesi talebi", "beyanname bilgileri",
		}},
		{Category: domain.CategoryActivityCertificate, Keywords: []string{
			"faaliyet sicili", "ticaret sicil tasdiknamesi", "ticaret sicil", "faaliyet belgesi", "commercial activity",
			"nace kodu", "nace code", "faaliyet bilgileri", "faaliyet kodu", "sicil kayıt sureti", "ticaret", "sicil kayıt", "sicil",
		}},
		{Category: domain.CategoryIndependentAuditCert, Keywords: []string{
			"bağımsız denetime tabi", "denetime tabi", "bağımsız denetim yükümlülüğü", "bağımsız denetim", "smmm", "ymm", "mali müşavirlerce",
		}},
	})
}
