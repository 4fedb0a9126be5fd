package domain

// Category is one document-type label from the fixed enumeration. The two
// sentinels are CategoryUnclassified (no keyword matched) and
// CategoryProcessingError (the document could not be read at all).
type Category string

const (
	CategoryTradeRegistryGazette     Category = "trade_registry_gazette"
	CategoryDigitalABFCommitment     Category = "digital_abf_commitment"
	CategoryKVKKExplicitConsent      Category = "kvkk_explicit_consent"
	CategoryFactoringAgreement       Category = "factoring_agreement"
	CategoryPowerOfAttorney          Category = "power_of_attorney"
	CategorySignatureDeclaration     Category = "signature_declaration"
	CategoryABF                      Category = "abf"
	CategoryIDs                      Category = "ids"
	CategoryInvoices                 Category = "invoices"
	CategoryCheque                   Category = "cheque"
	CategoryPromissoryNote           Category = "promissory_note"
	CategoryContracts                Category = "contracts"
	CategoryResidenceCertificate     Category = "residence_certificate"
	CategoryDriverLicense            Category = "driver_license"
	CategoryPopulationRegister       Category = "population_register"
	CategoryTaxPlate                 Category = "tax_plate"
	CategoryOffsetAndPaymentOrder    Category = "offset_and_payment_order"
	CategoryUnprocessedReturnOrder   Category = "unprocessed_return_payment_order"
	CategoryActivityCertificate      Category = "activity_certificate"
	CategoryIndependentAuditCert     Category = "independent_audit_certificate"
	CategoryChequeCustomerScreening  Category = "cheque_customer_screening"
	CategoryUnclassified             Category = "unclassified"
	CategoryProcessingError          Category = "processing-error"
)

// Categories lists every member of the enumeration. The slice order is the
// filing order, not the classification priority; priority lives in the
// keyword table.
func Categories() []Category {
	return []Category{
		CategoryTradeRegistryGazette,
		CategoryDigitalABFCommitment,
		CategoryKVKKExplicitConsent,
		CategoryFactoringAgreement,
		CategoryPowerOfAttorney,
		CategorySignatureDeclaration,
		CategoryABF,
		CategoryIDs,
		CategoryInvoices,
		CategoryCheque,
		CategoryPromissoryNote,
		CategoryContracts,
		CategoryResidenceCertificate,
		CategoryDriverLicense,
		CategoryPopulationRegister,
		CategoryTaxPlate,
		CategoryOffsetAndPaymentOrder,
		CategoryUnprocessedReturnOrder,
		CategoryActivityCertificate,
		CategoryIndependentAuditCert,
		CategoryChequeCustomerScreening,
		CategoryUnclassified,
		CategoryProcessingError,
	}
}

// ValidCategory reports whether name is a member of the enumeration.
func ValidCategory(name string) bool {
	for _, c := range Categories() {
		if string(c) == name {
			return true
		}
	}
	return false
}
