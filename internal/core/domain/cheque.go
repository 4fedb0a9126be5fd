package domain

// ChequeFields holds the structured values read off a cheque image by the
// remote extraction model. Every field is nullable: the model returns null
// for anything it cannot read, and a failed extraction yields all nulls.
type ChequeFields struct {
	IBAN             *string `json:"iban"`
	CheckNumber      *string `json:"checkNumber"`
	BranchCode       *string `json:"branchCode"`
	AccountNumber    *string `json:"accountNumber"`
	CustomerIDNumber *string `json:"customerIdNumber"`
	BankCode         *string `json:"bankCode"`
	MICRCode         *string `json:"micrCode"`
	CheckAmount      *string `json:"checkAmount"`
}

// Empty reports whether no field was extracted.
func (f ChequeFields) Empty() bool {
	return f.IBAN == nil && f.CheckNumber == nil && f.BranchCode == nil &&
		f.AccountNumber == nil && f.CustomerIDNumber == nil && f.BankCode == nil &&
		f.MICRCode == nil && f.CheckAmount == nil
}

// ChequeRecord is one row of the cheque extraction report.
type ChequeRecord struct {
	DocumentID string       `json:"document_id"`
	Filename   string       `json:"filename"`
	Fields     ChequeFields `json:"fields"`
	Error      string       `json:"error,omitempty"`
}

// ChequeReport summarizes one extraction run over the cheque bucket.
type ChequeReport struct {
	Records    []ChequeRecord `json:"records"`
	Total      int            `json:"total"`
	Extracted  int            `json:"extracted"`
	Failed     int            `json:"failed"`
	ReportPath string         `json:"report_path,omitempty"`
}
