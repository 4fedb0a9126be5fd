package gemini

import "testing"

func TestParseFieldsPlainJSON(t *testing.T) {
	fields, err := parseFields(`{
		"iban": "TR120006200000100000000001",
		"checkNumber": "0012345",
		"branchCode": null,
		"accountNumber": "987654",
		"customerIdNumber": "10000000146",
		"bankCode": "0062",
		"micrCode": null,
		"checkAmount": "15000"
	}`)
	if err != nil {
		t.Fatalf("parseFields() error = %v", err)
	}
	if fields.IBAN == nil || *fields.IBAN != "TR120006200000100000000001" {
		t.Fatalf("iban = %v", fields.IBAN)
	}
	if fields.BranchCode != nil {
		t.Fatalf("branchCode = %v, want nil", *fields.BranchCode)
	}
	if fields.CustomerIDNumber == nil || *fields.CustomerIDNumber != "10000000146" {
		t.Fatalf("customerIdNumber = %v", fields.CustomerIDNumber)
	}
}

func TestParseFieldsStripsMarkdownFence(t *testing.T) {
	fields, err := parseFields("```json\n{\"iban\": \"TR1\", \"checkAmount\": \"100\"}\n```")
	if err != nil {
		t.Fatalf("parseFields() error = %v", err)
	}
	if fields.IBAN == nil || *fields.IBAN != "TR1" {
		t.Fatalf("iban = %v", fields.IBAN)
	}
}

func TestParseFieldsAcceptsBareNumbers(t *testing.T) {
	fields, err := parseFields(`{"checkAmount": 15000.50, "bankCode": 62}`)
	if err != nil {
		t.Fatalf("parseFields() error = %v", err)
	}
	if fields.CheckAmount == nil || *fields.CheckAmount != "15000.50" {
		t.Fatalf("checkAmount = %v", fields.CheckAmount)
	}
	if fields.BankCode == nil || *fields.BankCode != "62" {
		t.Fatalf("bankCode = %v", fields.BankCode)
	}
}

func TestParseFieldsAllNull(t *testing.T) {
	fields, err := parseFields(`{"iban": null, "checkNumber": null, "branchCode": null,
		"accountNumber": null, "customerIdNumber": null, "bankCode": null,
		"micrCode": null, "checkAmount": null}`)
	if err != nil {
		t.Fatalf("parseFields() error = %v", err)
	}
	if !fields.Empty() {
		t.Fatalf("expected empty fields, got %+v", fields)
	}
}

func TestParseFieldsRejectsProse(t *testing.T) {
	if _, err := parseFields("I could not read this cheque."); err == nil {
		t.Fatalf("expected error")
	}
}
