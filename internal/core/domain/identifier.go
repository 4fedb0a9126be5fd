package domain

// IdentifierKind tags a NationalIdentifier with the ID format it satisfied.
type IdentifierKind string

const (
	// IdentifierPersonal is the 11-digit citizen ID number (TCKN).
	IdentifierPersonal IdentifierKind = "personal"
	// IdentifierTax is the 10-digit organizational tax number (VKN).
	IdentifierTax IdentifierKind = "tax"
)

// NationalIdentifier is a checksum-verified Turkish ID number. Values are only
// constructed after passing their kind's checksum; a candidate that fails
// validation is discarded, never carried as a partial value.
type NationalIdentifier struct {
	Value string         `json:"value"`
	Kind  IdentifierKind `json:"kind"`
}
