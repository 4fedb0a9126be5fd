package identity

import "github.com/ekaraca/docsorter/internal/core/domain"

// Extract scans free text for a checksum-valid national identifier.
//
// Candidates are maximal digit runs: a run bounded by non-digits (or the ends
// of the text), so a digit sequence embedded in a longer number is never
// considered. Runs are evaluated in order of first appearance. Every 11-digit
// run is tried against the personal-ID checksum first; only when none
// validates anywhere in the text are 10-digit runs tried against the
// tax-number checksum. Cheque texts routinely carry both an individual's
// personal ID and the organization's tax number, and the personal ID is the
// one of record.
//
// The second return value is false when no candidate of either kind
// validates.
func Extract(text string) (domain.NationalIdentifier, bool) {
	runs := digitRuns(text)

	for _, run := range runs {
		if len(run) == 11 && ValidTCKN(run) {
			return domain.NationalIdentifier{Value: run, Kind: domain.IdentifierPersonal}, true
		}
	}
	for _, run := range runs {
		if len(run) == 10 && ValidVKN(run) {
			return domain.NationalIdentifier{Value: run, Kind: domain.IdentifierTax}, true
		}
	}
	return domain.NationalIdentifier{}, false
}

// digitRuns returns the maximal ASCII digit runs of text in order of
// appearance.
func digitRuns(text string) []string {
	var runs []string
	start := -1
	for i := 0; i < len(text); i++ {
		isDigit := text[i] >= '0' && text[i] <= '9'
		switch {
		case isDigit && start < 0:
			start = i
		case !isDigit && start >= 0:
			runs = append(runs, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, text[start:])
	}
	return runs
}
