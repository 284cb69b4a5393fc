// pkg/ident/pib.go

package ident

// PIBResult carries PIB validation outcome.
type PIBResult struct {
	Formatted string `json:"formatted"`
	IsValid   bool   `json:"isValid"`
}

var pibWeights = [8]int{8, 7, 6, 5, 4, 3, 2, 1}

// ValidatePIB checks a 9-digit Serbian tax number: weighted sum over the
// first 8 digits, control 0 when the sum divides by 11, otherwise
// 11 - remainder. A remainder of 1 yields control 10, which no single
// digit can match, so such numbers are always invalid.
func ValidatePIB(raw string) PIBResult {
	cleaned := cleanDigits(raw)
	res := PIBResult{Formatted: cleaned}

	if len(cleaned) != 9 {
		return res
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(cleaned[i]-'0') * pibWeights[i]
	}

	control := 0
	if rem := sum % 11; rem != 0 {
		control = 11 - rem
	}

	res.IsValid = control == int(cleaned[8]-'0')
	return res
}
