package checkout

import "math"

// Amount is a processor amount in minor units.
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// currencyExponents lists the ISO 4217 currencies whose minor unit is not
// two decimal places.
var currencyExponents = map[string]int{
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
	"BYN": 2,
	"CLP": 0, "CVE": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0,
	"XOF": 0, "XPF": 0,
}

func exponent(currency string) int {
	if exp, ok := currencyExponents[currency]; ok {
		return exp
	}
	return 2
}

// MinorUnits converts a major-unit amount to processor minor units.
func MinorUnits(amount float64, currency string) int64 {
	factor := math.Pow10(exponent(currency))
	return int64(math.Round(amount * factor))
}

// MajorUnits converts processor minor units back to a major-unit amount.
func MajorUnits(value int64, currency string) float64 {
	factor := math.Pow10(exponent(currency))
	return float64(value) / factor
}
