package currency

const (
	RUB = "RUB"
	USD = "USD"
	EUR = "EUR"
	CNY = "CNY"
	KRW = "KRW"
)

// Base is the currency every tariff amount is expressed in.
const Base = RUB

// Currencies lists the purchase currencies a vehicle price may be given in.
var Currencies = []string{USD, EUR, CNY, KRW}

func IsSupported(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}
