package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	minCardLength = 12
	maxCardLength = 19
)

// MaxAmount is the largest amount a transaction can carry: 17 integer digits and two decimals,
// the range of the NUMERIC(19, 2) amount columns.
var MaxAmount = decimal.RequireFromString("99999999999999999.99")

// SupportedCurrencies lists the currencies the gateway accepts.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CAD"}

// Validator checks a payment request against the gateway's rules. Only the expiry rule depends
// on time, which is read from the injected now function.
type Validator struct {
	now func() time.Time
}

// NewValidator returns a Validator reading the current time from now. A nil now uses time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Validate runs the rules in order and returns the first failure as a *ValidationError.
func (v *Validator) Validate(req PaymentRequest) error {
	if !ValidCardNumber(req.CardNumber) {
		return ErrInvalidCardNumber
	}
	if !v.validExpiry(req.ExpiryDate) {
		return ErrInvalidExpiryDate
	}
	if !ValidCVV(req.CVV, req.CardNumber) {
		return ErrInvalidCVV
	}
	if !slices.Contains(SupportedCurrencies, req.Currency) {
		return ErrUnsupportedCurrency
	}
	if !validAmount(req.Amount) {
		return ErrInvalidAmount
	}
	return nil
}

// validAmount accepts positive amounts with at most two decimals, up to MaxAmount.
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		amount.Equal(amount.Round(2)) &&
		amount.LessThanOrEqual(MaxAmount)
}

// ValidCardNumber reports whether number is 12 to 19 digits with a valid Luhn checksum.
func ValidCardNumber(number string) bool {
	if len(number) < minCardLength || len(number) > maxCardLength {
		return false
	}
	return Luhn(number)
}

// Luhn doubles every second digit from the right, folds two-digit results and checks that the
// total is a multiple of ten. Any non-digit makes the number invalid.
func Luhn(number string) bool {
	if number == "" {
		return false
	}
	sum, second := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if second {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		second = !second
	}
	return sum%10 == 0
}

// ValidCVV checks the CVV length for the card's issuer prefix: 4 digits for cards starting
// with 34 or 37, 3 digits otherwise.
func ValidCVV(cvv, cardNumber string) bool {
	expected := 3
	if strings.HasPrefix(cardNumber, "34") || strings.HasPrefix(cardNumber, "37") {
		expected = 4
	}
	return len(cvv) == expected && isDigits(cvv)
}

func (v *Validator) validExpiry(expiryDate string) bool {
	year, month, ok := ParseExpiry(expiryDate)
	if !ok {
		return false
	}
	now := v.now()
	return year*12+int(month) > now.Year()*12+int(now.Month())
}

// ParseExpiry parses a strict MM/YY card face date. Two-digit years map to 2000-2099.
func ParseExpiry(expiryDate string) (int, time.Month, bool) {
	if len(expiryDate) != 5 || expiryDate[2] != '/' {
		return 0, 0, false
	}
	mm, yy := expiryDate[:2], expiryDate[3:]
	if !isDigits(mm) || !isDigits(yy) {
		return 0, 0, false
	}
	month := int(mm[0]-'0')*10 + int(mm[1]-'0')
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	year := 2000 + int(yy[0]-'0')*10 + int(yy[1]-'0')
	return year, time.Month(month), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
