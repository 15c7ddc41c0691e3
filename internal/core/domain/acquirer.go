package domain

const binLength = 6

// Acquirer is one of the simulated acquiring banks. The set is closed: AcquirerA and AcquirerB.
type Acquirer int

const (
	AcquirerA Acquirer = iota + 1
	AcquirerB
)

// Name returns the display name of the acquirer.
func (a Acquirer) Name() string {
	switch a {
	case AcquirerA:
		return "Acquirer A"
	case AcquirerB:
		return "Acquirer B"
	default:
		return "unknown"
	}
}

func (a Acquirer) String() string {
	return a.Name()
}

// Valid reports whether a is one of the known acquirers.
func (a Acquirer) Valid() bool {
	return a == AcquirerA || a == AcquirerB
}

// Decide renders the acquirer's decision from the last digit of the card number.
// A approves even digits, B approves odd digits. A card number that does not end in a digit
// cannot be decided and stays PENDING.
func (a Acquirer) Decide(cardNumber string) TransactionOutcome {
	if cardNumber == "" {
		return OutcomePending
	}
	last := cardNumber[len(cardNumber)-1]
	if last < '0' || last > '9' {
		return OutcomePending
	}
	even := (last-'0')%2 == 0

	switch a {
	case AcquirerA:
		if even {
			return OutcomeApproved
		}
		return OutcomeDenied
	case AcquirerB:
		if !even {
			return OutcomeApproved
		}
		return OutcomeDenied
	default:
		return OutcomePending
	}
}

// SelectAcquirer routes a BIN to an acquirer by the parity of its digit sum:
// even goes to A, odd goes to B. Characters that are not digits add nothing to the sum.
func SelectAcquirer(bin string) Acquirer {
	sum := 0
	for i := 0; i < len(bin); i++ {
		if c := bin[i]; c >= '0' && c <= '9' {
			sum += int(c - '0')
		}
	}
	if sum%2 == 0 {
		return AcquirerA
	}
	return AcquirerB
}
