package promo

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid promo code format")
	ErrInvalidDiscountAmount  = errors.New("flat discount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 1 and 100")
	ErrAmbiguousDiscount      = errors.New("discount must be either a flat amount or a percentage, not both")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes raw user input the same way codes are stored:
// surrounding whitespace stripped, letters upper-cased. Input that does
// not normalize to a well-formed code can never match a stored row.
func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	flatOffCents *int64
	percentOff   *float64
}

func NewFlatDiscount(flatOffCents int64) (Discount, error) {
	if flatOffCents <= 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{flatOffCents: &flatOffCents}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 1 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(flatOffCents *int64, percentOff *float64) (Discount, error) {
	if flatOffCents != nil && percentOff != nil {
		return Discount{}, ErrAmbiguousDiscount
	}

	if flatOffCents == nil && percentOff == nil {
		return Discount{}, ErrAmbiguousDiscount
	}

	if flatOffCents != nil {
		return NewFlatDiscount(*flatOffCents)
	}

	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFlat() bool {
	return d.flatOffCents != nil
}

func (d Discount) FlatOffCents() *int64 {
	return d.flatOffCents
}

func (d Discount) PercentOff() *float64 {
	return d.percentOff
}
