package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidSymbol() {
	tests := []struct {
		desc       string
		symbol     string
		expIsValid bool
	}{
		{
			desc:       "plain ticker",
			symbol:     "BTC",
			expIsValid: true,
		},
		{
			desc:       "mixed case with separator",
			symbol:     "wBTC-2",
			expIsValid: true,
		},
		{
			desc:       "empty",
			symbol:     "",
			expIsValid: false,
		},
		{
			desc:       "embedded space",
			symbol:     "BTC USD",
			expIsValid: false,
		},
		{
			desc:       "non ascii",
			symbol:     "BTC€",
			expIsValid: false,
		},
		{
			desc:       "too long",
			symbol:     "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidSymbol(t.symbol), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
