package domain

import (
	"creditscore/pkg/serrors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress validates and parses a hex encoded account address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, serrors.With(serrors.ErrBadRequest, "invalid address %q", s)
	}

	return common.HexToAddress(s), nil
}
