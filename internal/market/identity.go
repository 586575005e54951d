package market

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"openbook-cli/internal/types"
)

// ResolveIdentity determines which dex program owns the market account.
// Exact owner equality only: anything but the two fixed program ids is
// ProgramUnknown and callers must treat the address as not a market.
// A forced identity (--serum) skips this entirely.
func ResolveIdentity(gateway Gateway, address solana.PublicKey) (types.ProgramIdentity, error) {
	info, err := gateway.GetAccountInfo(address)
	if err != nil {
		return types.ProgramUnknown, err
	}
	if info == nil || info.Value == nil {
		return types.ProgramUnknown, fmt.Errorf("market %s: %w", address, ErrAccountNotFound)
	}

	owner, err := solana.PublicKeyFromBase58(info.Value.Owner)
	if err != nil {
		return types.ProgramUnknown, fmt.Errorf("market %s: bad owner %q: %w", address, info.Value.Owner, ErrDecodeFailure)
	}

	return types.IdentityFromOwner(owner), nil
}
