package types

import "github.com/gagliardetto/solana-go"

var (
	OpenBookProgramID = solana.MustPublicKeyFromBase58("srmqPvymJeFKQ4zGQed1GFppgkRHL9kaELCbyksJtPX")
	SerumV3ProgramID  = solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
)

// ProgramIdentity identifies which DEX program owns a market account.
type ProgramIdentity int

const (
	ProgramUnknown ProgramIdentity = iota
	ProgramOpenBook
	ProgramSerum
)

func (p ProgramIdentity) ID() solana.PublicKey {
	switch p {
	case ProgramOpenBook:
		return OpenBookProgramID
	case ProgramSerum:
		return SerumV3ProgramID
	default:
		return solana.PublicKey{}
	}
}

func (p ProgramIdentity) String() string {
	switch p {
	case ProgramOpenBook:
		return "openbook"
	case ProgramSerum:
		return "serum"
	default:
		return "unknown"
	}
}

// IdentityFromOwner maps an account owner to a program identity.
// Exact equality only, anything else is ProgramUnknown.
func IdentityFromOwner(owner solana.PublicKey) ProgramIdentity {
	switch owner {
	case OpenBookProgramID:
		return ProgramOpenBook
	case SerumV3ProgramID:
		return ProgramSerum
	default:
		return ProgramUnknown
	}
}
