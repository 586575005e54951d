package market

import (
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"openbook-cli/internal/config"
	"openbook-cli/internal/types"
)

const unknownTokenName = "Unknown Token"

// ResolveSymbol maps a mint identifier to display metadata. Total over
// its input: cached symbol first, then a live mint lookup for the
// authoritative decimals, then a truncated-identifier fallback. Any
// failure along the way, including a malformed identifier, lands in
// the fallback instead of propagating.
func (s *Service) ResolveSymbol(mint string) types.TokenMetadata {
	fallback := types.TokenMetadata{
		Symbol:   truncateMint(mint),
		Name:     unknownTokenName,
		Decimals: config.AssumedDecimals,
	}

	raw, err := base58.Decode(mint)
	if err != nil || len(raw) != solana.PublicKeyLength {
		return fallback
	}

	if symbol, ok := s.store.GetSymbol(mint); ok {
		return types.TokenMetadata{
			Symbol:   symbol,
			Name:     symbol,
			Decimals: config.AssumedDecimals,
		}
	}

	mintInfo, err := s.gateway.GetMintInfo(solana.PublicKeyFromBytes(raw))
	if err != nil || mintInfo == nil {
		return fallback
	}

	return types.TokenMetadata{
		Symbol:   truncateMint(mint),
		Name:     unknownTokenName,
		Decimals: mintInfo.Decimals,
	}
}

func truncateMint(mint string) string {
	if mint == "" {
		return "unknown"
	}
	if len(mint) > 8 {
		return mint[:8]
	}
	return mint
}
