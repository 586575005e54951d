package coder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
)

// MarketStateLayoutV3 is the on-chain market account layout shared by
// Serum DEX v3 and OpenBook. 388 bytes: 5-byte prefix, 8-byte account
// flags, state fields, 7-byte tail padding.
type MarketStateLayoutV3 struct {
	Prefix                 [5]byte
	AccountFlags           uint64
	OwnAddress             solana.PublicKey
	VaultSignerNonce       uint64
	BaseMint               solana.PublicKey
	QuoteMint              solana.PublicKey
	BaseVault              solana.PublicKey
	BaseDepositsTotal      uint64
	BaseFeesAccrued        uint64
	QuoteVault             solana.PublicKey
	QuoteDepositsTotal     uint64
	QuoteFeesAccrued       uint64
	QuoteDustThreshold     uint64
	RequestQueue           solana.PublicKey
	EventQueue             solana.PublicKey
	Bids                   solana.PublicKey
	Asks                   solana.PublicKey
	BaseLotSize            uint64
	QuoteLotSize           uint64
	FeeRateBps             uint64
	ReferrerRebatesAccrued uint64
	Tail                   [7]byte
}

const MarketStateV3Len = 388

// DecodeMarket decodes a raw market account into its v3 layout.
func DecodeMarket(data []byte) (MarketStateLayoutV3, error) {
	var state MarketStateLayoutV3

	if len(data) < MarketStateV3Len {
		return state, fmt.Errorf("market account data too short: %d bytes, want %d", len(data), MarketStateV3Len)
	}

	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.LittleEndian, &state); err != nil {
		return state, err
	}

	if state.AccountFlags&flagInitialized == 0 || state.AccountFlags&flagMarket == 0 {
		return state, fmt.Errorf("account flags %#x do not mark an initialized market", state.AccountFlags)
	}

	return state, nil
}

// PriceLotsToNumber converts a price expressed in lots to a token-unit price.
func PriceLotsToNumber(lots, baseLotSize, quoteLotSize uint64, baseDecimals, quoteDecimals uint8) float64 {
	return float64(lots) * float64(quoteLotSize) * math.Pow10(int(baseDecimals)-int(quoteDecimals)) / float64(baseLotSize)
}

// SizeLotsToNumber converts a size expressed in base lots to base-token units.
func SizeLotsToNumber(lots, baseLotSize uint64, baseDecimals uint8) float64 {
	return float64(lots) * float64(baseLotSize) / math.Pow10(int(baseDecimals))
}
