package types

import "github.com/gagliardetto/solana-go"

// MarketDescriptor is the in-memory view of one market for a single CLI
// invocation. Queue length fields are 0 when unknown.
type MarketDescriptor struct {
	Address     solana.PublicKey
	Program     ProgramIdentity
	BaseMint    solana.PublicKey
	QuoteMint   solana.PublicKey
	BaseSymbol  string
	QuoteSymbol string

	Bids         solana.PublicKey
	Asks         solana.PublicKey
	EventQueue   solana.PublicKey
	RequestQueue solana.PublicKey

	BaseLotSize   uint64
	QuoteLotSize  uint64
	BaseDecimals  uint8
	QuoteDecimals uint8

	MinOrderSize float64
	PriceTick    float64

	EventQueueLength   int
	RequestQueueLength int
	BidsLength         int
	AsksLength         int
}

func (m *MarketDescriptor) Name() string {
	return m.BaseSymbol + "/" + m.QuoteSymbol
}

type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "bid"
	}
	return "ask"
}

// OrderLevel is one aggregated L2 price level.
type OrderLevel struct {
	Price float64
	Size  float64
	Side  Side
}

// OrderBook holds both sides of a market, bids best-first descending,
// asks best-first ascending.
type OrderBook struct {
	Bids []OrderLevel
	Asks []OrderLevel
}

// TokenMetadata describes a mint for display purposes.
type TokenMetadata struct {
	Symbol   string
	Name     string
	Decimals uint8
}
