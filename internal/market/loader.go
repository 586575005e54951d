package market

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"openbook-cli/internal/coder"
	"openbook-cli/internal/types"
)

// LoadMarket fetches and decodes one market account. Single RPC round
// trip, no retry; transport failures propagate unmodified. The three
// decode-side failures (missing account, foreign owner, malformed data)
// surface as distinct errors carrying the attempted program name.
func (s *Service) LoadMarket(address solana.PublicKey) (*types.MarketDescriptor, error) {
	if s.program == types.ProgramUnknown {
		return nil, fmt.Errorf("market %s: %w", address, ErrUnknownProgram)
	}

	info, err := s.gateway.GetAccountInfo(address)
	if err != nil {
		return nil, err
	}
	if info == nil || info.Value == nil {
		return nil, fmt.Errorf("%s market %s: %w", s.program, address, ErrAccountNotFound)
	}
	if info.Value.Owner != s.program.ID().String() {
		return nil, fmt.Errorf("%s market %s: owned by %s: %w", s.program, address, info.Value.Owner, ErrOwnershipMismatch)
	}

	data, err := info.Value.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%s market %s: %v: %w", s.program, address, err, ErrDecodeFailure)
	}

	state, err := coder.DecodeMarket(data)
	if err != nil {
		return nil, fmt.Errorf("%s market %s: %v: %w", s.program, address, err, ErrDecodeFailure)
	}

	return &types.MarketDescriptor{
		Address:      address,
		Program:      s.program,
		BaseMint:     state.BaseMint,
		QuoteMint:    state.QuoteMint,
		Bids:         state.Bids,
		Asks:         state.Asks,
		EventQueue:   state.EventQueue,
		RequestQueue: state.RequestQueue,
		BaseLotSize:  state.BaseLotSize,
		QuoteLotSize: state.QuoteLotSize,
	}, nil
}

// ResolveMarketMetadata fills symbols and decimals for both legs and
// derives the display tick and minimum order size. Never fails, same
// contract as ResolveSymbol.
func (s *Service) ResolveMarketMetadata(m *types.MarketDescriptor) {
	base := s.ResolveSymbol(m.BaseMint.String())
	quote := s.ResolveSymbol(m.QuoteMint.String())

	m.BaseSymbol = base.Symbol
	m.QuoteSymbol = quote.Symbol
	m.BaseDecimals = base.Decimals
	m.QuoteDecimals = quote.Decimals

	if m.BaseLotSize > 0 && m.QuoteLotSize > 0 {
		m.MinOrderSize = coder.SizeLotsToNumber(1, m.BaseLotSize, m.BaseDecimals)
		m.PriceTick = coder.PriceLotsToNumber(1, m.BaseLotSize, m.QuoteLotSize, m.BaseDecimals, m.QuoteDecimals)
	}
}

// DescribeMarket is the read path behind the market-info report: live
// load and metadata resolution, with queue lengths overlaid from the
// known-market store when the market was added before.
func (s *Service) DescribeMarket(address solana.PublicKey) (*types.MarketDescriptor, error) {
	m, err := s.LoadMarket(address)
	if err != nil {
		return nil, err
	}

	s.ResolveMarketMetadata(m)

	if rec, ok := s.store.Get(address.String()); ok {
		m.EventQueueLength = rec.EventQueueLength
		m.RequestQueueLength = rec.RequestQueueLength
		m.BidsLength = rec.BidsLength
		m.AsksLength = rec.AsksLength
	}

	return m, nil
}
