package market

import (
	"log"

	"github.com/gagliardetto/solana-go"

	"openbook-cli/internal/storage"
	"openbook-cli/internal/types"
)

// AddMarket runs the add workflow: load, resolve metadata, persist.
// A load failure aborts before the store is touched, so the persisted
// document stays exactly as it was. Queue lengths are stored as 0
// (unknown); discovering them would need a queue decode the add path
// does not perform.
func (s *Service) AddMarket(address solana.PublicKey) (*types.MarketDescriptor, error) {
	m, err := s.LoadMarket(address)
	if err != nil {
		return nil, err
	}

	s.ResolveMarketMetadata(m)

	s.store.Put(address.String(), storage.MarketRecord{
		Name:         m.Name(),
		BaseMint:     m.BaseMint.String(),
		QuoteMint:    m.QuoteMint.String(),
		MinOrderSize: m.MinOrderSize,
		PriceTick:    m.PriceTick,
	})
	s.store.PutSymbolIfAbsent(m.BaseMint.String(), m.BaseSymbol)
	s.store.PutSymbolIfAbsent(m.QuoteMint.String(), m.QuoteSymbol)

	if err := s.store.Save(); err != nil {
		log.Printf("known-market store: save failed: %v", err)
	}

	return m, nil
}
