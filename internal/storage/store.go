package storage

import (
	"encoding/json"
	"log"

	"openbook-cli/internal/types"
)

// MarketRecord is the persisted shape of one known market. Queue length
// fields are 0 when never discovered.
type MarketRecord struct {
	Name               string  `json:"name"`
	BaseMint           string  `json:"baseMint"`
	QuoteMint          string  `json:"quoteMint"`
	MinOrderSize       float64 `json:"minOrderSize"`
	PriceTick          float64 `json:"priceTick"`
	EventQueueLength   int     `json:"eventQueueLength"`
	RequestQueueLength int     `json:"requestQueueLength"`
	BidsLength         int     `json:"bidsLength"`
	AsksLength         int     `json:"asksLength"`
}

type document struct {
	Markets map[string]MarketRecord `json:"markets"`
	Symbols map[string]string       `json:"symbols"`
}

// Backend persists one opaque document per scope key.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// Store is the known-market store for exactly one program identity.
// The two identities' documents are never merged or cross-queried.
type Store struct {
	backend Backend
	key     string
	doc     document
}

func NewStore(backend Backend, identity types.ProgramIdentity) *Store {
	return &Store{
		backend: backend,
		key:     "markets-" + identity.String(),
		doc: document{
			Markets: make(map[string]MarketRecord),
			Symbols: make(map[string]string),
		},
	}
}

// Load reads the persisted document. Missing or corrupt state resets
// to empty instead of failing the invocation.
func (s *Store) Load() {
	data, err := s.backend.Load(s.key)
	if err != nil {
		log.Printf("known-market store %s: load failed, starting empty: %v", s.key, err)
		return
	}
	if data == nil {
		return
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("known-market store %s: corrupt state, starting empty: %v", s.key, err)
		return
	}

	if doc.Markets != nil {
		s.doc.Markets = doc.Markets
	}
	if doc.Symbols != nil {
		s.doc.Symbols = doc.Symbols
	}
}

// Save persists the current document. Called only after a successful
// add; failures are the caller's to log, not fatal.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	return s.backend.Save(s.key, data)
}

func (s *Store) Get(address string) (MarketRecord, bool) {
	rec, ok := s.doc.Markets[address]
	return rec, ok
}

func (s *Store) Put(address string, rec MarketRecord) {
	s.doc.Markets[address] = rec
}

func (s *Store) Markets() map[string]MarketRecord {
	return s.doc.Markets
}

func (s *Store) GetSymbol(mint string) (string, bool) {
	symbol, ok := s.doc.Symbols[mint]
	return symbol, ok
}

// PutSymbolIfAbsent records a symbol only when the mint has none yet.
// First writer wins.
func (s *Store) PutSymbolIfAbsent(mint string, symbol string) {
	if _, ok := s.doc.Symbols[mint]; ok {
		return
	}
	s.doc.Symbols[mint] = symbol
}
