package market

import (
	"fmt"
	"sort"

	"github.com/gagliardetto/solana-go"

	"openbook-cli/internal/coder"
	"openbook-cli/internal/config"
	"openbook-cli/internal/types"
)

// ReadOrderBook reads both order queues of a market and returns L2
// levels: orders at the same price merged, bids descending, asks
// ascending, each side truncated independently to depth. The two
// fetches are sequential; an empty queue is an empty side.
func (s *Service) ReadOrderBook(m *types.MarketDescriptor, depth int) (*types.OrderBook, error) {
	if depth <= 0 {
		depth = config.DefaultBookDepth
	}

	bids, err := s.readSide(m, m.Bids, types.Bid, depth)
	if err != nil {
		return nil, err
	}

	asks, err := s.readSide(m, m.Asks, types.Ask, depth)
	if err != nil {
		return nil, err
	}

	return &types.OrderBook{Bids: bids, Asks: asks}, nil
}

func (s *Service) readSide(m *types.MarketDescriptor, queue solana.PublicKey, side types.Side, depth int) ([]types.OrderLevel, error) {
	info, err := s.gateway.GetAccountInfo(queue)
	if err != nil {
		return nil, err
	}
	if info == nil || info.Value == nil {
		return nil, fmt.Errorf("%s queue %s: %w", side, queue, ErrAccountNotFound)
	}

	data, err := info.Value.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%s queue %s: %v: %w", side, queue, err, ErrDecodeFailure)
	}

	orders, err := coder.DecodeOrderQueue(data)
	if err != nil {
		return nil, fmt.Errorf("%s queue %s: %v: %w", side, queue, err, ErrDecodeFailure)
	}

	return aggregateLevels(m, orders, side, depth), nil
}

// aggregateLevels merges orders sharing a price into one level while
// still in lots, then converts and sorts best-first. Slab storage
// order is a tree layout and never price order.
func aggregateLevels(m *types.MarketDescriptor, orders []coder.SlabOrder, side types.Side, depth int) []types.OrderLevel {
	sizeByPrice := make(map[uint64]uint64, len(orders))
	for _, o := range orders {
		sizeByPrice[o.PriceLots] += o.SizeLots
	}

	levels := make([]types.OrderLevel, 0, len(sizeByPrice))
	for priceLots, sizeLots := range sizeByPrice {
		levels = append(levels, types.OrderLevel{
			Price: coder.PriceLotsToNumber(priceLots, m.BaseLotSize, m.QuoteLotSize, m.BaseDecimals, m.QuoteDecimals),
			Size:  coder.SizeLotsToNumber(sizeLots, m.BaseLotSize, m.BaseDecimals),
			Side:  side,
		})
	}

	sort.Slice(levels, func(i, j int) bool {
		if side == types.Bid {
			return levels[i].Price > levels[j].Price
		}
		return levels[i].Price < levels[j].Price
	})

	if len(levels) > depth {
		levels = levels[:depth]
	}

	return levels
}
