package report

import (
	"fmt"
	"sort"
	"strings"

	"openbook-cli/internal/storage"
	"openbook-cli/internal/types"
)

// BookStats are the derived numbers printed under the order book.
type BookStats struct {
	BestBid          float64
	BestAsk          float64
	Spread           float64
	SpreadPercentage float64
}

// Stats computes best bid/ask and spread. ok is false when either side
// is empty and no spread exists.
func Stats(book *types.OrderBook) (BookStats, bool) {
	if len(book.Bids) == 0 || len(book.Asks) == 0 {
		return BookStats{}, false
	}

	bestBid := book.Bids[0].Price
	bestAsk := book.Asks[0].Price
	spread := bestAsk - bestBid

	return BookStats{
		BestBid:          bestBid,
		BestAsk:          bestAsk,
		Spread:           spread,
		SpreadPercentage: spread / bestBid * 100,
	}, true
}

// MarketInfo renders the market metadata block.
func MarketInfo(m *types.MarketDescriptor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Market %s (%s)\n", m.Name(), m.Program)
	fmt.Fprintf(&b, "  Address:        %s\n", m.Address)
	fmt.Fprintf(&b, "  Base mint:      %s (%s)\n", m.BaseMint, m.BaseSymbol)
	fmt.Fprintf(&b, "  Quote mint:     %s (%s)\n", m.QuoteMint, m.QuoteSymbol)
	fmt.Fprintf(&b, "  Min order size: %s\n", trimFloat(m.MinOrderSize))
	fmt.Fprintf(&b, "  Price tick:     %s\n", trimFloat(m.PriceTick))
	fmt.Fprintf(&b, "  Event queue:    %s  request queue: %s\n", lengthOrDash(m.EventQueueLength), lengthOrDash(m.RequestQueueLength))
	fmt.Fprintf(&b, "  Bids slots:     %s  ask slots:     %s\n", lengthOrDash(m.BidsLength), lengthOrDash(m.AsksLength))

	return b.String()
}

// OrderBook renders both sides, asks printed top-down toward the
// spread so the best ask sits directly above the best bid.
func OrderBook(m *types.MarketDescriptor, book *types.OrderBook, depth int) string {
	var b strings.Builder

	bids := book.Bids
	if len(bids) > depth {
		bids = bids[:depth]
	}
	asks := book.Asks
	if len(asks) > depth {
		asks = asks[:depth]
	}

	fmt.Fprintf(&b, "\nOrder book (%d levels, %s per %s)\n", depth, m.QuoteSymbol, m.BaseSymbol)
	fmt.Fprintf(&b, "%14s %14s\n", "PRICE", "SIZE")

	for i := len(asks) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%14s %14s  ask\n", trimFloat(asks[i].Price), trimFloat(asks[i].Size))
	}
	b.WriteString(strings.Repeat("-", 35) + "\n")
	for _, level := range bids {
		fmt.Fprintf(&b, "%14s %14s  bid\n", trimFloat(level.Price), trimFloat(level.Size))
	}

	if stats, ok := Stats(book); ok {
		fmt.Fprintf(&b, "\nBest bid %s  best ask %s  spread %s (%.3f%%)\n",
			trimFloat(stats.BestBid), trimFloat(stats.BestAsk), trimFloat(stats.Spread), stats.SpreadPercentage)
	} else {
		b.WriteString("\nNo spread: at least one side of the book is empty\n")
	}

	return b.String()
}

// MarketList renders the stored markets of one program identity.
func MarketList(program types.ProgramIdentity, markets map[string]storage.MarketRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Known %s markets: %d\n", program, len(markets))

	addresses := make([]string, 0, len(markets))
	for address := range markets {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	for _, address := range addresses {
		rec := markets[address]
		fmt.Fprintf(&b, "  %-12s %s\n", rec.Name, address)
	}

	return b.String()
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.9f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func lengthOrDash(n int) string {
	if n <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}
