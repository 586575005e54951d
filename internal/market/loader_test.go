package market

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openbook-cli/internal/coder"
	"openbook-cli/internal/types"
)

func TestLoadMarket(t *testing.T) {
	address := solana.NewWallet().PublicKey()
	baseMint := solana.NewWallet().PublicKey()
	quoteMint := solana.NewWallet().PublicKey()
	bids := solana.NewWallet().PublicKey()
	asks := solana.NewWallet().PublicKey()

	gateway := newFakeGateway()
	gateway.putAccount(address, types.OpenBookProgramID, buildMarketAccount(t, coder.MarketStateLayoutV3{
		OwnAddress:   address,
		BaseMint:     baseMint,
		QuoteMint:    quoteMint,
		Bids:         bids,
		Asks:         asks,
		BaseLotSize:  100000000,
		QuoteLotSize: 100,
	}))

	svc := newTestService(t, gateway, types.ProgramOpenBook)

	m, err := svc.LoadMarket(address)
	require.NoError(t, err)

	assert.Equal(t, baseMint, m.BaseMint)
	assert.Equal(t, quoteMint, m.QuoteMint)
	assert.Equal(t, bids, m.Bids)
	assert.Equal(t, asks, m.Asks)
	assert.Equal(t, uint64(100000000), m.BaseLotSize)
	assert.Equal(t, types.ProgramOpenBook, m.Program)
}

func TestLoadMarketDistinguishesFailures(t *testing.T) {
	missing := solana.NewWallet().PublicKey()
	foreign := solana.NewWallet().PublicKey()
	garbage := solana.NewWallet().PublicKey()

	gateway := newFakeGateway()
	gateway.putAccount(foreign, solana.TokenProgramID, make([]byte, 388))
	gateway.putAccount(garbage, types.OpenBookProgramID, []byte{0xde, 0xad})

	svc := newTestService(t, gateway, types.ProgramOpenBook)

	_, err := svc.LoadMarket(missing)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Contains(t, err.Error(), "openbook")

	_, err = svc.LoadMarket(foreign)
	assert.ErrorIs(t, err, ErrOwnershipMismatch)

	_, err = svc.LoadMarket(garbage)
	assert.ErrorIs(t, err, ErrDecodeFailure)
}

func TestLoadMarketRejectsUnknownProgram(t *testing.T) {
	svc := newTestService(t, newFakeGateway(), types.ProgramUnknown)

	_, err := svc.LoadMarket(solana.NewWallet().PublicKey())
	assert.ErrorIs(t, err, ErrUnknownProgram)
}

func TestResolveMarketMetadataDerivesTickAndMinSize(t *testing.T) {
	baseMint := solana.NewWallet().PublicKey()
	quoteMint := solana.NewWallet().PublicKey()

	gateway := newFakeGateway()
	gateway.mints[baseMint] = mintInfo(9)
	gateway.mints[quoteMint] = mintInfo(6)

	svc := newTestService(t, gateway, types.ProgramOpenBook)

	m := &types.MarketDescriptor{
		BaseMint:     baseMint,
		QuoteMint:    quoteMint,
		BaseLotSize:  100000000,
		QuoteLotSize: 100,
	}
	svc.ResolveMarketMetadata(m)

	assert.Equal(t, uint8(9), m.BaseDecimals)
	assert.Equal(t, uint8(6), m.QuoteDecimals)
	assert.InDelta(t, 0.1, m.MinOrderSize, 1e-12)
	assert.InDelta(t, 0.001, m.PriceTick, 1e-12)
}
