package market

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"openbook-cli/internal/coder"
	"openbook-cli/internal/rpc"
	"openbook-cli/internal/storage"
	"openbook-cli/internal/types"
)

// fakeGateway serves canned accounts so the pipeline can be exercised
// without a node.
type fakeGateway struct {
	accounts  map[solana.PublicKey]*rpc.AccountInfoValue
	mints     map[solana.PublicKey]*rpc.MintInfo
	err       error
	mintCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		accounts: make(map[solana.PublicKey]*rpc.AccountInfoValue),
		mints:    make(map[solana.PublicKey]*rpc.MintInfo),
	}
}

func (f *fakeGateway) GetAccountInfo(publicKey solana.PublicKey) (*rpc.AccountInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &rpc.AccountInfo{Value: f.accounts[publicKey]}, nil
}

func (f *fakeGateway) GetMintInfo(publicKey solana.PublicKey) (*rpc.MintInfo, error) {
	f.mintCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.mints[publicKey], nil
}

func mintInfo(decimals uint8) *rpc.MintInfo {
	return &rpc.MintInfo{Decimals: decimals, IsInitialized: true}
}

func (f *fakeGateway) putAccount(address, owner solana.PublicKey, data []byte) {
	f.accounts[address] = &rpc.AccountInfoValue{
		Owner: owner.String(),
		Data:  []string{base64.StdEncoding.EncodeToString(data)},
	}
}

const (
	slabFlagInitialized = 1 << 0
	slabFlagMarket      = 1 << 1
	slabFlagBids        = 1 << 5
	slabFlagAsks        = 1 << 6
)

type testOrder struct {
	priceLots uint64
	sizeLots  uint64
}

func buildSlabAccount(t *testing.T, flags uint64, orders []testOrder) []byte {
	t.Helper()

	buf := make([]byte, 13+32+len(orders)*72+7)
	copy(buf[0:5], "serum")
	binary.LittleEndian.PutUint64(buf[5:13], flags)
	binary.LittleEndian.PutUint32(buf[13:17], uint32(len(orders)))
	binary.LittleEndian.PutUint32(buf[37:41], uint32(len(orders)))

	nodes := buf[45:]
	for i, o := range orders {
		base := i * 72
		binary.LittleEndian.PutUint32(nodes[base:base+4], 2) // leaf
		binary.LittleEndian.PutUint64(nodes[base+16:base+24], o.priceLots)
		binary.LittleEndian.PutUint64(nodes[base+56:base+64], o.sizeLots)
	}

	return buf
}

func buildMarketAccount(t *testing.T, state coder.MarketStateLayoutV3) []byte {
	t.Helper()

	if state.AccountFlags == 0 {
		state.AccountFlags = slabFlagInitialized | slabFlagMarket
	}

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, &state))
	return buf.Bytes()
}

func newTestService(t *testing.T, gateway Gateway, program types.ProgramIdentity) *Service {
	t.Helper()

	store := storage.NewStore(storage.NewFileBackend(t.TempDir()), program)
	store.Load()
	return NewService(gateway, store, program)
}
