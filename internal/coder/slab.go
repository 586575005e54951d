package coder

import (
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Bids/asks accounts share the market prefix (5-byte padding, 8-byte
// account flags) followed by a slab: a fixed header and a buffer of
// 72-byte nodes forming a crit-bit tree. Resting orders live in the
// leaf nodes; their position in the buffer carries no price order.

const (
	slabPrefixLen = 13
	slabHeaderLen = 32
	slabNodeLen   = 72

	flagInitialized = 1 << 0
	flagMarket      = 1 << 1
	flagBids        = 1 << 5
	flagAsks        = 1 << 6

	tagInnerNode = 1
	tagLeafNode  = 2
)

type slabHeader struct {
	BumpIndex    uint32
	Padding1     [4]byte
	FreeListLen  uint32
	Padding2     [4]byte
	FreeListHead uint32
	Root         uint32
	LeafCount    uint32
	Padding3     [4]byte
}

type slabLeafNode struct {
	OwnerSlot     uint8
	FeeTier       uint8
	Padding       [2]byte
	KeyLo         uint64
	KeyHi         uint64
	Owner         [32]byte
	Quantity      uint64
	ClientOrderID uint64
}

// SlabOrder is one resting order pulled out of a slab, still in lots.
type SlabOrder struct {
	PriceLots     uint64
	SizeLots      uint64
	Owner         solana.PublicKey
	ClientOrderID uint64
}

// DecodeOrderQueue extracts every resting order from a bids or asks
// account. Order of the result follows the node buffer, not price.
func DecodeOrderQueue(data []byte) ([]SlabOrder, error) {
	if len(data) < slabPrefixLen+slabHeaderLen {
		return nil, fmt.Errorf("order queue data too short: %d bytes", len(data))
	}

	flags := binary.LittleEndian.Uint64(data[5:slabPrefixLen])
	if flags&flagInitialized == 0 {
		return nil, fmt.Errorf("order queue account flags %#x not initialized", flags)
	}
	if flags&(flagBids|flagAsks) == 0 {
		return nil, fmt.Errorf("account flags %#x mark neither bids nor asks", flags)
	}

	var header slabHeader
	if err := bin.NewBinDecoder(data[slabPrefixLen : slabPrefixLen+slabHeaderLen]).Decode(&header); err != nil {
		return nil, err
	}

	nodes := data[slabPrefixLen+slabHeaderLen:]
	orders := make([]SlabOrder, 0, header.LeafCount)

	for i := 0; i < int(header.BumpIndex); i++ {
		off := i * slabNodeLen
		if off+slabNodeLen > len(nodes) {
			break
		}

		tag := binary.LittleEndian.Uint32(nodes[off : off+4])
		if tag != tagLeafNode {
			continue
		}

		var leaf slabLeafNode
		if err := bin.NewBinDecoder(nodes[off+4 : off+slabNodeLen]).Decode(&leaf); err != nil {
			return nil, err
		}

		orders = append(orders, SlabOrder{
			// Upper 64 bits of the order key hold the price in lots.
			PriceLots:     leaf.KeyHi,
			SizeLots:      leaf.Quantity,
			Owner:         solana.PublicKeyFromBytes(leaf.Owner[:]),
			ClientOrderID: leaf.ClientOrderID,
		})
	}

	return orders, nil
}
