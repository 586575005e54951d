package market

import (
	"errors"

	"github.com/gagliardetto/solana-go"

	"openbook-cli/internal/rpc"
	"openbook-cli/internal/storage"
	"openbook-cli/internal/types"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrOwnershipMismatch = errors.New("account not owned by expected program")
	ErrDecodeFailure     = errors.New("failed to decode account")
	ErrUnknownProgram    = errors.New("account owned by neither dex program")
)

// Gateway is the slice of the RPC client the market pipeline consumes.
type Gateway interface {
	GetAccountInfo(publicKey solana.PublicKey) (*rpc.AccountInfo, error)
	GetMintInfo(publicKey solana.PublicKey) (*rpc.MintInfo, error)
}

// Service runs the market pipeline for one resolved program identity.
// One instance per invocation; not safe for concurrent use.
type Service struct {
	gateway Gateway
	store   *storage.Store
	program types.ProgramIdentity
}

func NewService(gateway Gateway, store *storage.Store, program types.ProgramIdentity) *Service {
	return &Service{
		gateway: gateway,
		store:   store,
		program: program,
	}
}

func (s *Service) Program() types.ProgramIdentity {
	return s.program
}

func (s *Service) Store() *storage.Store {
	return s.store
}
