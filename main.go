package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "go.uber.org/automaxprocs"

	"github.com/gagliardetto/solana-go"

	"openbook-cli/internal/adapter"
	"openbook-cli/internal/config"
	"openbook-cli/internal/market"
	"openbook-cli/internal/report"
	"openbook-cli/internal/rpc"
	"openbook-cli/internal/storage"
	"openbook-cli/internal/types"
	"openbook-cli/internal/updater"
)

const version = "0.4.1"

const usage = `openbook-cli - inspect OpenBook / Serum markets

Usage:
  openbook-cli <market_address>          market info + order book
  openbook-cli <market_address> --add    add market to the local store
  openbook-cli --list [--serum]          list stored markets

Flags:
  -a, --add      add the market to the known-market store
  -l, --list     list stored markets for one program
  -s, --serum    force the Serum v3 program instead of auto-detection
      --depth N  order book levels to print (default 15)
      --update   download the latest binary and replace this one
  -v, --version  print version
  -h, --help     this text
`

type cliArgs struct {
	address string
	add     bool
	list    bool
	serum   bool
	update  bool
	version bool
	help    bool
	depth   int
}

func parseArgs(argv []string) (cliArgs, error) {
	args := cliArgs{depth: config.DefaultReportDepth}

	for i := 0; i < len(argv); i++ {
		switch arg := argv[i]; arg {
		case "--add", "-a":
			args.add = true
		case "--list", "-l":
			args.list = true
		case "--serum", "-s":
			args.serum = true
		case "--update":
			args.update = true
		case "--version", "-v":
			args.version = true
		case "--help", "-h":
			args.help = true
		case "--depth":
			i++
			if i >= len(argv) {
				return args, fmt.Errorf("--depth needs a value")
			}
			depth, err := strconv.Atoi(argv[i])
			if err != nil || depth <= 0 {
				return args, fmt.Errorf("bad --depth value %q", argv[i])
			}
			args.depth = depth
		default:
			if strings.HasPrefix(arg, "-") {
				return args, fmt.Errorf("unknown flag %s", arg)
			}
			if args.address != "" {
				return args, fmt.Errorf("more than one market address given")
			}
			args.address = arg
		}
	}

	return args, nil
}

func openStore(identity types.ProgramIdentity) *storage.Store {
	var backend storage.Backend = storage.NewFileBackend(config.StoreDir)

	if config.RedisAddr != "" {
		if err := adapter.InitRedisClient(config.RedisAddr, config.RedisPassword); err != nil {
			log.Printf("redis unavailable, using file store: %v", err)
		} else if client, err := adapter.GetRedisClient(); err == nil {
			backend = storage.NewRedisBackend(client)
		}
	}

	store := storage.NewStore(backend, identity)
	store.Load()
	return store
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	args, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Print(err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if args.help || len(os.Args) == 1 {
		fmt.Print(usage)
		return
	}
	if args.version {
		fmt.Println("openbook-cli", version)
		return
	}

	if err := config.InitEnv(); err != nil {
		log.Print(err)
		os.Exit(1)
	}

	if args.update {
		if err := updater.SelfUpdate(config.UpdateUrl); err != nil {
			log.Printf("self-update failed: %v", err)
			os.Exit(1)
		}
		fmt.Println("updated to the latest release")
		return
	}

	identity := types.ProgramUnknown
	if args.serum {
		identity = types.ProgramSerum
	}

	if args.list {
		if identity == types.ProgramUnknown {
			identity = types.ProgramOpenBook
		}
		store := openStore(identity)
		fmt.Print(report.MarketList(identity, store.Markets()))
		return
	}

	if args.address == "" {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	address, err := solana.PublicKeyFromBase58(args.address)
	if err != nil {
		log.Printf("invalid market address %q: %v", args.address, err)
		os.Exit(1)
	}

	client := rpc.NewClient(config.RpcHttpUrl)

	if identity == types.ProgramUnknown {
		identity, err = market.ResolveIdentity(client, address)
		if err != nil {
			log.Print(err)
			os.Exit(1)
		}
		if identity == types.ProgramUnknown {
			log.Printf("account %s is owned by neither OpenBook nor Serum", address)
			os.Exit(1)
		}
	}

	svc := market.NewService(client, openStore(identity), identity)

	if args.add {
		m, err := svc.AddMarket(address)
		if err != nil {
			log.Print(err)
			os.Exit(1)
		}
		fmt.Printf("added %s market %s (%s)\n", identity, m.Name(), address)
		return
	}

	m, err := svc.DescribeMarket(address)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	book, err := svc.ReadOrderBook(m, config.DefaultBookDepth)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	fmt.Print(report.MarketInfo(m))
	fmt.Print(report.OrderBook(m, book, args.depth))
}
