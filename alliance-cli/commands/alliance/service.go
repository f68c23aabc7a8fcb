package alliance

import (
	"go.uber.org/zap"

	"github.com/noria-net/alliance-go/alliance-cli/conf"
	"github.com/noria-net/alliance-go/chainio/api"
	"github.com/noria-net/alliance-go/chainio/io"
)

type Service struct {
	ChainIO io.ChainIO
	Query   *api.QueryClient
}

func NewService() *Service {
	conf.InitConfig()
	initLogger(conf.C.LogLevel)

	chainIO, err := io.NewChainIO(conf.C.Chain.ID, conf.C.Chain.RPC, conf.C.Chain.Bech32Prefix)
	if err != nil {
		panic(err)
	}

	if conf.C.Contract.BindingsProxy == "" {
		panic("Contract address for the bindings proxy is empty!")
	}

	queryClient := api.NewQueryClient(chainIO, conf.C.Contract.BindingsProxy)
	return &Service{ChainIO: chainIO, Query: queryClient}
}

func initLogger(level string) {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
