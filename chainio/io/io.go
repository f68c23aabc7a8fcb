package io

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/CosmWasm/wasmd/x/wasm"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/std"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/cosmos/cosmos-sdk/types/module"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/noria-net/alliance-go/chainio/types"
)

// ChainIO is the read side of a chain connection. Every call is a single
// synchronous query against the node's state; nothing is cached or retried.
type ChainIO interface {
	QueryContract(ctx context.Context, opts types.QueryOptions) (*wasmtypes.QuerySmartContractStateResponse, error)
	// QueryCustom routes a module-specific query through the bindings
	// proxy contract and returns the module's raw response bytes.
	QueryCustom(ctx context.Context, opts types.CustomQueryOptions) ([]byte, error)
	QueryNodeStatus(ctx context.Context) (*coretypes.ResultStatus, error)
	GetClientCtx() client.Context
}

type chainIO struct {
	clientCtx client.Context
}

func (c chainIO) QueryContract(ctx context.Context, opts types.QueryOptions) (*wasmtypes.QuerySmartContractStateResponse, error) {
	queryClient := wasmtypes.NewQueryClient(c.clientCtx)
	queryMsg := &wasmtypes.QuerySmartContractStateRequest{
		Address:   opts.ContractAddr,
		QueryData: opts.QueryMsg,
	}

	resp, err := queryClient.SmartContractState(ctx, queryMsg)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c chainIO) QueryCustom(ctx context.Context, opts types.CustomQueryOptions) ([]byte, error) {
	envelope, err := json.Marshal(types.NewCustomChainQuery(opts.Request))
	if err != nil {
		return nil, err
	}
	zap.L().Debug("Querying chain bindings", zap.String("proxy", opts.ProxyAddr), zap.ByteString("request", opts.Request))

	resp, err := c.QueryContract(ctx, types.QueryOptions{
		ContractAddr: opts.ProxyAddr,
		QueryMsg:     envelope,
	})
	if err != nil {
		zap.L().Warn("Custom query failed", zap.String("proxy", opts.ProxyAddr), zap.Error(err))
		return nil, err
	}

	var chainResp types.ChainResponse
	if err := json.Unmarshal(resp.Data, &chainResp); err != nil {
		return nil, fmt.Errorf("failed to unwrap chain response: %w", err)
	}
	return chainResp.Data, nil
}

func (c chainIO) QueryNodeStatus(ctx context.Context) (*coretypes.ResultStatus, error) {
	return c.clientCtx.Client.Status(ctx)
}

func (c chainIO) GetClientCtx() client.Context {
	return c.clientCtx
}

func NewChainIO(chainID, rpcURI, bech32Prefix string) (ChainIO, error) {
	// Set address prefixes
	if err := setAddressPrefixes(bech32Prefix); err != nil {
		return nil, fmt.Errorf("failed to set address prefixes: %w", err)
	}
	// Initialize codec and interface registry
	interfaceRegistry, marshaler, legacyAmino := initCodec()
	// Initialize client context
	clientCtx := initClientContext(chainID, interfaceRegistry, marshaler, legacyAmino)

	// init rpcClient
	rpcClient, err := client.NewClientFromNode(rpcURI)
	if err != nil {
		return nil, err
	}
	clientCtx = clientCtx.WithClient(rpcClient)

	return chainIO{clientCtx: clientCtx}, nil
}

func setAddressPrefixes(bech32Prefix string) error {
	config := sdktypes.GetConfig()
	config.SetBech32PrefixForAccount(bech32Prefix, bech32Prefix+"pub")
	config.SetBech32PrefixForValidator(bech32Prefix+"valoper", bech32Prefix+"valoperpub")
	config.SetBech32PrefixForConsensusNode(bech32Prefix+"valcons", bech32Prefix+"valconspub")

	config.SetAddressVerifier(func(bytes []byte) error {
		if len(bytes) == 0 {
			return fmt.Errorf("addresses cannot be empty")
		}

		if len(bytes) > address.MaxAddrLen {
			return fmt.Errorf("address max length is %d, got %d, %x", address.MaxAddrLen, len(bytes), bytes)
		}

		if len(bytes) != 20 && len(bytes) != 32 {
			return fmt.Errorf("address length must be 20 or 32 bytes, got %d, %x", len(bytes), bytes)
		}

		return nil
	})

	return nil
}

func initCodec() (codectypes.InterfaceRegistry, codec.Codec, *codec.LegacyAmino) {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(interfaceRegistry)
	cryptocodec.RegisterInterfaces(interfaceRegistry)
	std.RegisterInterfaces(interfaceRegistry)

	marshaler := codec.NewProtoCodec(interfaceRegistry)

	legacyAmino := codec.NewLegacyAmino()
	std.RegisterLegacyAminoCodec(legacyAmino)
	module.NewBasicManager(wasm.AppModuleBasic{}).RegisterInterfaces(interfaceRegistry)

	return interfaceRegistry, marshaler, legacyAmino
}

func initClientContext(chainID string, interfaceRegistry codectypes.InterfaceRegistry, marshaler codec.Codec, legacyAmino *codec.LegacyAmino) client.Context {
	txConfig := authtx.NewTxConfig(marshaler, authtx.DefaultSignModes)
	return client.Context{}.
		WithChainID(chainID).
		WithOutputFormat("json").
		WithInterfaceRegistry(interfaceRegistry).
		WithTxConfig(txConfig).
		WithCodec(marshaler).
		WithLegacyAmino(legacyAmino).
		WithAccountRetriever(authtypes.AccountRetriever{})
}
