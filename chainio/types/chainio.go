package types

import "encoding/json"

type QueryOptions struct {
	ContractAddr string // ContractAddr: Address of the smart contract
	QueryMsg     []byte // QueryMsg: Query message json encoding
}

type CustomQueryOptions struct {
	ProxyAddr string          // ProxyAddr: Address of the bindings proxy contract
	Request   json.RawMessage // Request: Module-specific query, json encoding
}
