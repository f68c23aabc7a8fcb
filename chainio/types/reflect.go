package types

import "encoding/json"

// The bindings proxy is a reflect-style contract: its Chain smart query
// forwards the embedded request to the chain's query router and returns
// the raw response bytes. Routing a custom query through it is the only
// way an off-chain client can reach module bindings that are otherwise
// visible to contracts alone.

type ChainQuery struct {
	Chain ChainRequest `json:"chain"`
}

type ChainRequest struct {
	Request QueryRequest `json:"request"`
}

// QueryRequest is the host runtime's generic query envelope. Only the
// custom branch is used here.
type QueryRequest struct {
	Custom json.RawMessage `json:"custom"`
}

// ChainResponse carries the raw response bytes of a forwarded query,
// base64 on the wire.
type ChainResponse struct {
	Data []byte `json:"data"`
}

// NewCustomChainQuery wraps a module-specific query for the proxy
// contract's Chain endpoint.
func NewCustomChainQuery(request json.RawMessage) ChainQuery {
	return ChainQuery{Chain: ChainRequest{Request: QueryRequest{Custom: request}}}
}
