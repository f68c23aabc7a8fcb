package conf

type Conf struct {
	LogLevel string `json:"logLevel"`
	Chain    Chain
	Contract Contract
}

type Chain struct {
	ID           string `json:"id"`
	RPC          string `json:"rpc"`
	Bech32Prefix string `json:"bech32Prefix"`
}

type Contract struct {
	// BindingsProxy is the reflect-style contract that forwards custom
	// queries to the chain's query router.
	BindingsProxy string `json:"bindingsProxy"`
}

var content = `
logLevel = "info"

[chain]
id = "oasis-3" # chain id
rpc = "https://rpc.noria.nodestake.top" # chain rpc url
bech32Prefix = "noria"

[contract]
bindingsProxy = "noria1txjnqpaif3kkph6wehnm7g79r3l2lcsy5z24tc2e8g5ceheu2y2sry2g0t"
`
