// Package alliance contains the CosmWasm bindings types for the alliance
// module: the custom messages and queries a contract may exchange with the
// host chain, plus the wire codecs that reconcile the module's native
// encodings with the contract side.
//
// Field names and variant tags are part of the wire contract with the host
// module and must not be renamed independently of it.
package alliance

import (
	"encoding/json"

	sdktypes "github.com/cosmos/cosmos-sdk/types"
)

// AllianceMsg is the set of custom messages the alliance module accepts
// from contracts. Exactly one variant must be populated.
type AllianceMsg struct {
	Delegate               *Delegate               `json:"delegate,omitempty"`
	Undelegate             *Undelegate             `json:"undelegate,omitempty"`
	Redelegate             *Redelegate             `json:"redelegate,omitempty"`
	ClaimDelegationRewards *ClaimDelegationRewards `json:"claim_delegation_rewards,omitempty"`
}

type Delegate struct {
	DelegatorAddress string        `json:"delegator_address"`
	ValidatorAddress string        `json:"validator_address"`
	Amount           sdktypes.Coin `json:"amount"`
}

type Undelegate struct {
	DelegatorAddress string        `json:"delegator_address"`
	ValidatorAddress string        `json:"validator_address"`
	Amount           sdktypes.Coin `json:"amount"`
}

type Redelegate struct {
	DelegatorAddress    string        `json:"delegator_address"`
	ValidatorSrcAddress string        `json:"validator_src_address"`
	ValidatorDstAddress string        `json:"validator_dst_address"`
	Amount              sdktypes.Coin `json:"amount"`
}

type ClaimDelegationRewards struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	Denom            string `json:"denom"`
}

func UnmarshalAllianceMsg(data []byte) (AllianceMsg, error) {
	var r AllianceMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *AllianceMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Variant returns the external wire tag of the populated message variant.
func (r AllianceMsg) Variant() (string, error) {
	var tags []string
	if r.Delegate != nil {
		tags = append(tags, "delegate")
	}
	if r.Undelegate != nil {
		tags = append(tags, "undelegate")
	}
	if r.Redelegate != nil {
		tags = append(tags, "redelegate")
	}
	if r.ClaimDelegationRewards != nil {
		tags = append(tags, "claim_delegation_rewards")
	}
	return oneVariant(tags)
}
