package alliance

import (
	"cosmossdk.io/math"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
)

// AllianceAsset is a denom registered with the alliance module together
// with its reward and take-rate parameters.
type AllianceAsset struct {
	Denom                string         `json:"denom"`
	RewardWeight         math.LegacyDec `json:"reward_weight"`
	ConsensusWeight      math.LegacyDec `json:"consensus_weight"`
	TakeRate             math.LegacyDec `json:"take_rate"`
	TotalTokens          math.LegacyDec `json:"total_tokens"`
	TotalValidatorShares math.LegacyDec `json:"total_validator_shares"`
	RewardStartTime      Timestamp      `json:"reward_start_time"`
	RewardChangeRate     math.LegacyDec `json:"reward_change_rate"`
	RewardChangeInterval uint64         `json:"reward_change_interval"`
	// LastRewardChangeTime is the raw RFC 3339 string the module returns.
	// Unlike RewardStartTime it is passed through undecoded; decoding it
	// would change the wire shape existing callers observe.
	LastRewardChangeTime string      `json:"last_reward_change_time"`
	RewardWeightRange    WeightRange `json:"reward_weight_range"`
	// IsInitialized is absent on assets registered before the migration
	// that introduced it.
	IsInitialized *bool `json:"is_initialized,omitempty"`
}

type WeightRange struct {
	Min math.LegacyDec `json:"min"`
	Max math.LegacyDec `json:"max"`
}

// DecCoin is a coin with a fractional amount, used for validator share
// totals. Denom is omitted by the module where it is implied by context.
type DecCoin struct {
	Denom  *string        `json:"denom,omitempty"`
	Amount math.LegacyDec `json:"amount"`
}

// Delegation of one delegator to one validator for one alliance denom.
// The address and denom fields are omitted where the containing query path
// already pins them down.
type Delegation struct {
	DelegatorAddress *string        `json:"delegator_address,omitempty"`
	ValidatorAddress *string        `json:"validator_address,omitempty"`
	Denom            *string        `json:"denom,omitempty"`
	Shares           math.LegacyDec `json:"shares"`
	// RewardHistory may contain null entries where the module's sparse
	// array encoding leaves holes.
	RewardHistory         []*Reward `json:"reward_history,omitempty"`
	LastRewardClaimHeight *uint64   `json:"last_reward_claim_height,omitempty"`
}

type Reward struct {
	Denom *string        `json:"denom,omitempty"`
	Index math.LegacyDec `json:"index"`
}

type AllianceParams struct {
	RewardDelayTime       uint64 `json:"reward_delay_time"`
	TakeRateClaimInterval uint64 `json:"take_rate_claim_interval"`
	// LastTakeRateClaimTime is passed through as the raw RFC 3339 string,
	// same as AllianceAsset.LastRewardChangeTime.
	LastTakeRateClaimTime string `json:"last_take_rate_claim_time"`
}

type AllianceAllianceResponse struct {
	Alliance AllianceAsset `json:"alliance"`
}

type AllianceAlliancesResponse struct {
	Alliances  []AllianceAsset     `json:"alliances"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

type AllianceAlliancesDelegationsResponse struct {
	Delegations []DelegationResponse `json:"delegations,omitempty"`
	Pagination  *PaginationResponse  `json:"pagination,omitempty"`
}

type DelegationResponse struct {
	Delegation Delegation    `json:"delegation"`
	Balance    sdktypes.Coin `json:"balance"`
}

type SingleDelegationResponse struct {
	Delegation DelegationResponse `json:"delegation"`
}

type RewardsResponse struct {
	Rewards []sdktypes.Coin `json:"rewards"`
}

type AllianceParamsResponse struct {
	Params AllianceParams `json:"params"`
}

type ValidatorResponse struct {
	ValidatorAddr         string    `json:"validator_addr"`
	TotalDelegationShares []DecCoin `json:"total_delegation_shares"`
	ValidatorShares       []DecCoin `json:"validator_shares"`
	TotalStaked           []DecCoin `json:"total_staked"`
}

type AllValidatorsResponse struct {
	Validators []ValidatorResponse `json:"validators"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}
