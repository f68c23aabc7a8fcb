package alliance

import (
	sdktypes "github.com/cosmos/cosmos-sdk/types"
)

// MsgBuilder gives any chain-level custom message type M that can be built
// from an AllianceMsg the four alliance actions as direct constructors.
// The wrap function is the chain-specific mapping from an AllianceMsg to
// the custom message envelope its message router expects.
//
// No validation is performed here; amount positivity, address format and
// authorization are the module's responsibility.
type MsgBuilder[M any] struct {
	wrap func(AllianceMsg) M
}

func NewMsgBuilder[M any](wrap func(AllianceMsg) M) MsgBuilder[M] {
	return MsgBuilder[M]{wrap: wrap}
}

func (b MsgBuilder[M]) Delegate(delegatorAddress, validatorAddress string, amount sdktypes.Coin) M {
	return b.wrap(AllianceMsg{Delegate: &Delegate{
		DelegatorAddress: delegatorAddress,
		ValidatorAddress: validatorAddress,
		Amount:           amount,
	}})
}

func (b MsgBuilder[M]) Undelegate(delegatorAddress, validatorAddress string, amount sdktypes.Coin) M {
	return b.wrap(AllianceMsg{Undelegate: &Undelegate{
		DelegatorAddress: delegatorAddress,
		ValidatorAddress: validatorAddress,
		Amount:           amount,
	}})
}

func (b MsgBuilder[M]) Redelegate(delegatorAddress, validatorSrcAddress, validatorDstAddress string, amount sdktypes.Coin) M {
	return b.wrap(AllianceMsg{Redelegate: &Redelegate{
		DelegatorAddress:    delegatorAddress,
		ValidatorSrcAddress: validatorSrcAddress,
		ValidatorDstAddress: validatorDstAddress,
		Amount:              amount,
	}})
}

func (b MsgBuilder[M]) ClaimDelegationRewards(delegatorAddress, validatorAddress, denom string) M {
	return b.wrap(AllianceMsg{ClaimDelegationRewards: &ClaimDelegationRewards{
		DelegatorAddress: delegatorAddress,
		ValidatorAddress: validatorAddress,
		Denom:            denom,
	}})
}
