package alliance

import (
	"testing"

	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimDelegationRewardsMsg(t *testing.T) {
	msg := AllianceMsg{ClaimDelegationRewards: &ClaimDelegationRewards{
		DelegatorAddress: "a1",
		ValidatorAddress: "v1",
		Denom:            "uusd",
	}}

	msgBytes, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"claim_delegation_rewards":{"delegator_address":"a1","validator_address":"v1","denom":"uusd"}}`, string(msgBytes))
}

func TestDelegateMsg(t *testing.T) {
	msg := AllianceMsg{Delegate: &Delegate{
		DelegatorAddress: "a1",
		ValidatorAddress: "v1",
		Amount:           sdktypes.NewInt64Coin("unoria", 1000),
	}}

	msgBytes, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"delegate":{"delegator_address":"a1","validator_address":"v1","amount":{"denom":"unoria","amount":"1000"}}}`, string(msgBytes))
}

func TestRedelegateMsg(t *testing.T) {
	msg := AllianceMsg{Redelegate: &Redelegate{
		DelegatorAddress:    "a1",
		ValidatorSrcAddress: "v1",
		ValidatorDstAddress: "v2",
		Amount:              sdktypes.NewInt64Coin("unoria", 5),
	}}

	msgBytes, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"redelegate":{"delegator_address":"a1","validator_src_address":"v1","validator_dst_address":"v2","amount":{"denom":"unoria","amount":"5"}}}`, string(msgBytes))

	decoded, err := UnmarshalAllianceMsg(msgBytes)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestMsgVariant(t *testing.T) {
	variant, err := AllianceMsg{Undelegate: &Undelegate{}}.Variant()
	require.NoError(t, err)
	assert.Equal(t, "undelegate", variant)

	_, err = AllianceMsg{}.Variant()
	assert.Error(t, err)

	_, err = AllianceMsg{
		Delegate:   &Delegate{},
		Undelegate: &Undelegate{},
	}.Variant()
	assert.Error(t, err)
}
