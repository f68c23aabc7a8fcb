package alliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allQueryVariants covers every AllianceQuery variant exactly once,
// together with its wire tag, a well-formed response payload and the
// response type DecodeResponse must produce for it.
var allQueryVariants = []struct {
	query    AllianceQuery
	tag      string
	payload  string
	response interface{}
}{
	{
		query:    AllianceQuery{Alliance: &AllianceRequest{Denom: "uusd"}},
		tag:      "alliance",
		payload:  `{"alliance":{"denom":"uusd","reward_weight":"1","consensus_weight":"1","take_rate":"0","total_tokens":"0","total_validator_shares":"0","reward_start_time":"2023-06-06T18:37:29.956787974Z","reward_change_rate":"0","reward_change_interval":0,"last_reward_change_time":"2023-06-06T18:37:29.956787974Z","reward_weight_range":{"min":"0","max":"1"}}}`,
		response: &AllianceAllianceResponse{},
	},
	{
		query:    AllianceQuery{Alliances: &AlliancesRequest{}},
		tag:      "alliances",
		payload:  `{"alliances":[]}`,
		response: &AllianceAlliancesResponse{},
	},
	{
		query:    AllianceQuery{AlliancesDelegations: &AlliancesDelegationsRequest{}},
		tag:      "alliances_delegations",
		payload:  `{"delegations":[]}`,
		response: &AllianceAlliancesDelegationsResponse{},
	},
	{
		query: AllianceQuery{AlliancesDelegationByValidator: &AlliancesDelegationByValidatorRequest{
			DelegatorAddr: "a1", ValidatorAddr: "v1",
		}},
		tag:      "alliances_delegation_by_validator",
		payload:  `{"delegations":[]}`,
		response: &AllianceAlliancesDelegationsResponse{},
	},
	{
		query: AllianceQuery{Delegation: &DelegationRequest{
			DelegatorAddr: "a1", ValidatorAddr: "v1", Denom: "uusd",
		}},
		tag:      "delegation",
		payload:  `{"delegation":{"delegation":{"shares":"1.5"},"balance":{"denom":"uusd","amount":"10"}}}`,
		response: &SingleDelegationResponse{},
	},
	{
		query: AllianceQuery{DelegationRewards: &DelegationRewardsRequest{
			DelegatorAddr: "a1", ValidatorAddr: "v1", Denom: "uusd",
		}},
		tag:      "delegation_rewards",
		payload:  `{"rewards":[{"denom":"unoria","amount":"3"}]}`,
		response: &RewardsResponse{},
	},
	{
		query:    AllianceQuery{Params: &ParamsRequest{}},
		tag:      "params",
		payload:  `{"params":{"reward_delay_time":600,"take_rate_claim_interval":300,"last_take_rate_claim_time":"2023-06-06T18:37:29.956787974Z"}}`,
		response: &AllianceParamsResponse{},
	},
	{
		query:    AllianceQuery{Validator: &ValidatorRequest{ValidatorAddr: "v1"}},
		tag:      "validator",
		payload:  `{"validator_addr":"v1","total_delegation_shares":[],"validator_shares":[],"total_staked":[]}`,
		response: &ValidatorResponse{},
	},
	{
		query:    AllianceQuery{Validators: &ValidatorsRequest{}},
		tag:      "validators",
		payload:  `{"validators":[]}`,
		response: &AllValidatorsResponse{},
	},
}

func TestQueryVariantExhaustive(t *testing.T) {
	assert.Len(t, allQueryVariants, len(responseDecoders))

	seen := map[string]bool{}
	for _, tc := range allQueryVariants {
		variant, err := tc.query.Variant()
		require.NoError(t, err)
		assert.Equal(t, tc.tag, variant)
		assert.False(t, seen[variant], "variant %s listed twice", variant)
		seen[variant] = true

		_, bound := responseDecoders[variant]
		assert.True(t, bound, "variant %s has no response decoder", variant)
	}
}

func TestDecodeResponseTypes(t *testing.T) {
	for _, tc := range allQueryVariants {
		result, err := DecodeResponse(tc.query, []byte(tc.payload))
		require.NoError(t, err, tc.tag)
		assert.IsType(t, tc.response, result, tc.tag)
	}
}

func TestDecodeResponseErrors(t *testing.T) {
	// no variant populated
	_, err := DecodeResponse(AllianceQuery{}, []byte(`{}`))
	assert.Error(t, err)

	// payload does not match the bound response type
	_, err = DecodeResponse(AllianceQuery{Validators: &ValidatorsRequest{}}, []byte(`{"validators":42}`))
	assert.Error(t, err)
}

func TestQueryMarshal(t *testing.T) {
	query := AllianceQuery{Delegation: &DelegationRequest{
		DelegatorAddr: "a1",
		ValidatorAddr: "v1",
		Denom:         "uusd",
	}}

	queryBytes, err := query.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"delegation":{"delegator_addr":"a1","validator_addr":"v1","denom":"uusd"}}`, string(queryBytes))
}

func TestQueryMarshalPagination(t *testing.T) {
	limit := uint64(10)
	query := AllianceQuery{Alliances: &AlliancesRequest{Pagination: &Pagination{
		Key:   []byte("cursor"),
		Limit: &limit,
	}}}

	queryBytes, err := query.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"alliances":{"pagination":{"key":"Y3Vyc29y","limit":10}}}`, string(queryBytes))

	// absent pagination is dropped entirely
	query = AllianceQuery{Alliances: &AlliancesRequest{}}
	queryBytes, err = query.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"alliances":{}}`, string(queryBytes))
}
