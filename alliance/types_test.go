package alliance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assetJSON = `{
	"denom": "uusd",
	"reward_weight": "0.5",
	"consensus_weight": "1",
	"take_rate": "0.003",
	"total_tokens": "1000000",
	"total_validator_shares": "1000000",
	"reward_start_time": "2023-06-06T18:37:29.956787974Z",
	"reward_change_rate": "0.99",
	"reward_change_interval": 3600,
	"last_reward_change_time": "2023-06-07T00:00:00Z",
	"reward_weight_range": {"min": "0", "max": "1"},
	"is_initialized": true
}`

func TestAllianceAssetDecode(t *testing.T) {
	var asset AllianceAsset
	require.NoError(t, json.Unmarshal([]byte(assetJSON), &asset))

	assert.Equal(t, "uusd", asset.Denom)
	assert.Equal(t, "0.500000000000000000", asset.RewardWeight.String())
	assert.Equal(t, "0.003000000000000000", asset.TakeRate.String())
	assert.Equal(t, uint64(1686075449956787974), asset.RewardStartTime.Nanos())
	assert.Equal(t, uint64(3600), asset.RewardChangeInterval)
	// semantically a timestamp, deliberately kept as the raw wire string
	assert.Equal(t, "2023-06-07T00:00:00Z", asset.LastRewardChangeTime)
	assert.Equal(t, "1.000000000000000000", asset.RewardWeightRange.Max.String())
	require.NotNil(t, asset.IsInitialized)
	assert.True(t, *asset.IsInitialized)
}

func TestAllianceAssetPreMigration(t *testing.T) {
	// assets registered before the is_initialized migration omit the flag
	var asset AllianceAsset
	raw := `{"denom":"uusd","reward_weight":"1","consensus_weight":"1","take_rate":"0","total_tokens":"0","total_validator_shares":"0","reward_start_time":"2023-06-06T18:37:29Z","reward_change_rate":"1","reward_change_interval":0,"last_reward_change_time":"","reward_weight_range":{"min":"0","max":"1"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &asset))
	assert.Nil(t, asset.IsInitialized)
}

func TestAllianceAssetBadStartTime(t *testing.T) {
	var asset AllianceAsset
	raw := `{"denom":"uusd","reward_start_time":"June 6th 2023"}`
	err := json.Unmarshal([]byte(raw), &asset)
	require.Error(t, err)

	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestDelegationOptionalFields(t *testing.T) {
	// fields implied by the query path are omitted from the payload
	var sparse Delegation
	require.NoError(t, json.Unmarshal([]byte(`{"shares":"1.5"}`), &sparse))
	assert.Nil(t, sparse.DelegatorAddress)
	assert.Nil(t, sparse.ValidatorAddress)
	assert.Nil(t, sparse.Denom)
	assert.Nil(t, sparse.RewardHistory)
	assert.Nil(t, sparse.LastRewardClaimHeight)
	assert.Equal(t, "1.500000000000000000", sparse.Shares.String())

	var full Delegation
	raw := `{
		"delegator_address": "a1",
		"validator_address": "v1",
		"denom": "uusd",
		"shares": "2",
		"reward_history": [null, {"denom": "unoria", "index": "0.25"}],
		"last_reward_claim_height": 12345
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &full))
	require.NotNil(t, full.DelegatorAddress)
	assert.Equal(t, "a1", *full.DelegatorAddress)
	require.NotNil(t, full.LastRewardClaimHeight)
	assert.Equal(t, uint64(12345), *full.LastRewardClaimHeight)

	// sparse array encoding keeps null holes
	require.Len(t, full.RewardHistory, 2)
	assert.Nil(t, full.RewardHistory[0])
	require.NotNil(t, full.RewardHistory[1])
	assert.Equal(t, "unoria", *full.RewardHistory[1].Denom)
	assert.Equal(t, "0.250000000000000000", full.RewardHistory[1].Index.String())
}

func TestDecCoinOptionalDenom(t *testing.T) {
	var anonymous DecCoin
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"0.5"}`), &anonymous))
	assert.Nil(t, anonymous.Denom)
	assert.Equal(t, "0.500000000000000000", anonymous.Amount.String())

	var named DecCoin
	require.NoError(t, json.Unmarshal([]byte(`{"denom":"uusd","amount":"1"}`), &named))
	require.NotNil(t, named.Denom)
	assert.Equal(t, "uusd", *named.Denom)
}

func TestValidatorResponseDecode(t *testing.T) {
	raw := `{
		"validator_addr": "v1",
		"total_delegation_shares": [{"denom":"uusd","amount":"10"}],
		"validator_shares": [{"amount":"10"}],
		"total_staked": []
	}`
	var resp ValidatorResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, "v1", resp.ValidatorAddr)
	require.Len(t, resp.TotalDelegationShares, 1)
	require.Len(t, resp.ValidatorShares, 1)
	assert.Nil(t, resp.ValidatorShares[0].Denom)
	assert.Empty(t, resp.TotalStaked)
}
