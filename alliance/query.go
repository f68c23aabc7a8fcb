package alliance

import (
	"encoding/json"
	"fmt"
)

// AllianceQuery is the set of custom queries the alliance module answers.
// Exactly one variant must be populated. Each variant is bound to one
// response type; DecodeResponse holds the binding.
type AllianceQuery struct {
	Alliance                       *AllianceRequest                       `json:"alliance,omitempty"`
	Alliances                      *AlliancesRequest                      `json:"alliances,omitempty"`
	AlliancesDelegations           *AlliancesDelegationsRequest           `json:"alliances_delegations,omitempty"`
	AlliancesDelegationByValidator *AlliancesDelegationByValidatorRequest `json:"alliances_delegation_by_validator,omitempty"`
	Delegation                     *DelegationRequest                     `json:"delegation,omitempty"`
	DelegationRewards              *DelegationRewardsRequest              `json:"delegation_rewards,omitempty"`
	Params                         *ParamsRequest                         `json:"params,omitempty"`
	Validator                      *ValidatorRequest                      `json:"validator,omitempty"`
	Validators                     *ValidatorsRequest                     `json:"validators,omitempty"`
}

type AllianceRequest struct {
	Denom string `json:"denom"`
}

type AlliancesRequest struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type AlliancesDelegationsRequest struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type AlliancesDelegationByValidatorRequest struct {
	DelegatorAddr string      `json:"delegator_addr"`
	ValidatorAddr string      `json:"validator_addr"`
	Pagination    *Pagination `json:"pagination,omitempty"`
}

type DelegationRequest struct {
	DelegatorAddr string `json:"delegator_addr"`
	ValidatorAddr string `json:"validator_addr"`
	Denom         string `json:"denom"`
}

type DelegationRewardsRequest struct {
	DelegatorAddr string `json:"delegator_addr"`
	ValidatorAddr string `json:"validator_addr"`
	Denom         string `json:"denom"`
}

type ParamsRequest struct{}

type ValidatorRequest struct {
	ValidatorAddr string `json:"validator_addr"`
}

type ValidatorsRequest struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

func UnmarshalAllianceQuery(data []byte) (AllianceQuery, error) {
	var r AllianceQuery
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *AllianceQuery) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Variant returns the external wire tag of the populated query variant.
func (r AllianceQuery) Variant() (string, error) {
	var tags []string
	if r.Alliance != nil {
		tags = append(tags, "alliance")
	}
	if r.Alliances != nil {
		tags = append(tags, "alliances")
	}
	if r.AlliancesDelegations != nil {
		tags = append(tags, "alliances_delegations")
	}
	if r.AlliancesDelegationByValidator != nil {
		tags = append(tags, "alliances_delegation_by_validator")
	}
	if r.Delegation != nil {
		tags = append(tags, "delegation")
	}
	if r.DelegationRewards != nil {
		tags = append(tags, "delegation_rewards")
	}
	if r.Params != nil {
		tags = append(tags, "params")
	}
	if r.Validator != nil {
		tags = append(tags, "validator")
	}
	if r.Validators != nil {
		tags = append(tags, "validators")
	}
	return oneVariant(tags)
}

func oneVariant(tags []string) (string, error) {
	switch len(tags) {
	case 1:
		return tags[0], nil
	case 0:
		return "", fmt.Errorf("no variant populated")
	default:
		return "", fmt.Errorf("multiple variants populated: %v", tags)
	}
}

// responseDecoders binds each query variant tag to the decoder of its
// response type. Every AllianceQuery variant has exactly one entry here;
// the binding is validated by an exhaustiveness test.
var responseDecoders = map[string]func([]byte) (interface{}, error){
	"alliance":                          decodeInto[AllianceAllianceResponse],
	"alliances":                         decodeInto[AllianceAlliancesResponse],
	"alliances_delegations":             decodeInto[AllianceAlliancesDelegationsResponse],
	"alliances_delegation_by_validator": decodeInto[AllianceAlliancesDelegationsResponse],
	"delegation":                        decodeInto[SingleDelegationResponse],
	"delegation_rewards":                decodeInto[RewardsResponse],
	"params":                            decodeInto[AllianceParamsResponse],
	"validator":                         decodeInto[ValidatorResponse],
	"validators":                        decodeInto[AllValidatorsResponse],
}

func decodeInto[R any](data []byte) (interface{}, error) {
	result := new(R)
	if err := json.Unmarshal(data, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeResponse decodes raw response bytes into the response type bound to
// the populated variant of q. The result is a pointer to one of the
// *Response types in this package.
func DecodeResponse(q AllianceQuery, data []byte) (interface{}, error) {
	variant, err := q.Variant()
	if err != nil {
		return nil, err
	}
	decode, ok := responseDecoders[variant]
	if !ok {
		return nil, fmt.Errorf("no response type bound to variant %q", variant)
	}
	return decode(data)
}
