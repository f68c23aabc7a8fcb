package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/noria-net/alliance-go/alliance"
	"github.com/noria-net/alliance-go/chainio/io"
	"github.com/noria-net/alliance-go/chainio/types"
)

// QueryClient dispatches typed alliance queries through a ChainIO handle,
// one method per AllianceQuery variant. It holds no state between calls;
// every method is a single synchronous round trip.
type QueryClient struct {
	io        io.ChainIO
	proxyAddr string
	envelope  func(alliance.AllianceQuery) interface{}
}

func NewQueryClient(chainIO io.ChainIO, proxyAddr string) *QueryClient {
	return &QueryClient{
		io:        chainIO,
		proxyAddr: proxyAddr,
		envelope:  func(q alliance.AllianceQuery) interface{} { return q },
	}
}

// WithEnvelope sets the chain-specific wrapper the chain's custom query
// router expects around an AllianceQuery. The default sends the query
// unwrapped.
func (c *QueryClient) WithEnvelope(wrap func(alliance.AllianceQuery) interface{}) *QueryClient {
	c.envelope = wrap
	return c
}

func (c *QueryClient) Alliance(ctx context.Context, denom string) (*alliance.AllianceAllianceResponse, error) {
	return query[alliance.AllianceAllianceResponse](c, ctx,
		alliance.AllianceQuery{Alliance: &alliance.AllianceRequest{Denom: denom}})
}

func (c *QueryClient) Alliances(ctx context.Context, pagination *alliance.Pagination) (*alliance.AllianceAlliancesResponse, error) {
	return query[alliance.AllianceAlliancesResponse](c, ctx,
		alliance.AllianceQuery{Alliances: &alliance.AlliancesRequest{Pagination: pagination}})
}

func (c *QueryClient) AlliancesDelegations(ctx context.Context, pagination *alliance.Pagination) (*alliance.AllianceAlliancesDelegationsResponse, error) {
	return query[alliance.AllianceAlliancesDelegationsResponse](c, ctx,
		alliance.AllianceQuery{AlliancesDelegations: &alliance.AlliancesDelegationsRequest{Pagination: pagination}})
}

func (c *QueryClient) AlliancesDelegationByValidator(ctx context.Context, delegatorAddr, validatorAddr string, pagination *alliance.Pagination) (*alliance.AllianceAlliancesDelegationsResponse, error) {
	return query[alliance.AllianceAlliancesDelegationsResponse](c, ctx,
		alliance.AllianceQuery{AlliancesDelegationByValidator: &alliance.AlliancesDelegationByValidatorRequest{
			DelegatorAddr: delegatorAddr,
			ValidatorAddr: validatorAddr,
			Pagination:    pagination,
		}})
}

func (c *QueryClient) Delegation(ctx context.Context, delegatorAddr, validatorAddr, denom string) (*alliance.SingleDelegationResponse, error) {
	return query[alliance.SingleDelegationResponse](c, ctx,
		alliance.AllianceQuery{Delegation: &alliance.DelegationRequest{
			DelegatorAddr: delegatorAddr,
			ValidatorAddr: validatorAddr,
			Denom:         denom,
		}})
}

func (c *QueryClient) DelegationRewards(ctx context.Context, delegatorAddr, validatorAddr, denom string) (*alliance.RewardsResponse, error) {
	return query[alliance.RewardsResponse](c, ctx,
		alliance.AllianceQuery{DelegationRewards: &alliance.DelegationRewardsRequest{
			DelegatorAddr: delegatorAddr,
			ValidatorAddr: validatorAddr,
			Denom:         denom,
		}})
}

func (c *QueryClient) Params(ctx context.Context) (*alliance.AllianceParamsResponse, error) {
	return query[alliance.AllianceParamsResponse](c, ctx,
		alliance.AllianceQuery{Params: &alliance.ParamsRequest{}})
}

func (c *QueryClient) Validator(ctx context.Context, validatorAddr string) (*alliance.ValidatorResponse, error) {
	return query[alliance.ValidatorResponse](c, ctx,
		alliance.AllianceQuery{Validator: &alliance.ValidatorRequest{ValidatorAddr: validatorAddr}})
}

func (c *QueryClient) Validators(ctx context.Context, pagination *alliance.Pagination) (*alliance.AllValidatorsResponse, error) {
	return query[alliance.AllValidatorsResponse](c, ctx,
		alliance.AllianceQuery{Validators: &alliance.ValidatorsRequest{Pagination: pagination}})
}

// Raw dispatches a caller-built AllianceQuery and decodes the response
// through the variant's bound decoder.
func (c *QueryClient) Raw(ctx context.Context, q alliance.AllianceQuery) (interface{}, error) {
	variant, err := q.Variant()
	if err != nil {
		return nil, &QueryError{Variant: variant, Err: err}
	}
	data, err := c.dispatch(ctx, variant, q)
	if err != nil {
		return nil, err
	}
	result, err := alliance.DecodeResponse(q, data)
	if err != nil {
		return nil, &QueryError{Variant: variant, Err: err}
	}
	return result, nil
}

func query[R any](c *QueryClient, ctx context.Context, q alliance.AllianceQuery) (*R, error) {
	variant, err := q.Variant()
	if err != nil {
		return nil, &QueryError{Variant: variant, Err: err}
	}
	data, err := c.dispatch(ctx, variant, q)
	if err != nil {
		return nil, err
	}
	result := new(R)
	if err := json.Unmarshal(data, result); err != nil {
		return nil, &QueryError{Variant: variant, Err: err}
	}
	return result, nil
}

func (c *QueryClient) dispatch(ctx context.Context, variant string, q alliance.AllianceQuery) ([]byte, error) {
	raw, err := json.Marshal(c.envelope(q))
	if err != nil {
		return nil, &QueryError{Variant: variant, Err: err}
	}
	data, err := c.io.QueryCustom(ctx, types.CustomQueryOptions{
		ProxyAddr: c.proxyAddr,
		Request:   raw,
	})
	if err != nil {
		return nil, &QueryError{Variant: variant, Err: err}
	}
	return data, nil
}

// QueryError reports an alliance query the host rejected or answered with
// a payload that does not decode into the variant's response type.
type QueryError struct {
	Variant string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("alliance query %s: %v", e.Variant, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
