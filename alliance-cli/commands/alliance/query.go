package alliance

import (
	"context"
	"encoding/json"
	"fmt"

	bindings "github.com/noria-net/alliance-go/alliance"
)

func Asset(denom string) {
	s := NewService()
	resp, err := s.Query.Alliance(context.Background(), denom)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Assets(pagination *bindings.Pagination) {
	s := NewService()
	resp, err := s.Query.Alliances(context.Background(), pagination)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Delegations(pagination *bindings.Pagination) {
	s := NewService()
	resp, err := s.Query.AlliancesDelegations(context.Background(), pagination)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func DelegationsByValidator(delegator, validator string, pagination *bindings.Pagination) {
	s := NewService()
	resp, err := s.Query.AlliancesDelegationByValidator(context.Background(), delegator, validator, pagination)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Delegation(delegator, validator, denom string) {
	s := NewService()
	resp, err := s.Query.Delegation(context.Background(), delegator, validator, denom)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Rewards(delegator, validator, denom string) {
	s := NewService()
	resp, err := s.Query.DelegationRewards(context.Background(), delegator, validator, denom)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Params() {
	s := NewService()
	resp, err := s.Query.Params(context.Background())
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Validator(validator string) {
	s := NewService()
	resp, err := s.Query.Validator(context.Background(), validator)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Validators(pagination *bindings.Pagination) {
	s := NewService()
	resp, err := s.Query.Validators(context.Background(), pagination)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func Raw(queryJSON string) {
	s := NewService()
	query, err := bindings.UnmarshalAllianceQuery([]byte(queryJSON))
	if err != nil {
		panic(err)
	}
	resp, err := s.Query.Raw(context.Background(), query)
	if err != nil {
		panic(err)
	}
	printJSON(resp)
}

func printJSON(resp interface{}) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", out)
}
