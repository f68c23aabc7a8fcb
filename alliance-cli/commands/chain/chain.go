package chain

import (
	"context"
	"encoding/json"
	"fmt"

	alliancecmd "github.com/noria-net/alliance-go/alliance-cli/commands/alliance"
)

func Status() {
	s := alliancecmd.NewService()
	resp, err := s.ChainIO.QueryNodeStatus(context.Background())
	if err != nil {
		panic(err)
	}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s\n", out)
}
