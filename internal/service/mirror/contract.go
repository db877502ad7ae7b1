package mirror

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

import "context"

type Producer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}
