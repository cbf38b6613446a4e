package core

import (
	"context"

	"krearsip/internal/client"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AdminAPI . AdminAPI
type AdminAPI interface {
	AdminWorks(ctx context.Context, s client.Session, params client.ListParams) (client.AdminWorksList, error)
	Approve(ctx context.Context, s client.Session, id string) (client.AdminWorkItem, error)
	Reject(ctx context.Context, s client.Session, id, reason string) (client.AdminWorkItem, error)
	DeployWork(ctx context.Context, s client.Session, id string) (client.AdminWorkItem, error)
	Verify(ctx context.Context, s client.Session, id string) (client.AdminWorkItem, error)
	SyncTx(ctx context.Context, s client.Session, txHash string) (client.SyncResult, error)
}
