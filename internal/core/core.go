package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"krearsip/internal/client"
	"krearsip/internal/status"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrActionNotAllowed error = errors.New("action not allowed in current work state")
var ErrActionInFlight error = errors.New("another action is in flight for this work")
var ErrUnknownWork error = errors.New("work not found in any queue")
var ErrMissingTxHash error = errors.New("work has no transaction hash to sync")

const queueLimit = 50

// Queues holds the three admin views. Snapshots are server-authoritative:
// they are only ever replaced wholesale by a full refresh, never patched.
type Queues struct {
	Draft    client.AdminWorksList
	Onchain  client.AdminWorksList
	Verified client.AdminWorksList
}

// Krearsip orchestrates admin actions against the backend. Per work id it
// admits at most one in-flight action; actions on different ids may run
// concurrently. It never talks to the chain directly.
type Krearsip struct {
	logs    *zap.SugaredLogger
	api     AdminAPI
	session client.Session

	mu            sync.Mutex
	busy          map[string]struct{}
	refreshCancel context.CancelFunc
	queues        Queues
}

func NewKrearsip(logger *zap.SugaredLogger, api AdminAPI, session client.Session) *Krearsip {
	return &Krearsip{
		logs:    logger,
		api:     api,
		session: session,
		busy:    make(map[string]struct{}),
	}
}

func (k *Krearsip) Approve(ctx context.Context, id string) (client.AdminWorkItem, error) {
	return k.runAction(ctx, id, "approve", status.CanApprove, func(ctx context.Context) (client.AdminWorkItem, error) {
		return k.api.Approve(ctx, k.session, id)
	})
}

func (k *Krearsip) Reject(ctx context.Context, id, reason string) (client.AdminWorkItem, error) {
	return k.runAction(ctx, id, "reject", status.CanReject, func(ctx context.Context) (client.AdminWorkItem, error) {
		return k.api.Reject(ctx, k.session, id, reason)
	})
}

func (k *Krearsip) Deploy(ctx context.Context, id string) (client.AdminWorkItem, error) {
	return k.runAction(ctx, id, "deploy", status.CanDeploy, func(ctx context.Context) (client.AdminWorkItem, error) {
		return k.api.DeployWork(ctx, k.session, id)
	})
}

func (k *Krearsip) Verify(ctx context.Context, id string) (client.AdminWorkItem, error) {
	return k.runAction(ctx, id, "verify", status.CanVerify, func(ctx context.Context) (client.AdminWorkItem, error) {
		return k.api.Verify(ctx, k.session, id)
	})
}

// Sync reconciles the work's submitted transaction with its mined result.
// Safe to repeat for an already-confirmed hash.
func (k *Krearsip) Sync(ctx context.Context, id string) (client.SyncResult, error) {
	work, err := k.findWork(id)
	if err != nil {
		return client.SyncResult{}, err
	}

	if !status.CanSync(work.Status, work.StatusOnchain) {
		return client.SyncResult{}, fmt.Errorf("sync %q: %w", id, ErrActionNotAllowed)
	}

	if work.TxHash == nil || *work.TxHash == "" {
		return client.SyncResult{}, fmt.Errorf("sync %q: %w", id, ErrMissingTxHash)
	}

	if !k.markBusy(id) {
		return client.SyncResult{}, fmt.Errorf("sync %q: %w", id, ErrActionInFlight)
	}
	defer k.clearBusy(id)

	requestID := uuid.NewString()
	k.logs.Infow("admin action started", "action", "sync", "work_id", id, "tx_hash", *work.TxHash, "request_id", requestID)

	result, err := k.api.SyncTx(ctx, k.session, *work.TxHash)
	if err != nil {
		k.logs.Errorw("admin action failed", "action", "sync", "work_id", id, "error", err, "request_id", requestID)
		return client.SyncResult{}, fmt.Errorf("sync %q: %w", id, err)
	}

	if err := k.RefreshAll(ctx); err != nil {
		return result, fmt.Errorf("sync succeeded but queue refresh failed: %w", err)
	}

	return result, nil
}

type predicate func(status.WorkStatus, status.OnchainStatus) bool
type actionCall func(ctx context.Context) (client.AdminWorkItem, error)

func (k *Krearsip) runAction(ctx context.Context, id, action string, allowed predicate, call actionCall) (client.AdminWorkItem, error) {
	work, err := k.findWork(id)
	if err != nil {
		return client.AdminWorkItem{}, err
	}

	if !allowed(work.Status, work.StatusOnchain) {
		return client.AdminWorkItem{}, fmt.Errorf("%s %q: %w", action, id, ErrActionNotAllowed)
	}

	if !k.markBusy(id) {
		return client.AdminWorkItem{}, fmt.Errorf("%s %q: %w", action, id, ErrActionInFlight)
	}
	defer k.clearBusy(id)

	requestID := uuid.NewString()
	k.logs.Infow("admin action started", "action", action, "work_id", id, "request_id", requestID)

	updated, err := call(ctx)
	if err != nil {
		// prior snapshots stay untouched on failure
		k.logs.Errorw("admin action failed", "action", action, "work_id", id, "error", err, "request_id", requestID)
		return client.AdminWorkItem{}, fmt.Errorf("%s %q: %w", action, id, err)
	}

	k.logs.Infow("admin action completed", "action", action, "work_id", id, "request_id", requestID)

	if err := k.RefreshAll(ctx); err != nil {
		return updated, fmt.Errorf("%s succeeded but queue refresh failed: %w", action, err)
	}

	return updated, nil
}

// RefreshAll re-fetches all three queues. A newer refresh cancels one still
// in flight; when several complete, the last response wins.
func (k *Krearsip) RefreshAll(ctx context.Context) error {
	k.mu.Lock()
	if k.refreshCancel != nil {
		k.refreshCancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	k.refreshCancel = cancel
	k.mu.Unlock()

	type queueResult struct {
		queue string
		list  client.AdminWorksList
		err   error
	}

	queues := []string{"draft", "onchain", "verified"}
	resultsChan := make(chan queueResult)

	var wg sync.WaitGroup
	for _, queue := range queues {
		wg.Add(1)
		go func(queue string) {
			defer wg.Done()
			list, err := k.api.AdminWorks(ctx, k.session, client.ListParams{
				Queue: queue,
				Limit: queueLimit,
			})
			if err != nil {
				err = fmt.Errorf("fetch %s queue: %w", queue, err)
			}
			resultsChan <- queueResult{queue: queue, list: list, err: err}
		}(queue)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	fetched := Queues{}
	var aggrErr error
	for result := range resultsChan {
		if result.err != nil {
			aggrErr = errors.Join(aggrErr, result.err)
			continue
		}
		switch result.queue {
		case "draft":
			fetched.Draft = result.list
		case "onchain":
			fetched.Onchain = result.list
		case "verified":
			fetched.Verified = result.list
		}
	}

	if aggrErr != nil {
		return aggrErr
	}

	k.mu.Lock()
	k.queues = fetched
	k.mu.Unlock()

	k.logs.Infow("queues refreshed",
		"draft", fetched.Draft.Total,
		"onchain", fetched.Onchain.Total,
		"verified", fetched.Verified.Total)

	return nil
}

// Queues returns the current snapshots.
func (k *Krearsip) Queues() Queues {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.queues
}

func (k *Krearsip) findWork(id string) (client.AdminWorkItem, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, list := range []client.AdminWorksList{k.queues.Draft, k.queues.Onchain, k.queues.Verified} {
		for _, work := range list.Items {
			if work.ID == id {
				return work, nil
			}
		}
	}

	return client.AdminWorkItem{}, fmt.Errorf("work %q: %w", id, ErrUnknownWork)
}

func (k *Krearsip) markBusy(id string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, inFlight := k.busy[id]; inFlight {
		return false
	}

	k.busy[id] = struct{}{}
	return true
}

func (k *Krearsip) clearBusy(id string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.busy, id)
}
