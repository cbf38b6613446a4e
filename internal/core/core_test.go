package core_test

import (
	"context"
	"errors"
	"sync"

	"krearsip/internal/client"
	"krearsip/internal/core"
	"krearsip/internal/core/fake"
	"krearsip/internal/status"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Krearsip", func() {
	var (
		orch    *core.Krearsip
		fakeAPI *fake.AdminAPI
		ctx     context.Context
		testErr error
		sess    client.Session
	)

	newWork := func(id string, ws status.WorkStatus, os status.OnchainStatus) client.AdminWorkItem {
		return client.AdminWorkItem{
			ID:            id,
			Judul:         "Karya " + id,
			Status:        ws,
			StatusOnchain: os,
		}
	}

	// the three queues served by the fake backend
	var draftList, onchainList, verifiedList client.AdminWorksList

	serveQueues := func() {
		fakeAPI.AdminWorksStub = func(_ context.Context, _ client.Session, params client.ListParams) (client.AdminWorksList, error) {
			switch params.Queue {
			case "draft":
				return draftList, nil
			case "onchain":
				return onchainList, nil
			case "verified":
				return verifiedList, nil
			}
			return client.AdminWorksList{}, errors.New("unknown queue")
		}
	}

	BeforeEach(func() {
		fakeAPI = new(fake.AdminAPI)
		ctx = context.Background()
		testErr = errors.New("test error")
		sess = client.Session{Token: "token-1", Wallet: "0xadmin"}
		orch = core.NewKrearsip(zap.NewNop().Sugar(), fakeAPI, sess)

		draftList = client.AdminWorksList{
			Items: []client.AdminWorkItem{
				newWork("w-new", status.StatusDraft, status.OnchainNone),
				newWork("w-approved", status.StatusDraft, status.OnchainPending),
				newWork("w-failed", status.StatusDraft, status.OnchainFailed),
			},
			Total: 3,
		}
		onchainList = client.AdminWorksList{
			Items: []client.AdminWorkItem{
				newWork("w-submitted", status.StatusOnChain, status.OnchainPending),
				newWork("w-mined", status.StatusOnChain, status.OnchainSucceeded),
			},
			Total: 2,
		}
		verifiedList = client.AdminWorksList{
			Items: []client.AdminWorkItem{
				newWork("w-done", status.StatusVerified, status.OnchainSucceeded),
			},
			Total: 1,
		}

		serveQueues()
		Expect(orch.RefreshAll(ctx)).To(Succeed())
	})

	Describe("RefreshAll", func() {
		It("should fetch the three queues with the fixed page size", func() {
			Expect(fakeAPI.AdminWorksCallCount()).To(Equal(3))

			queues := map[string]bool{}
			for i := 0; i < 3; i++ {
				_, gotSess, params := fakeAPI.AdminWorksArgsForCall(i)
				Expect(gotSess).To(Equal(sess))
				Expect(params.Limit).To(Equal(50))
				queues[params.Queue] = true
			}
			Expect(queues).To(HaveLen(3))
		})

		It("should expose the fetched snapshots", func() {
			queues := orch.Queues()
			Expect(queues.Draft.Total).To(Equal(3))
			Expect(queues.Onchain.Total).To(Equal(2))
			Expect(queues.Verified.Total).To(Equal(1))
		})

		When("one queue fetch fails", func() {
			BeforeEach(func() {
				fakeAPI.AdminWorksStub = func(_ context.Context, _ client.Session, params client.ListParams) (client.AdminWorksList, error) {
					if params.Queue == "onchain" {
						return client.AdminWorksList{}, testErr
					}
					return client.AdminWorksList{Total: 99}, nil
				}
			})

			It("should keep the previous snapshots untouched", func() {
				Expect(orch.RefreshAll(ctx)).To(MatchError(testErr))
				Expect(orch.Queues().Draft.Total).To(Equal(3))
			})
		})
	})

	Describe("Approve", func() {
		When("the work is a fresh draft", func() {
			BeforeEach(func() {
				fakeAPI.ApproveReturns(newWork("w-new", status.StatusDraft, status.OnchainPending), nil)
			})

			It("should call the backend and refresh the queues", func() {
				before := fakeAPI.AdminWorksCallCount()

				updated, err := orch.Approve(ctx, "w-new")
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.StatusOnchain).To(Equal(status.OnchainPending))

				Expect(fakeAPI.ApproveCallCount()).To(Equal(1))
				_, gotSess, id := fakeAPI.ApproveArgsForCall(0)
				Expect(gotSess).To(Equal(sess))
				Expect(id).To(Equal("w-new"))

				Expect(fakeAPI.AdminWorksCallCount()).To(Equal(before + 3))
			})
		})

		When("the work is already on chain", func() {
			It("should refuse locally without a network call", func() {
				_, err := orch.Approve(ctx, "w-submitted")
				Expect(err).To(MatchError(core.ErrActionNotAllowed))
				Expect(fakeAPI.ApproveCallCount()).To(Equal(0))
			})
		})

		When("the work is in no queue", func() {
			It("should report it as unknown", func() {
				_, err := orch.Approve(ctx, "w-ghost")
				Expect(err).To(MatchError(core.ErrUnknownWork))
				Expect(fakeAPI.ApproveCallCount()).To(Equal(0))
			})
		})

		When("the backend call fails", func() {
			BeforeEach(func() {
				fakeAPI.ApproveReturns(client.AdminWorkItem{}, testErr)
			})

			It("should leave the snapshots untouched", func() {
				before := orch.Queues()

				_, err := orch.Approve(ctx, "w-new")
				Expect(err).To(MatchError(testErr))
				Expect(orch.Queues()).To(Equal(before))
			})
		})
	})

	Describe("Reject", func() {
		It("should pass the reason through", func() {
			fakeAPI.RejectReturns(newWork("w-new", status.StatusDraft, status.OnchainNone), nil)

			_, err := orch.Reject(ctx, "w-new", "hash tidak valid")
			Expect(err).NotTo(HaveOccurred())

			_, _, id, reason := fakeAPI.RejectArgsForCall(0)
			Expect(id).To(Equal("w-new"))
			Expect(reason).To(Equal("hash tidak valid"))
		})
	})

	Describe("Deploy", func() {
		When("the work is approved and waiting", func() {
			BeforeEach(func() {
				fakeAPI.DeployWorkReturns(newWork("w-approved", status.StatusOnChain, status.OnchainQueued), nil)
			})

			It("should submit the deployment", func() {
				_, err := orch.Deploy(ctx, "w-approved")
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeAPI.DeployWorkCallCount()).To(Equal(1))
			})
		})

		When("the previous transaction failed", func() {
			BeforeEach(func() {
				fakeAPI.DeployWorkReturns(newWork("w-failed", status.StatusOnChain, status.OnchainQueued), nil)
			})

			It("should allow a retry", func() {
				_, err := orch.Deploy(ctx, "w-failed")
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the work was never approved", func() {
			It("should refuse locally", func() {
				_, err := orch.Deploy(ctx, "w-new")
				Expect(err).To(MatchError(core.ErrActionNotAllowed))
				Expect(fakeAPI.DeployWorkCallCount()).To(Equal(0))
			})
		})

		When("a second deploy arrives while one is in flight", func() {
			var entered, release chan struct{}

			BeforeEach(func() {
				entered = make(chan struct{})
				release = make(chan struct{})
				fakeAPI.DeployWorkStub = func(context.Context, client.Session, string) (client.AdminWorkItem, error) {
					close(entered)
					<-release
					return newWork("w-approved", status.StatusOnChain, status.OnchainQueued), nil
				}
			})

			It("should admit exactly one call", func() {
				var wg sync.WaitGroup
				var firstErr error

				wg.Add(1)
				go func() {
					defer wg.Done()
					_, firstErr = orch.Deploy(ctx, "w-approved")
				}()

				<-entered

				_, secondErr := orch.Deploy(ctx, "w-approved")
				Expect(secondErr).To(MatchError(core.ErrActionInFlight))

				close(release)
				wg.Wait()

				Expect(firstErr).NotTo(HaveOccurred())
				Expect(fakeAPI.DeployWorkCallCount()).To(Equal(1))
			})
		})
	})

	Describe("Verify", func() {
		It("should require a succeeded transaction", func() {
			_, err := orch.Verify(ctx, "w-submitted")
			Expect(err).To(MatchError(core.ErrActionNotAllowed))
		})

		It("should verify a mined work", func() {
			fakeAPI.VerifyReturns(newWork("w-mined", status.StatusVerified, status.OnchainSucceeded), nil)

			updated, err := orch.Verify(ctx, "w-mined")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(status.StatusVerified))
		})
	})

	Describe("Sync", func() {
		When("the submitted work has a transaction hash", func() {
			BeforeEach(func() {
				txHash := "0xdeadbeef"
				onchainList.Items[0].TxHash = &txHash
				serveQueues()
				Expect(orch.RefreshAll(ctx)).To(Succeed())

				fakeAPI.SyncTxReturns(client.SyncResult{
					ID:            "w-submitted",
					Status:        status.StatusOnChain,
					StatusOnchain: status.OnchainSucceeded,
				}, nil)
			})

			It("should reconcile by hash and refresh", func() {
				before := fakeAPI.AdminWorksCallCount()

				result, err := orch.Sync(ctx, "w-submitted")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusOnchain).To(Equal(status.OnchainSucceeded))

				_, _, txHash := fakeAPI.SyncTxArgsForCall(0)
				Expect(txHash).To(Equal("0xdeadbeef"))

				Expect(fakeAPI.AdminWorksCallCount()).To(Equal(before + 3))
			})

			It("should be repeatable for an already-confirmed hash", func() {
				_, err := orch.Sync(ctx, "w-submitted")
				Expect(err).NotTo(HaveOccurred())

				_, err = orch.Sync(ctx, "w-submitted")
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeAPI.SyncTxCallCount()).To(Equal(2))
			})
		})

		When("the work has no transaction hash", func() {
			It("should refuse without a network call", func() {
				_, err := orch.Sync(ctx, "w-submitted")
				Expect(err).To(MatchError(core.ErrMissingTxHash))
				Expect(fakeAPI.SyncTxCallCount()).To(Equal(0))
			})
		})

		When("the work is not in the submitted state", func() {
			It("should refuse locally", func() {
				_, err := orch.Sync(ctx, "w-mined")
				Expect(err).To(MatchError(core.ErrActionNotAllowed))
			})
		})
	})
})
