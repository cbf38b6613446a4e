package status_test

import (
	"fmt"

	"krearsip/internal/status"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status predicates", func() {
	var (
		statuses = []status.WorkStatus{
			status.StatusDraft,
			status.StatusOnChain,
			status.StatusVerified,
		}
		onchains = []status.OnchainStatus{
			status.OnchainNone,
			status.OnchainQueued,
			status.OnchainPending,
			status.OnchainSucceeded,
			status.OnchainFailed,
		}
	)

	Describe("CanApprove", func() {
		It("is true exactly for draft works, regardless of onchain state", func() {
			for _, s := range statuses {
				for _, o := range onchains {
					Expect(status.CanApprove(s, o)).To(
						Equal(s == status.StatusDraft),
						fmt.Sprintf("CanApprove(%q, %q)", s, o))
				}
			}
		})
	})

	Describe("CanReject", func() {
		It("is true exactly for draft works, regardless of onchain state", func() {
			for _, s := range statuses {
				for _, o := range onchains {
					Expect(status.CanReject(s, o)).To(
						Equal(s == status.StatusDraft),
						fmt.Sprintf("CanReject(%q, %q)", s, o))
				}
			}
		})
	})

	Describe("CanDeploy", func() {
		It("is true only for draft works awaiting or retrying a transaction", func() {
			for _, s := range statuses {
				for _, o := range onchains {
					want := s == status.StatusDraft &&
						(o == status.OnchainPending || o == status.OnchainFailed)
					Expect(status.CanDeploy(s, o)).To(
						Equal(want),
						fmt.Sprintf("CanDeploy(%q, %q)", s, o))
				}
			}
		})
	})

	Describe("CanSync", func() {
		It("is true only for on_chain works with a pending transaction", func() {
			for _, s := range statuses {
				for _, o := range onchains {
					want := s == status.StatusOnChain && o == status.OnchainPending
					Expect(status.CanSync(s, o)).To(
						Equal(want),
						fmt.Sprintf("CanSync(%q, %q)", s, o))
				}
			}
		})
	})

	Describe("CanVerify", func() {
		It("is true only for on_chain works with a succeeded transaction", func() {
			for _, s := range statuses {
				for _, o := range onchains {
					want := s == status.StatusOnChain && o == status.OnchainSucceeded
					Expect(status.CanVerify(s, o)).To(
						Equal(want),
						fmt.Sprintf("CanVerify(%q, %q)", s, o))
				}
			}
		})

		It("rejects a draft work even with a succeeded transaction", func() {
			Expect(status.CanVerify(status.StatusDraft, status.OnchainSucceeded)).To(BeFalse())
			Expect(status.CanVerify(status.StatusOnChain, status.OnchainSucceeded)).To(BeTrue())
		})
	})

	Describe("unknown inputs", func() {
		It("evaluates false without panicking", func() {
			Expect(func() {
				status.CanApprove("bogus", "bogus")
				status.CanReject("bogus", "bogus")
			}).NotTo(Panic())

			Expect(status.CanDeploy("bogus", status.OnchainPending)).To(BeFalse())
			Expect(status.CanSync(status.StatusOnChain, "bogus")).To(BeFalse())
			Expect(status.CanVerify("", "")).To(BeFalse())
		})
	})

	Describe("labels", func() {
		It("maps known statuses to badge text", func() {
			Expect(status.Label(status.StatusVerified)).To(Equal("Terverifikasi"))
			Expect(status.OnchainLabel(status.OnchainPending)).To(Equal("Tx dikirim, menunggu"))
		})

		It("falls back to the raw value for unknown statuses", func() {
			Expect(status.Label("mystery")).To(Equal("mystery"))
			Expect(status.OnchainLabel("mystery")).To(Equal("mystery"))
		})
	})
})
