package repository_test

import (
	"errors"

	"krearsip/internal/db"
	"krearsip/internal/repository"
	"krearsip/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StateRepository", func() {
	var (
		repo        *repository.StateRepository
		fakeStorage *fake.Storage
		testErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewStateRepository(fakeStorage)
		testErr = errors.New("test error")
	})

	Describe("Migrate", func() {
		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(nil)
			})

			It("should migrate the settings and receipts tables", func() {
				Expect(repo.Migrate()).To(Succeed())

				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				models := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(models).To(HaveLen(2))
				Expect(models[0]).To(BeAssignableToTypeOf(&repository.Setting{}))
				Expect(models[1]).To(BeAssignableToTypeOf(&repository.Receipt{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SaveSetting", func() {
		It("should upsert the key value pair", func() {
			fakeStorage.UpsertReturns(nil)

			Expect(repo.SaveSetting("TOKEN_KEY", "token-1")).To(Succeed())

			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
			records := fakeStorage.UpsertArgsForCall(0)
			settings, ok := records.(*[]repository.Setting)
			Expect(ok).To(BeTrue())
			Expect(*settings).To(HaveLen(1))
			Expect((*settings)[0].Key).To(Equal("TOKEN_KEY"))
			Expect((*settings)[0].Value).To(Equal("token-1"))
		})

		It("should wrap storage failures", func() {
			fakeStorage.UpsertReturns(testErr)

			Expect(repo.SaveSetting("TOKEN_KEY", "token-1")).To(MatchError(testErr))
		})
	})

	Describe("GetSetting", func() {
		When("the key exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(column string, value any, entity any) error {
					setting := entity.(*repository.Setting)
					setting.Key = "WALLET_KEY"
					setting.Value = "0xwallet"
					return nil
				}
			})

			It("should return the stored value", func() {
				value, err := repo.GetSetting("WALLET_KEY")
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("0xwallet"))

				column, key, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("key"))
				Expect(key).To(Equal("WALLET_KEY"))
			})
		})

		When("the key does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should report the setting as missing", func() {
				_, err := repo.GetSetting("WALLET_KEY")
				Expect(err).To(MatchError(repository.ErrSettingNotFound))
			})
		})
	})

	Describe("DeleteSettings", func() {
		It("should delete all given keys at once", func() {
			fakeStorage.DeleteByReturns(nil)

			Expect(repo.DeleteSettings([]string{"TOKEN_KEY", "WALLET_KEY"})).To(Succeed())

			column, value, _ := fakeStorage.DeleteByArgsForCall(0)
			Expect(column).To(Equal("key"))
			Expect(value).To(Equal([]string{"TOKEN_KEY", "WALLET_KEY"}))
		})
	})

	Describe("SaveReceipts", func() {
		It("should skip the write when there is nothing to save", func() {
			Expect(repo.SaveReceipts(nil)).To(Succeed())
			Expect(fakeStorage.UpsertCallCount()).To(Equal(0))
		})

		It("should upsert the receipts", func() {
			fakeStorage.UpsertReturns(nil)

			receipts := []repository.Receipt{
				{TxHash: "0xabc", BlockNumber: 1, BlockTimeISO: "2024-01-01T00:00:00Z"},
			}
			Expect(repo.SaveReceipts(receipts)).To(Succeed())
			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))
		})
	})

	Describe("GetReceiptsByHash", func() {
		It("should query by the tx_hash column", func() {
			fakeStorage.GetAllByReturns(nil)

			_, err := repo.GetReceiptsByHash([]string{"0xabc", "0xdef"})
			Expect(err).NotTo(HaveOccurred())

			column, value, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("tx_hash"))
			Expect(value).To(Equal([]string{"0xabc", "0xdef"}))
		})

		It("should wrap storage failures", func() {
			fakeStorage.GetAllByReturns(testErr)

			_, err := repo.GetReceiptsByHash([]string{"0xabc"})
			Expect(err).To(MatchError(testErr))
		})
	})
})
