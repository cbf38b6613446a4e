package db_test

import (
	"os"
	"path/filepath"

	"krearsip/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type testRow struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string
}

var _ = Describe("SqliteDB", func() {
	var store *db.SqliteDB

	BeforeEach(func() {
		path := filepath.Join(GinkgoT().TempDir(), "state.db")

		var err error
		store, err = db.NewSqliteDB(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(store.MigrateModels(&testRow{})).To(Succeed())
	})

	Describe("NewSqliteDB", func() {
		It("should create missing parent directories", func() {
			nested := filepath.Join(GinkgoT().TempDir(), "a", "b", "state.db")

			_, err := db.NewSqliteDB(nested)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(filepath.Dir(nested))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
		})
	})

	Describe("Upsert", func() {
		It("should insert new rows", func() {
			rows := []testRow{{Key: "k1", Value: "v1"}}
			Expect(store.Upsert(&rows)).To(Succeed())

			var got testRow
			Expect(store.GetOneBy("key", "k1", &got)).To(Succeed())
			Expect(got.Value).To(Equal("v1"))
		})

		It("should replace an existing row on key conflict", func() {
			first := []testRow{{Key: "k1", Value: "v1"}}
			Expect(store.Upsert(&first)).To(Succeed())

			second := []testRow{{Key: "k1", Value: "v2"}}
			Expect(store.Upsert(&second)).To(Succeed())

			var got testRow
			Expect(store.GetOneBy("key", "k1", &got)).To(Succeed())
			Expect(got.Value).To(Equal("v2"))
		})
	})

	Describe("GetOneBy", func() {
		It("should report a missing row as not found", func() {
			var got testRow
			Expect(store.GetOneBy("key", "missing", &got)).To(MatchError(db.ErrNotFound))
		})
	})

	Describe("GetAllBy", func() {
		BeforeEach(func() {
			rows := []testRow{
				{Key: "k1", Value: "v1"},
				{Key: "k2", Value: "v2"},
				{Key: "k3", Value: "v3"},
			}
			Expect(store.Upsert(&rows)).To(Succeed())
		})

		It("should return only the requested keys", func() {
			var got []testRow
			Expect(store.GetAllBy("key", []string{"k1", "k3"}, &got)).To(Succeed())
			Expect(got).To(HaveLen(2))
		})

		It("should return an empty slice for unknown keys", func() {
			var got []testRow
			Expect(store.GetAllBy("key", []string{"nope"}, &got)).To(Succeed())
			Expect(got).To(BeEmpty())
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			rows := []testRow{
				{Key: "k1", Value: "v1"},
				{Key: "k2", Value: "v2"},
			}
			Expect(store.Upsert(&rows)).To(Succeed())
		})

		It("should delete all matching rows", func() {
			Expect(store.DeleteBy("key", []string{"k1", "k2"}, &testRow{})).To(Succeed())

			var got []testRow
			Expect(store.GetAllBy("key", []string{"k1", "k2"}, &got)).To(Succeed())
			Expect(got).To(BeEmpty())
		})
	})
})
