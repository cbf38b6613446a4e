package fingerprint_test

import (
	"os"
	"path/filepath"

	"krearsip/pkg/fingerprint"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fingerprint", func() {
	Describe("Bytes", func() {
		It("should produce the known digest of an empty payload", func() {
			Expect(fingerprint.Bytes(nil)).To(Equal(
				"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"))
		})

		It("should produce 64 lowercase hex characters", func() {
			digest := fingerprint.Bytes([]byte("karya"))
			Expect(digest).To(MatchRegexp(`^[0-9a-f]{64}$`))
		})
	})

	Describe("File", func() {
		It("should match the digest of the file contents", func() {
			path := filepath.Join(GinkgoT().TempDir(), "karya.txt")
			Expect(os.WriteFile(path, []byte("karya"), 0o600)).To(Succeed())

			digest, err := fingerprint.File(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(digest).To(Equal(fingerprint.Bytes([]byte("karya"))))
		})

		It("should fail on a missing file", func() {
			_, err := fingerprint.File(filepath.Join(GinkgoT().TempDir(), "nope"))
			Expect(err).To(HaveOccurred())
		})
	})
})
