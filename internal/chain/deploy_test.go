package chain_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"krearsip/internal/chain"

	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const artifactJSON = `{
	"abi": [
		{
			"inputs": [
				{"internalType": "bytes32", "name": "fileHash", "type": "bytes32"},
				{"internalType": "string", "name": "title", "type": "string"}
			],
			"name": "registerWork",
			"outputs": [],
			"stateMutability": "nonpayable",
			"type": "function"
		}
	],
	"bytecode": "0x6080604052"
}`

var _ = Describe("LoadArtifact", func() {
	var artifactPath string

	BeforeEach(func() {
		artifactPath = filepath.Join(GinkgoT().TempDir(), "Krearsip.json")
		Expect(os.WriteFile(artifactPath, []byte(artifactJSON), 0o600)).To(Succeed())
	})

	It("should parse the abi and decode the bytecode", func() {
		artifact, err := chain.LoadArtifact(artifactPath)
		Expect(err).NotTo(HaveOccurred())

		_, ok := artifact.ABI.Methods["registerWork"]
		Expect(ok).To(BeTrue())
		Expect(artifact.Bytecode).To(Equal([]byte{0x60, 0x80, 0x60, 0x40, 0x52}))
	})

	It("should fail on a missing file", func() {
		_, err := chain.LoadArtifact(filepath.Join(GinkgoT().TempDir(), "nope.json"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail on malformed bytecode", func() {
		broken := filepath.Join(GinkgoT().TempDir(), "broken.json")
		Expect(os.WriteFile(broken, []byte(`{"abi": [], "bytecode": "zzzz"}`), 0o600)).To(Succeed())

		_, err := chain.LoadArtifact(broken)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Deployer", func() {
	Describe("RegisterWork input validation", func() {
		var deployer *chain.Deployer

		BeforeEach(func() {
			key, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			deployer = chain.NewDeployer(zap.NewNop().Sugar(), nil, key, 11155111)
		})

		It("should reject a short file hash before any node call", func() {
			_, err := deployer.RegisterWork(context.Background(), chain.Artifact{},
				"0x0000000000000000000000000000000000000001", "abcd", "Judul")
			Expect(err).To(MatchError(chain.ErrInvalidFileHash))
		})

		It("should reject non-hex characters", func() {
			badHash := "zz" + "00000000000000000000000000000000000000000000000000000000000000"
			_, err := deployer.RegisterWork(context.Background(), chain.Artifact{},
				"0x0000000000000000000000000000000000000001", badHash, "Judul")
			Expect(err).To(MatchError(chain.ErrInvalidFileHash))
		})
	})

	Describe("Address", func() {
		It("should derive the lowercase sender address from the key", func() {
			key, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())

			deployer := chain.NewDeployer(zap.NewNop().Sugar(), nil, key, 1)
			expected := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
			Expect(deployer.Address()).To(Equal(expected))
		})
	})
})
