package siwe_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"krearsip/internal/client"
	"krearsip/internal/siwe"
	"krearsip/internal/siwe/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Engine", func() {
	var (
		engine      *siwe.Engine
		fakeWallet  *fake.Provider
		fakeBackend *fake.AuthBackend
		ctx         context.Context
		testErr     error
	)

	cfg := siwe.Config{
		Domain:  "krearsip.id",
		URI:     "https://krearsip.id",
		ChainID: 11155111,
	}

	BeforeEach(func() {
		fakeWallet = new(fake.Provider)
		fakeBackend = new(fake.AuthBackend)
		ctx = context.Background()
		testErr = errors.New("test error")
		engine = siwe.NewEngine(zap.NewNop().Sugar(), fakeWallet, fakeBackend, cfg)
	})

	Describe("Login", func() {
		var (
			result siwe.LoginResult
			err    error
		)

		JustBeforeEach(func() {
			result, err = engine.Login(ctx)
		})

		When("every step succeeds", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{"0xABCDEF0000000000000000000000000000000001"}, nil)
				fakeBackend.NonceReturns("nonce-1", nil)
				fakeWallet.SignPersonalReturns("0xsignature", nil)
				fakeBackend.VerifySiweReturns(client.AuthResponse{AccessToken: "token-1", TokenType: "bearer"}, nil)
			})

			It("should return the token and the lowercase wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Token).To(Equal("token-1"))
				Expect(result.Wallet).To(Equal("0xabcdef0000000000000000000000000000000001"))
			})

			It("should request the nonce for the lowercase wallet", func() {
				_, wallet := fakeBackend.NonceArgsForCall(0)
				Expect(wallet).To(Equal("0xabcdef0000000000000000000000000000000001"))
			})

			It("should sign a message that embeds the nonce", func() {
				_, message, account := fakeWallet.SignPersonalArgsForCall(0)
				Expect(string(message)).To(ContainSubstring("Nonce: nonce-1"))
				Expect(account).To(Equal("0xabcdef0000000000000000000000000000000001"))
			})

			It("should submit the signed message verbatim", func() {
				_, message, signature := fakeBackend.VerifySiweArgsForCall(0)
				_, signed, _ := fakeWallet.SignPersonalArgsForCall(0)
				Expect(message).To(Equal(string(signed)))
				Expect(signature).To(Equal("0xsignature"))
			})
		})

		When("the wallet owner declines the connection", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns(nil, siwe.ErrRejected)
			})

			It("should fail with the rejection code and stop", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeUserRejectedConnection))
				Expect(fakeBackend.NonceCallCount()).To(Equal(0))
			})
		})

		When("the wallet has no accounts", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{}, nil)
			})

			It("should fail without a nonce request", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeNoAccounts))
				Expect(fakeBackend.NonceCallCount()).To(Equal(0))
			})
		})

		When("the nonce request fails", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{"0xabc0000000000000000000000000000000000001"}, nil)
				fakeBackend.NonceReturns("", testErr)
			})

			It("should stop before asking for a signature", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeNonceRequestFailed))
				Expect(fakeWallet.SignPersonalCallCount()).To(Equal(0))
			})
		})

		When("the server returns an empty nonce", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{"0xabc0000000000000000000000000000000000001"}, nil)
				fakeBackend.NonceReturns("", nil)
			})

			It("should fail with the missing-nonce code", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeNoNonce))
			})
		})

		When("the wallet owner declines the signature", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{"0xabc0000000000000000000000000000000000001"}, nil)
				fakeBackend.NonceReturns("nonce-1", nil)
				fakeWallet.SignPersonalReturns("", siwe.ErrRejected)
			})

			It("should stop before submission", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeUserRejectedSignature))
				Expect(fakeBackend.VerifySiweCallCount()).To(Equal(0))
			})
		})

		When("the server rejects the signature", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{"0xabc0000000000000000000000000000000000001"}, nil)
				fakeBackend.NonceReturns("nonce-1", nil)
				fakeWallet.SignPersonalReturns("0xsig", nil)
				fakeBackend.VerifySiweReturns(client.AuthResponse{},
					fmt.Errorf("verify: %w", &client.APIError{Status: http.StatusUnauthorized, Path: "/auth/siwe"}))
			})

			It("should map 401 to an invalid signature", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeInvalidSignature))
			})
		})

		When("the wallet holds no recognized role", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{"0xabc0000000000000000000000000000000000001"}, nil)
				fakeBackend.NonceReturns("nonce-1", nil)
				fakeWallet.SignPersonalReturns("0xsig", nil)
				fakeBackend.VerifySiweReturns(client.AuthResponse{},
					fmt.Errorf("verify: %w", &client.APIError{Status: http.StatusForbidden, Path: "/auth/siwe"}))
			})

			It("should map 403 to access denied", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeAccessDenied))
			})
		})

		When("the server response carries no token", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]string{"0xabc0000000000000000000000000000000000001"}, nil)
				fakeBackend.NonceReturns("nonce-1", nil)
				fakeWallet.SignPersonalReturns("0xsig", nil)
				fakeBackend.VerifySiweReturns(client.AuthResponse{}, nil)
			})

			It("should fail with the missing-token code", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeNoToken))
			})
		})

		When("no wallet provider is configured", func() {
			BeforeEach(func() {
				engine = siwe.NewEngine(zap.NewNop().Sugar(), nil, fakeBackend, cfg)
			})

			It("should fail immediately", func() {
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeWalletUnavailable))
				Expect(fakeBackend.NonceCallCount()).To(Equal(0))
			})
		})
	})

	Describe("VerifyNetwork", func() {
		When("the wallet is on the configured chain", func() {
			BeforeEach(func() {
				fakeWallet.ChainIDReturns(11155111, nil)
			})

			It("should report a match", func() {
				ok, err := engine.VerifyNetwork(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
			})
		})

		When("the wallet is on another chain", func() {
			BeforeEach(func() {
				fakeWallet.ChainIDReturns(1, nil)
			})

			It("should report a mismatch", func() {
				ok, err := engine.VerifyNetwork(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})

		When("the chain id cannot be read", func() {
			BeforeEach(func() {
				fakeWallet.ChainIDReturns(0, testErr)
			})

			It("should fail with the network code", func() {
				_, err := engine.VerifyNetwork(ctx)
				Expect(siwe.CodeOf(err)).To(Equal(siwe.CodeWrongNetwork))
			})
		})
	})
})
