package session_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"krearsip/internal/client"
	"krearsip/internal/repository"
	"krearsip/internal/session"
	"krearsip/internal/session/fake"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func signedToken(exp time.Time) string {
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"wallet": "0xwallet",
		"peran":  "admin",
		"exp":    exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	Expect(err).NotTo(HaveOccurred())
	return signed
}

var _ = Describe("Store", func() {
	var (
		store        *session.Store
		fakeSettings *fake.Settings
		testErr      error
	)

	BeforeEach(func() {
		fakeSettings = new(fake.Settings)
		testErr = errors.New("test error")
		store = session.NewStore(zap.NewNop().Sugar(), fakeSettings)
	})

	Describe("Save", func() {
		It("should persist token and wallet together", func() {
			err := store.Save(client.Session{Token: "token-1", Wallet: "0xwallet"})
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeSettings.SaveSettingCallCount()).To(Equal(2))

			key, value := fakeSettings.SaveSettingArgsForCall(0)
			Expect(key).To(Equal("TOKEN_KEY"))
			Expect(value).To(Equal("token-1"))

			key, value = fakeSettings.SaveSettingArgsForCall(1)
			Expect(key).To(Equal("WALLET_KEY"))
			Expect(value).To(Equal("0xwallet"))
		})

		It("should fail when persistence fails", func() {
			fakeSettings.SaveSettingReturns(testErr)

			err := store.Save(client.Session{Token: "token-1", Wallet: "0xwallet"})
			Expect(err).To(MatchError(testErr))
		})
	})

	Describe("Current", func() {
		var (
			sess client.Session
			err  error
		)

		JustBeforeEach(func() {
			sess, err = store.Current()
		})

		When("a live session is stored", func() {
			BeforeEach(func() {
				fakeSettings.GetSettingReturnsOnCall(0, signedToken(time.Now().Add(time.Hour)), nil)
				fakeSettings.GetSettingReturnsOnCall(1, "0xwallet", nil)
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sess.Wallet).To(Equal("0xwallet"))
				Expect(sess.Authenticated()).To(BeTrue())
			})
		})

		When("nothing is stored", func() {
			BeforeEach(func() {
				fakeSettings.GetSettingReturns("", repository.ErrSettingNotFound)
			})

			It("should report logged out", func() {
				Expect(err).To(MatchError(session.ErrNotLoggedIn))
			})
		})

		When("the stored token has expired", func() {
			BeforeEach(func() {
				fakeSettings.GetSettingReturnsOnCall(0, signedToken(time.Now().Add(-time.Hour)), nil)
				fakeSettings.GetSettingReturnsOnCall(1, "0xwallet", nil)
			})

			It("should clear the stale session and report it expired", func() {
				Expect(err).To(MatchError(session.ErrSessionExpired))

				Expect(fakeSettings.DeleteSettingsCallCount()).To(Equal(1))
				keys := fakeSettings.DeleteSettingsArgsForCall(0)
				Expect(keys).To(ConsistOf("TOKEN_KEY", "WALLET_KEY"))
			})
		})

		When("the stored token is not a JWT", func() {
			BeforeEach(func() {
				fakeSettings.GetSettingReturnsOnCall(0, "opaque-token", nil)
				fakeSettings.GetSettingReturnsOnCall(1, "0xwallet", nil)
			})

			It("should still return the session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(sess.Token).To(Equal("opaque-token"))
			})
		})

		When("the storage lookup fails", func() {
			BeforeEach(func() {
				fakeSettings.GetSettingReturns("", testErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("InvalidateIfRejected", func() {
		It("should clear the session on a 401", func() {
			rejected := fmt.Errorf("me: %w", &client.APIError{Status: http.StatusUnauthorized, Path: "/auth/me"})

			Expect(store.InvalidateIfRejected(rejected)).To(BeTrue())
			Expect(fakeSettings.DeleteSettingsCallCount()).To(Equal(1))
		})

		It("should ignore other backend failures", func() {
			serverErr := fmt.Errorf("me: %w", &client.APIError{Status: http.StatusInternalServerError, Path: "/auth/me"})

			Expect(store.InvalidateIfRejected(serverErr)).To(BeFalse())
			Expect(fakeSettings.DeleteSettingsCallCount()).To(Equal(0))
		})

		It("should ignore transport errors", func() {
			Expect(store.InvalidateIfRejected(testErr)).To(BeFalse())
		})
	})

	Describe("LoggedIn", func() {
		It("should be false when nothing is stored", func() {
			fakeSettings.GetSettingReturns("", repository.ErrSettingNotFound)
			Expect(store.LoggedIn()).To(BeFalse())
		})

		It("should be true for a stored live session", func() {
			fakeSettings.GetSettingReturnsOnCall(0, signedToken(time.Now().Add(time.Hour)), nil)
			fakeSettings.GetSettingReturnsOnCall(1, "0xwallet", nil)
			Expect(store.LoggedIn()).To(BeTrue())
		})
	})
})
