package siwe

import (
	"fmt"
	"time"
)

// statement is the fixed application line embedded in every sign-in message.
const statement = "Krearsip - Verifikasi kepemilikan wallet Anda untuk mengakses platform."

// Message renders the EIP-4361 sign-in message. The format is parsed
// line-by-line by the backend verifier, so the layout is load-bearing:
// address on its own line, exactly one "Nonce:" and one "Issued At:" line.
func Message(domain, uri string, chainID int64, wallet, nonce string, issuedAt time.Time) string {
	return fmt.Sprintf(`%s wants you to sign in with your Ethereum account:
%s

%s

URI: %s
Version: 1
Chain ID: %d
Nonce: %s
Issued At: %s`,
		domain,
		wallet,
		statement,
		uri,
		chainID,
		nonce,
		issuedAt.UTC().Format(time.RFC3339),
	)
}
