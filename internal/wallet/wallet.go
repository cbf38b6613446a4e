package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyWallet is a local key-backed wallet provider. It stands in for the
// browser extension of the web flow: it answers account requests and signs
// EIP-191 personal messages, and the key never leaves this package.
type KeyWallet struct {
	key     *ecdsa.PrivateKey
	chainID int64
}

func FromHex(privateKeyHex string, chainID int64) (*KeyWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return &KeyWallet{
		key:     key,
		chainID: chainID,
	}, nil
}

// Address returns the lowercase hex address, the normalization the backend
// keys identities on.
func (w *KeyWallet) Address() string {
	return strings.ToLower(crypto.PubkeyToAddress(w.key.PublicKey).Hex())
}

func (w *KeyWallet) RequestAccounts(_ context.Context) ([]string, error) {
	return []string{w.Address()}, nil
}

// SignPersonal signs message bytes the personal_sign way: EIP-191 prefix,
// keccak, secp256k1 signature with the legacy 27 recovery offset.
func (w *KeyWallet) SignPersonal(_ context.Context, message []byte, account string) (string, error) {
	if account != "" && !strings.EqualFold(account, w.Address()) {
		return "", fmt.Errorf("account %s is not held by this wallet", account)
	}

	signature, err := crypto.Sign(accounts.TextHash(message), w.key)
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}

	signature[64] += 27

	return hexutil.Encode(signature), nil
}

func (w *KeyWallet) ChainID(_ context.Context) (int64, error) {
	return w.chainID, nil
}

// PrivateKey exposes the key for transaction signing in the chain
// utilities. The SIWE path never touches it.
func (w *KeyWallet) PrivateKey() *ecdsa.PrivateKey {
	return w.key
}
