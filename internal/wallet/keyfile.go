package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/scrypt"
)

// Keyfile is the encrypted at-rest envelope for a private key: scrypt key
// derivation, AES-GCM encryption, everything base64 in one JSON file.
type Keyfile struct {
	Address    string `json:"address"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 16
)

var ErrWrongPassphrase error = errors.New("wrong passphrase or corrupted keyfile")

// FromKeyfile decrypts the keyfile at path and wraps the key in a wallet.
func FromKeyfile(path, passphrase string, chainID int64) (*KeyWallet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyfile: %w", err)
	}

	var kf Keyfile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, fmt.Errorf("parse keyfile: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(kf.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(kf.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}

	cipherText, err := base64.StdEncoding.DecodeString(kf.CipherText)
	if err != nil {
		return nil, fmt.Errorf("decode ciphertext: %w", err)
	}

	gcm, err := keyCipher(passphrase, salt)
	if err != nil {
		return nil, err
	}

	keyBytes, err := gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}

	key, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("restore private key: %w", err)
	}

	return &KeyWallet{
		key:     key,
		chainID: chainID,
	}, nil
}

// WriteKeyfile encrypts the wallet's key under passphrase and writes the
// envelope to path with owner-only permissions.
func (w *KeyWallet) WriteKeyfile(path, passphrase string) error {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := keyCipher(passphrase, salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	cipherText := gcm.Seal(nil, nonce, crypto.FromECDSA(w.key), nil)

	kf := Keyfile{
		Address:    w.Address(),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(cipherText),
	}

	encoded, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keyfile: %w", err)
	}

	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return fmt.Errorf("write keyfile: %w", err)
	}

	return nil
}

func keyCipher(passphrase string, salt []byte) (cipher.AEAD, error) {
	derived, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}

	return gcm, nil
}
