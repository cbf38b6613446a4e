package client

import (
	"regexp"

	"krearsip/internal/status"

	"github.com/jellydator/validation"
)

// Session carries the bearer credential and the wallet it belongs to. It is
// passed explicitly into every authenticated call; there is no ambient
// token lookup.
type Session struct {
	Token  string
	Wallet string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

type NonceRequest struct {
	AlamatWallet string `json:"alamat_wallet"`
}

type NonceResponse struct {
	Nonce string `json:"nonce"`
}

type SiweAuthRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Profile struct {
	ID            string  `json:"id"`
	WalletAddress string  `json:"wallet_address"`
	Name          *string `json:"name,omitempty"`
	Peran         string  `json:"peran"`
}

type Work struct {
	ID           string            `json:"id"`
	Judul        string            `json:"judul"`
	Status       status.WorkStatus `json:"status"`
	TxHash       *string           `json:"tx_hash"`
	JaringanKet  *string           `json:"jaringan_ket"`
	UpdatedAt    string            `json:"updated_at"`
	EtherscanURL *string           `json:"etherscan_url,omitempty"`
}

type WorkList struct {
	Items  []Work `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type PublicWorkDetail struct {
	ID            string            `json:"id"`
	Judul         string            `json:"judul"`
	HashBerkas    string            `json:"hash_berkas"`
	Status        status.WorkStatus `json:"status"`
	TxHash        *string           `json:"tx_hash"`
	AlamatKontrak *string           `json:"alamat_kontrak"`
	JaringanKet   *string           `json:"jaringan_ket"`
	BlockNumber   *int64            `json:"block_number"`
	WaktuBlok     *string           `json:"waktu_blok"`
	UpdatedAt     string            `json:"updated_at"`
	EtherscanURL  *string           `json:"etherscan_url,omitempty"`
}

var hexHash64 = regexp.MustCompile(`^[0-9a-f]{64}$`)

type CreateWorkRequest struct {
	Judul      string `json:"judul"`
	HashBerkas string `json:"hash_berkas"`
}

// Validate rejects malformed submissions before any network call. The file
// hash must be the lowercase hex SHA-256 digest, exactly 64 characters.
func (c CreateWorkRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Judul, validation.Required),
		validation.Field(&c.HashBerkas, validation.Required, validation.Match(hexHash64)),
	)
}

type AdminWorkCreator struct {
	ID           string  `json:"id"`
	NamaTampil   *string `json:"nama_tampil,omitempty"`
	AlamatWallet string  `json:"alamat_wallet"`
}

type AdminWorkVerifier struct {
	ID         string  `json:"id"`
	NamaTampil *string `json:"nama_tampil,omitempty"`
}

type AdminWorkItem struct {
	ID              string               `json:"id"`
	Judul           string               `json:"judul"`
	Status          status.WorkStatus    `json:"status"`
	StatusOnchain   status.OnchainStatus `json:"status_onchain"`
	JaringanKet     *string              `json:"jaringan_ket,omitempty"`
	TxHash          *string              `json:"tx_hash,omitempty"`
	BlockNumber     *int64               `json:"block_number,omitempty"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
	VerifiedAt      *string              `json:"verified_at,omitempty"`
	AlasanPenolakan *string              `json:"alasan_penolakan,omitempty"`
	Creator         AdminWorkCreator     `json:"creator"`
	Verifier        *AdminWorkVerifier   `json:"verifier,omitempty"`
}

type AdminWorksList struct {
	Items  []AdminWorkItem `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// ListParams parameterizes the generic admin listing; the three fixed queues
// are thin wrappers over it.
type ListParams struct {
	Status string
	Queue  string
	Search string
	Limit  int
	Offset int
}

type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SyncResult is the reconciliation outcome for one transaction hash. The
// backend returns the updated row; unknown extra columns are tolerated here
// (and only here), since the action responses are documented as carrying
// additional fields.
type SyncResult struct {
	ID            string               `json:"id"`
	Judul         string               `json:"judul"`
	Status        status.WorkStatus    `json:"status"`
	StatusOnchain status.OnchainStatus `json:"status_onchain"`
	AlamatKontrak *string              `json:"alamat_kontrak"`
	BlockNumber   *int64               `json:"block_number"`
	WaktuBlok     *string              `json:"waktu_blok"`
	TxHash        *string              `json:"tx_hash"`
}
