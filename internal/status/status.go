package status

// WorkStatus is the review state of a registered work. The string values are
// the backend's wire literals and must not be translated.
type WorkStatus string

const (
	StatusDraft    WorkStatus = "draft"
	StatusOnChain  WorkStatus = "on_chain"
	StatusVerified WorkStatus = "terverifikasi"
)

// OnchainStatus tracks the blockchain submission lifecycle, independent of
// the review status.
type OnchainStatus string

const (
	OnchainNone      OnchainStatus = "tidak ada"
	OnchainQueued    OnchainStatus = "dalam antrian"
	OnchainPending   OnchainStatus = "menunggu"
	OnchainSucceeded OnchainStatus = "berhasil"
	OnchainFailed    OnchainStatus = "gagal"
)

// The predicates below are the single source of truth for which admin action
// is legal for a given (status, onchain) pair. They are total: any input,
// including combinations unreachable through the normal flow, yields false
// rather than panicking.

func CanApprove(status WorkStatus, _ OnchainStatus) bool {
	return status == StatusDraft
}

func CanReject(status WorkStatus, _ OnchainStatus) bool {
	return status == StatusDraft
}

// CanDeploy permits a first deploy after approval and a retry after a failed
// transaction.
func CanDeploy(status WorkStatus, onchain OnchainStatus) bool {
	return status == StatusDraft &&
		(onchain == OnchainPending || onchain == OnchainFailed)
}

func CanSync(status WorkStatus, onchain OnchainStatus) bool {
	return status == StatusOnChain && onchain == OnchainPending
}

func CanVerify(status WorkStatus, onchain OnchainStatus) bool {
	return status == StatusOnChain && onchain == OnchainSucceeded
}

// Label returns the human-readable badge text for a review status.
func Label(status WorkStatus) string {
	switch status {
	case StatusDraft:
		return "Draft"
	case StatusOnChain:
		return "On-chain"
	case StatusVerified:
		return "Terverifikasi"
	default:
		return string(status)
	}
}

// OnchainLabel returns the human-readable badge text for an on-chain status.
func OnchainLabel(onchain OnchainStatus) string {
	switch onchain {
	case OnchainNone:
		return "Belum dikirim"
	case OnchainQueued:
		return "Dalam antrian worker"
	case OnchainPending:
		return "Tx dikirim, menunggu"
	case OnchainSucceeded:
		return "Tx berhasil"
	case OnchainFailed:
		return "Tx gagal"
	default:
		return string(onchain)
	}
}
