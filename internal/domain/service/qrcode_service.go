package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code carrying the invite link for the code.
	GenerateInviteQR(inviteCode string) ([]byte, error)
}
