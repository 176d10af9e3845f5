package service

// QRCodeService defines the interface for rendering QR codes of public virtual check pages
type QRCodeService interface {
	// RelationURL returns the public virtual check URL for a relation hash
	RelationURL(hash string) string

	// GenerateRelationQR renders the relation's public URL as a PNG QR code
	GenerateRelationQR(hash string) ([]byte, error)
}
