package ports

import "time"

// BoxLabel is the printable summary of one box.
type BoxLabel struct {
	BoxNo        string
	Code         string
	ShipmentNo   string
	ProductCount int
	CreatedAt    time.Time
}

// LabelRenderer renders box labels into a printable document.
type LabelRenderer interface {
	Render(labels []BoxLabel) ([]byte, error)
}
