package storage

import "errors"

var ErrZoneNotFound = errors.New("zone not found")

type ZoneType string

const (
	ZoneReceiving      ZoneType = "Receiving"
	ZoneQualityControl ZoneType = "QualityControl"
	ZoneStorage        ZoneType = "Storage"
	ZonePicking        ZoneType = "Picking"
	ZonePacking        ZoneType = "Packing"
	ZoneOutbound       ZoneType = "Outbound"
)

type Zone struct {
	ID            string   `json:"id"`
	Type          ZoneType `json:"type"`
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	Label         string   `json:"label"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity"`
	Efficiency    float64  `json:"efficiency"`
	StaffRequired int      `json:"staffRequired"`
}

func (z Zone) Area() int {
	return z.Width * z.Height
}

// ZoneInput is the payload of a manual "add zone" action.
type ZoneInput struct {
	Type        ZoneType `json:"type"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
}

// ZonePatch is a drag, resize or edit of an existing zone.
type ZonePatch struct {
	Label       *string   `json:"label"`
	Description *string   `json:"description"`
	Type        *ZoneType `json:"type"`
	X           *int      `json:"x"`
	Y           *int      `json:"y"`
	Width       *int      `json:"width"`
	Height      *int      `json:"height"`
}

// FieldErrors maps an input field name to a human readable message.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}
