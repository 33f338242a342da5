package order

import "time"

// initialTrackNotes is recorded on every line item's track at checkout.
const initialTrackNotes = "Order placed"

// Track is the fulfillment status record attached to a single line item.
// It tracks the line independently of the order-level aggregate status.
type Track struct {
	status      Status
	updatedTime time.Time
	notes       string
}

// NewTrack creates a track in the New status dated today.
func NewTrack(today time.Time) Track {
	return Track{
		status:      New,
		updatedTime: today,
		notes:       initialTrackNotes,
	}
}

// RestoreTrack reconstructs a track from persistent storage.
func RestoreTrack(status Status, updatedTime time.Time, notes string) Track {
	return Track{
		status:      status,
		updatedTime: updatedTime,
		notes:       notes,
	}
}

// Status returns the line item's fulfillment status.
func (t Track) Status() Status {
	return t.status
}

// UpdatedTime returns the date the track was last updated through a line-item operation.
// Order-level operations set the status without refreshing this date.
func (t Track) UpdatedTime() time.Time {
	return t.updatedTime
}

// Notes returns the free-form notes recorded with the last update.
func (t Track) Notes() string {
	return t.notes
}
