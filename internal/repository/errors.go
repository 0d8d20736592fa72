package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrSlotTaken is returned when a booking transaction finds the slot
	// already claimed, either by the in-transaction recheck or by the unique
	// constraint on the appointment's slot reference.
	ErrSlotTaken = errors.New("slot already booked")

	// ErrSlotInUse is returned when deleting a slot that is currently booked
	ErrSlotInUse = errors.New("slot is booked")
)

// IsNotFound reports whether err means the record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
