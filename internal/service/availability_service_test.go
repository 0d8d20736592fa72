package service

import (
	"testing"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityFixture(t *testing.T) (*AvailabilityService, *fakeSlotStore, *spyAudit) {
	t.Helper()

	doctors := &fakeDoctorStore{doctors: map[uint]*models.Doctor{
		100: {ID: 100, HospitalID: 1, DepartmentID: 10, Name: "Dr. Thapa"},
	}}
	slots := newFakeSlotStore()
	audit := &spyAudit{}

	return NewAvailabilityService(slots, doctors, audit), slots, audit
}

func TestCreateSlotStartsFree(t *testing.T) {
	svc, _, _ := newAvailabilityFixture(t)

	slot, err := svc.Create(CreateSlotRequest{
		DoctorID:  100,
		Date:      "2024-05-01",
		StartTime: "09:00",
		EndTime:   "09:30",
	})
	require.NoError(t, err)
	assert.False(t, slot.IsBooked)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), slot.Date)
}

func TestCreateSlotValidation(t *testing.T) {
	svc, _, _ := newAvailabilityFixture(t)

	_, err := svc.Create(CreateSlotRequest{DoctorID: 42, Date: "2024-05-01", StartTime: "09:00", EndTime: "09:30"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = svc.Create(CreateSlotRequest{DoctorID: 100, Date: "May 1st", StartTime: "09:00", EndTime: "09:30"})
	assert.ErrorIs(t, err, ErrInvalidSlotTime)

	_, err = svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "9am", EndTime: "09:30"})
	assert.ErrorIs(t, err, ErrInvalidSlotTime)

	// Start must precede end
	_, err = svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "10:00", EndTime: "09:30"})
	assert.ErrorIs(t, err, ErrInvalidSlotTime)
}

func TestListFreeExcludesBooked(t *testing.T) {
	svc, slots, _ := newAvailabilityFixture(t)

	a, err := svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "09:00", EndTime: "09:30"})
	require.NoError(t, err)
	b, err := svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)

	// Mark one slot booked behind the service's back
	slots.mu.Lock()
	slots.slots[a.ID].IsBooked = true
	slots.mu.Unlock()

	free, err := svc.ListFree(100, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, b.ID, free[0].ID)

	all, err := svc.ListAll(100, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteBookedSlotRefused(t *testing.T) {
	svc, slots, _ := newAvailabilityFixture(t)

	slot, err := svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "09:00", EndTime: "09:30"})
	require.NoError(t, err)

	slots.mu.Lock()
	slots.slots[slot.ID].IsBooked = true
	slots.mu.Unlock()

	err = svc.Delete(slot.ID)
	assert.ErrorIs(t, err, ErrSlotInUse)

	// Slot survives the refused delete
	_, err = svc.GetByID(slot.ID)
	assert.NoError(t, err)
}

func TestDeleteFreeSlot(t *testing.T) {
	svc, _, _ := newAvailabilityFixture(t)

	slot, err := svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "09:00", EndTime: "09:30"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(slot.ID))

	_, err = svc.GetByID(slot.ID)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	assert.ErrorIs(t, svc.Delete(slot.ID), ErrSlotNotFound)
}

func TestUpdateBookedOverrideIsAudited(t *testing.T) {
	svc, _, audit := newAvailabilityFixture(t)

	slot, err := svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "09:00", EndTime: "09:30"})
	require.NoError(t, err)

	booked := true
	updated, err := svc.Update(slot.ID, UpdateSlotRequest{IsBooked: &booked})
	require.NoError(t, err)
	assert.True(t, updated.IsBooked)
	assert.Contains(t, audit.actions, "slot.override")

	// A no-op flag write is not an override
	audit.actions = nil
	_, err = svc.Update(slot.ID, UpdateSlotRequest{IsBooked: &booked})
	require.NoError(t, err)
	assert.Empty(t, audit.actions)
}

func TestUpdateSlotTimes(t *testing.T) {
	svc, _, _ := newAvailabilityFixture(t)

	slot, err := svc.Create(CreateSlotRequest{DoctorID: 100, Date: "2024-05-01", StartTime: "09:00", EndTime: "09:30"})
	require.NoError(t, err)

	start := "11:00"
	end := "11:30"
	updated, err := svc.Update(slot.ID, UpdateSlotRequest{StartTime: &start, EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, "11:00", updated.StartTime)
	assert.Equal(t, "11:30", updated.EndTime)

	bad := "noon"
	_, err = svc.Update(slot.ID, UpdateSlotRequest{StartTime: &bad})
	assert.ErrorIs(t, err, ErrInvalidSlotTime)
}
