package service

import (
	"sync"
	"testing"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	service *AppointmentService
	slots   *fakeSlotStore
	appts   *fakeAppointmentStore
	audit   *spyAudit
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	patients := &fakePatientStore{patients: map[uint]*models.Patient{
		1: {ID: 1, HospitalID: 1, Name: "Sita Sharma"},
	}}
	departments := &fakeDepartmentStore{departments: map[uint]*models.Department{
		10: {ID: 10, HospitalID: 1, Name: "Cardiology"},
		20: {ID: 20, HospitalID: 1, Name: "Neurology"},
	}}
	doctors := &fakeDoctorStore{doctors: map[uint]*models.Doctor{
		100: {ID: 100, HospitalID: 1, DepartmentID: 10, Name: "Dr. Thapa"},
		200: {ID: 200, HospitalID: 1, DepartmentID: 20, Name: "Dr. Karki"},
	}}

	slots := newFakeSlotStore()
	_ = slots.Create(&models.DoctorAvailability{
		DoctorID:  100,
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		StartTime: "09:00",
		EndTime:   "09:30",
	})

	appts := newFakeAppointmentStore(slots)
	audit := &spyAudit{}

	return &bookingFixture{
		service: NewAppointmentService(appts, slots, patients, departments, doctors, audit),
		slots:   slots,
		appts:   appts,
		audit:   audit,
	}
}

func validRequest() BookingRequest {
	return BookingRequest{
		PatientID:    1,
		DepartmentID: 10,
		DoctorID:     100,
		SlotID:       1,
		Reason:       "chest pain",
	}
}

func TestBookSuccess(t *testing.T) {
	fx := newBookingFixture(t)

	appt, err := fx.service.Book(validRequest())
	require.NoError(t, err)
	require.NotNil(t, appt)

	// Appointment time is derived from the slot's date + start time
	want := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)
	assert.Equal(t, want, appt.AppointmentTime)
	assert.Equal(t, "chest pain", appt.Reason)

	slot, err := fx.slots.FindByID(1)
	require.NoError(t, err)
	assert.True(t, slot.IsBooked)
	require.NotNil(t, slot.AppointmentID)
	assert.Equal(t, appt.ID, *slot.AppointmentID)

	assert.Contains(t, fx.audit.actions, "appointment.book")
}

func TestBookValidationOrder(t *testing.T) {
	fx := newBookingFixture(t)

	// Every referenced entity is absent: the patient check fails first
	req := BookingRequest{PatientID: 99, DepartmentID: 99, DoctorID: 99, SlotID: 99}
	_, err := fx.service.Book(req)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	req.PatientID = 1
	_, err = fx.service.Book(req)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)

	req.DepartmentID = 10
	_, err = fx.service.Book(req)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	req.DoctorID = 100
	_, err = fx.service.Book(req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBookSlotAlreadyBooked(t *testing.T) {
	fx := newBookingFixture(t)

	_, err := fx.service.Book(validRequest())
	require.NoError(t, err)

	_, err = fx.service.Book(validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestBookDoctorMismatchLeavesSlotFree(t *testing.T) {
	fx := newBookingFixture(t)

	// Slot 1 belongs to doctor 100; book against doctor 200
	req := validRequest()
	req.DoctorID = 200
	req.DepartmentID = 20

	_, err := fx.service.Book(req)
	assert.ErrorIs(t, err, ErrSlotDoctorMismatch)

	// No state was mutated
	slot, err := fx.slots.FindByID(1)
	require.NoError(t, err)
	assert.False(t, slot.IsBooked)
	assert.Nil(t, slot.AppointmentID)

	appts, err := fx.appts.FindAll()
	require.NoError(t, err)
	assert.Empty(t, appts)
}

func TestBookDoctorDepartmentMismatch(t *testing.T) {
	fx := newBookingFixture(t)

	// Doctor 100 belongs to department 10, not 20
	req := validRequest()
	req.DepartmentID = 20

	_, err := fx.service.Book(req)
	assert.ErrorIs(t, err, ErrDoctorDepartmentMismatch)
}

func TestBookConcurrentAtMostOne(t *testing.T) {
	fx := newBookingFixture(t)

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.service.Book(validRequest())
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
			conflicts++
		}
	}
	assert.Equal(t, 1, wins, "exactly one booking must win")
	assert.Equal(t, attempts-1, conflicts)

	appts, err := fx.appts.FindAll()
	require.NoError(t, err)
	assert.Len(t, appts, 1, "exactly one appointment must reference the slot")
}

func TestCancelRoundTrip(t *testing.T) {
	fx := newBookingFixture(t)

	appt, err := fx.service.Book(validRequest())
	require.NoError(t, err)

	require.NoError(t, fx.service.Cancel(appt.ID))

	slot, err := fx.slots.FindByID(1)
	require.NoError(t, err)
	assert.False(t, slot.IsBooked)
	assert.Nil(t, slot.AppointmentID)

	// The freed slot shows up again for its doctor and date
	free, err := fx.slots.FindFreeByDoctorAndDate(100, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, uint(1), free[0].ID)

	_, err = fx.service.GetByID(appt.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelAbsentAppointment(t *testing.T) {
	fx := newBookingFixture(t)

	err := fx.service.Cancel(42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// No side effects on the untouched slot
	slot, err := fx.slots.FindByID(1)
	require.NoError(t, err)
	assert.False(t, slot.IsBooked)
}

func TestCancelToleratesMissingSlot(t *testing.T) {
	fx := newBookingFixture(t)

	appt, err := fx.service.Book(validRequest())
	require.NoError(t, err)

	// Slot disappears out from under the appointment
	fx.slots.mu.Lock()
	delete(fx.slots.slots, appt.SlotID)
	fx.slots.mu.Unlock()

	require.NoError(t, fx.service.Cancel(appt.ID))

	_, err = fx.service.GetByID(appt.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateRejectsSlotChange(t *testing.T) {
	fx := newBookingFixture(t)

	appt, err := fx.service.Book(validRequest())
	require.NoError(t, err)

	otherSlot := uint(999)
	_, err = fx.service.Update(appt.ID, UpdateAppointmentRequest{
		SlotID: &otherSlot,
		Reason: "still rejected",
	})
	assert.ErrorIs(t, err, ErrSlotChangeUnsupported)

	// Re-supplying the current slot is fine
	same := appt.SlotID
	updated, err := fx.service.Update(appt.ID, UpdateAppointmentRequest{
		SlotID: &same,
		Reason: "follow-up",
	})
	require.NoError(t, err)
	assert.Equal(t, "follow-up", updated.Reason)
}

func TestUpdateReassignChecksExistence(t *testing.T) {
	fx := newBookingFixture(t)

	appt, err := fx.service.Book(validRequest())
	require.NoError(t, err)

	missing := uint(77)
	_, err = fx.service.Update(appt.ID, UpdateAppointmentRequest{
		PatientID: &missing,
		Reason:    "reassign",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	// The failed update did not touch the stored appointment
	stored, err := fx.service.GetByID(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), stored.PatientID)
	assert.Equal(t, "chest pain", stored.Reason)
}

func TestUpdateAlwaysAppliesReason(t *testing.T) {
	fx := newBookingFixture(t)

	appt, err := fx.service.Book(validRequest())
	require.NoError(t, err)

	updated, err := fx.service.Update(appt.ID, UpdateAppointmentRequest{})
	require.NoError(t, err)
	assert.Empty(t, updated.Reason, "an omitted reason clears the stored one")
}

func TestUpdateAbsentAppointment(t *testing.T) {
	fx := newBookingFixture(t)

	_, err := fx.service.Update(42, UpdateAppointmentRequest{Reason: "x"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
