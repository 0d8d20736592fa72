package service

import (
	"sync"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"

	"gorm.io/gorm"
)

// In-memory fakes for the store interfaces. The slot and appointment fakes
// share a mutex-guarded slot map so booking behaves like the real
// transactional claim: check-and-set under one lock.

type fakePatientStore struct {
	patients map[uint]*models.Patient
}

func (f *fakePatientStore) FindByID(id uint) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

type fakeDepartmentStore struct {
	departments map[uint]*models.Department
}

func (f *fakeDepartmentStore) FindByID(id uint) (*models.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

type fakeDoctorStore struct {
	doctors map[uint]*models.Doctor
}

func (f *fakeDoctorStore) FindByID(id uint) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

type fakeSlotStore struct {
	mu     sync.Mutex
	slots  map[uint]*models.DoctorAvailability
	nextID uint
}

func newFakeSlotStore() *fakeSlotStore {
	return &fakeSlotStore{slots: make(map[uint]*models.DoctorAvailability)}
}

func (f *fakeSlotStore) Create(slot *models.DoctorAvailability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	slot.ID = f.nextID
	cp := *slot
	f.slots[slot.ID] = &cp
	return nil
}

func (f *fakeSlotStore) FindByID(id uint) (*models.DoctorAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlotStore) FindFreeByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DoctorAvailability
	for _, s := range f.slots {
		if s.DoctorID == doctorID && s.Date.Format("2006-01-02") == date && !s.IsBooked {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlotStore) FindAllByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DoctorAvailability
	for _, s := range f.slots {
		if s.DoctorID == doctorID && s.Date.Format("2006-01-02") == date {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlotStore) Save(slot *models.DoctorAvailability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.slots[slot.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *slot
	f.slots[slot.ID] = &cp
	return nil
}

func (f *fakeSlotStore) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if s.IsBooked {
		return repository.ErrSlotInUse
	}
	delete(f.slots, id)
	return nil
}

type fakeAppointmentStore struct {
	mu     sync.Mutex
	slots  *fakeSlotStore
	appts  map[uint]*models.Appointment
	nextID uint
}

func newFakeAppointmentStore(slots *fakeSlotStore) *fakeAppointmentStore {
	return &fakeAppointmentStore{
		slots: slots,
		appts: make(map[uint]*models.Appointment),
	}
}

func (f *fakeAppointmentStore) Book(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots.mu.Lock()
	defer f.slots.mu.Unlock()

	slot, ok := f.slots.slots[appt.SlotID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if slot.IsBooked {
		return repository.ErrSlotTaken
	}

	f.nextID++
	appt.ID = f.nextID
	cp := *appt
	f.appts[appt.ID] = &cp

	slot.IsBooked = true
	id := appt.ID
	slot.AppointmentID = &id
	return nil
}

func (f *fakeAppointmentStore) Cancel(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots.mu.Lock()
	defer f.slots.mu.Unlock()

	if slot, ok := f.slots.slots[appt.SlotID]; ok {
		slot.IsBooked = false
		slot.AppointmentID = nil
	}
	delete(f.appts, appt.ID)
	return nil
}

func (f *fakeAppointmentStore) FindByID(id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentStore) FindAll() ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentStore) FindByPatientID(patientID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) FindByDoctorID(doctorID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) FindByDepartmentID(departmentID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.DepartmentID == departmentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) Save(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.appts[appt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

type spyAudit struct {
	mu      sync.Mutex
	actions []string
}

func (s *spyAudit) Record(staffID *uint, action, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
}
