package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/repository"
	"github.com/SanjogGautam/Smart-Swastha/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Minimal in-memory stores backing the handler tests.

type memPatients map[uint]*models.Patient

func (m memPatients) FindByID(id uint) (*models.Patient, error) {
	if p, ok := m[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memDepartments map[uint]*models.Department

func (m memDepartments) FindByID(id uint) (*models.Department, error) {
	if d, ok := m[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memDoctors map[uint]*models.Doctor

func (m memDoctors) FindByID(id uint) (*models.Doctor, error) {
	if d, ok := m[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memSlots struct {
	mu    sync.Mutex
	slots map[uint]*models.DoctorAvailability
}

func (m *memSlots) Create(slot *models.DoctorAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot.ID = uint(len(m.slots) + 1)
	m.slots[slot.ID] = slot
	return nil
}

func (m *memSlots) FindByID(id uint) (*models.DoctorAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.slots[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memSlots) FindFreeByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DoctorAvailability
	for _, s := range m.slots {
		if s.DoctorID == doctorID && s.Date.Format("2006-01-02") == date && !s.IsBooked {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memSlots) FindAllByDoctorAndDate(doctorID uint, date string) ([]models.DoctorAvailability, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.DoctorAvailability
	for _, s := range m.slots {
		if s.DoctorID == doctorID && s.Date.Format("2006-01-02") == date {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memSlots) Save(slot *models.DoctorAvailability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *slot
	m.slots[slot.ID] = &cp
	return nil
}

func (m *memSlots) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if s.IsBooked {
		return repository.ErrSlotInUse
	}
	delete(m.slots, id)
	return nil
}

type memAppointments struct {
	mu     sync.Mutex
	slots  *memSlots
	appts  map[uint]*models.Appointment
	nextID uint
}

func (m *memAppointments) Book(appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots.mu.Lock()
	defer m.slots.mu.Unlock()

	slot, ok := m.slots.slots[appt.SlotID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if slot.IsBooked {
		return repository.ErrSlotTaken
	}

	m.nextID++
	appt.ID = m.nextID
	cp := *appt
	m.appts[appt.ID] = &cp

	slot.IsBooked = true
	id := appt.ID
	slot.AppointmentID = &id
	return nil
}

func (m *memAppointments) Cancel(appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots.mu.Lock()
	defer m.slots.mu.Unlock()

	if slot, ok := m.slots.slots[appt.SlotID]; ok {
		slot.IsBooked = false
		slot.AppointmentID = nil
	}
	delete(m.appts, appt.ID)
	return nil
}

func (m *memAppointments) FindByID(id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.appts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memAppointments) FindAll() ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAppointments) FindByPatientID(patientID uint) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAppointments) FindByDoctorID(doctorID uint) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAppointments) FindByDepartmentID(departmentID uint) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DepartmentID == departmentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAppointments) Save(appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *appt
	m.appts[appt.ID] = &cp
	return nil
}

type nopAudit struct{}

func (nopAudit) Record(staffID *uint, action, details string) {}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	patients := memPatients{1: {ID: 1, HospitalID: 1, Name: "Sita Sharma"}}
	departments := memDepartments{10: {ID: 10, HospitalID: 1, Name: "Cardiology"}}
	doctors := memDoctors{100: {ID: 100, HospitalID: 1, DepartmentID: 10, Name: "Dr. Thapa"}}

	slots := &memSlots{slots: make(map[uint]*models.DoctorAvailability)}
	_ = slots.Create(&models.DoctorAvailability{
		DoctorID:  100,
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		StartTime: "09:00",
		EndTime:   "09:30",
	})

	appts := &memAppointments{slots: slots, appts: make(map[uint]*models.Appointment)}
	svc := service.NewAppointmentService(appts, slots, patients, departments, doctors, nopAudit{})
	h := NewAppointmentHandler(svc)

	r := gin.New()
	r.POST("/appointments", h.BookAppointment)
	r.GET("/appointments", h.GetAllAppointments)
	r.GET("/appointments/:id", h.GetAppointment)
	r.PUT("/appointments/:id", h.UpdateAppointment)
	r.DELETE("/appointments/:id", h.CancelAppointment)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookBody() gin.H {
	return gin.H{
		"patient_id":        1,
		"department_id":     10,
		"doctor_id":         100,
		"available_slot_id": 1,
		"reason":            "chest pain",
	}
}

func TestBookEndpointStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	// First booking wins with 201
	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody())
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same slot again conflicts
	w = doJSON(t, r, http.MethodPost, "/appointments", bookBody())
	assert.Equal(t, http.StatusConflict, w.Code)

	// Absent patient is a bad request, not a 404
	body := bookBody()
	body["patient_id"] = 99
	w = doJSON(t, r, http.MethodPost, "/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Absent doctor is a bad request as well
	body = bookBody()
	body["doctor_id"] = 999
	w = doJSON(t, r, http.MethodPost, "/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAppointmentStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	// Empty list yields 204
	w := doJSON(t, r, http.MethodGet, "/appointments", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Absent single get yields 404
	w = doJSON(t, r, http.MethodGet, "/appointments/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/appointments", bookBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/appointments", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/appointments/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAppointmentStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody())
	require.Equal(t, http.StatusCreated, w.Code)

	// Absent appointment yields 404
	w = doJSON(t, r, http.MethodPut, "/appointments/9", gin.H{"reason": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Slot change is rejected with 400
	w = doJSON(t, r, http.MethodPut, "/appointments/1", gin.H{"available_slot_id": 2, "reason": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Reassignment to an absent patient yields 400
	w = doJSON(t, r, http.MethodPut, "/appointments/1", gin.H{"patient_id": 55, "reason": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/appointments/1", gin.H{"reason": "follow-up"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelAppointmentStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", bookBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/appointments/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Cancelling again reports not found
	w = doJSON(t, r, http.MethodDelete, "/appointments/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The slot is bookable again after the cancel
	w = doJSON(t, r, http.MethodPost, "/appointments", bookBody())
	assert.Equal(t, http.StatusCreated, w.Code)
}
