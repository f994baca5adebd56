package appointment

import (
	"context"
	"fmt"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeRepo keeps rows in memory and enforces the live-slot uniqueness the
// real index provides.
type fakeRepo struct {
	mu sync.Mutex

	salons        map[string]models.Salon
	professionals map[string]models.Professional
	clients       map[string]models.Client
	appointments  map[string]models.Appointment

	createErrs  []error
	createCalls int
	nextID      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:        map[string]models.Salon{},
		professionals: map[string]models.Professional{},
		clients:       map[string]models.Client{},
		appointments:  map[string]models.Appointment{},
	}
}

func (r *fakeRepo) GetSalonByID(_ context.Context, id string) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.salons[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *fakeRepo) GetProfessional(_ context.Context, salonID, id string) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.professionals[id]
	if !ok || p.SalonID != salonID {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *fakeRepo) GetClient(_ context.Context, salonID, id string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok || c.SalonID != salonID {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *fakeRepo) ListAppointmentsForProfessional(_ context.Context, salonID, professionalID, day string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SalonID == salonID && ap.ProfessionalID == professionalID && ap.Day == day {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) slotTaken(ap models.Appointment) bool {
	if ap.Status == string(domain.StatusCancelled) {
		return false
	}
	for id, other := range r.appointments {
		if id == ap.ID || other.Status == string(domain.StatusCancelled) {
			continue
		}
		if other.ProfessionalID == ap.ProfessionalID && other.Day == ap.Day && other.SlotTime == ap.SlotTime {
			return true
		}
	}
	return false
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return err
		}
	}
	if ap.ID == "" {
		r.nextID++
		ap.ID = fmt.Sprintf("ap-%d", r.nextID)
	}
	if r.slotTaken(*ap) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, salonID, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok || ap.SalonID != salonID {
		return nil, domain.ErrNotFound
	}
	ap.Client = r.clients[ap.ClientID]
	ap.Professional = r.professionals[ap.ProfessionalID]
	return &ap, nil
}

func (r *fakeRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = ap.Status
	if r.slotTaken(stored) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	r.appointments[ap.ID] = stored
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, salonID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok || ap.SalonID != salonID {
		return domain.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, salonID, day string) ([]models.Appointment, error) {
	all, _ := r.ListAppointments(context.Background(), salonID)
	var out []models.Appointment
	for _, ap := range all {
		if ap.Day == day {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, salonID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SalonID == salonID {
			ap.Client = r.clients[ap.ClientID]
			ap.Professional = r.professionals[ap.ProfessionalID]
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// seeded returns a repo with salon "s1", client "c1" and a Mon-Fri 08:00-09:00
// professional "p1", plus professional "p2" owned by salon "s2".
func seeded() *fakeRepo {
	r := newFakeRepo()
	r.salons["s1"] = models.Salon{ID: "s1", Name: "Studio", Timezone: "America/Sao_Paulo"}
	r.salons["s2"] = models.Salon{ID: "s2", Name: "Other"}
	r.clients["c1"] = models.Client{ID: "c1", SalonID: "s1", Name: "Ana"}
	r.clients["c2"] = models.Client{ID: "c2", SalonID: "s2", Name: "Bia"}
	r.professionals["p1"] = models.Professional{
		ID:                      "p1",
		SalonID:                 "s1",
		Name:                    "Carla",
		AvailableFromWeekDay:    1,
		AvailableToWeekDay:      5,
		AvailableFromTime:       "08:00:00",
		AvailableToTime:         "09:00:00",
		AppointmentPriceInCents: 5000,
	}
	r.professionals["p2"] = models.Professional{
		ID:                   "p2",
		SalonID:              "s2",
		AvailableFromWeekDay: 0,
		AvailableToWeekDay:   6,
		AvailableFromTime:    "05:00:00",
		AvailableToTime:      "23:30:00",
	}
	return r
}
