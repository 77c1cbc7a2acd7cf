package usecase

import (
	"context"
	"errors"
	"time"

	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"
	"vet-appointments-service/internal/gateway"

	"github.com/sirupsen/logrus"
)

// Fakes for the repository and gateway contracts the usecases depend on.
// Each method delegates to an optional func field; unset methods return
// zero values so tests only wire what they exercise.

var errNotWired = errors.New("fake method not wired")

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// authedContext builds a request context the way the auth middleware does.
func authedContext(id int, email, role string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, id)
	ctx = context.WithValue(ctx, middleware.UserEmailKey, email)
	ctx = context.WithValue(ctx, middleware.UserRoleKey, role)
	ctx = context.WithValue(ctx, middleware.BearerTokenKey, "test-token")
	return ctx
}

// --- AppointmentRepository fake ---

var _ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)

type fakeAppointmentRepo struct {
	CreateFunc                    func(ctx context.Context, appointment *entity.Appointment) error
	FindByIDFunc                  func(ctx context.Context, id int) (*entity.Appointment, error)
	UpdateFunc                    func(ctx context.Context, appointment *entity.Appointment) error
	FindSlotFunc                  func(ctx context.Context, date time.Time, timeOfDay string, veterinarianID int) (*entity.Appointment, error)
	FindByVeterinarianAndDateFunc func(ctx context.Context, veterinarianID int, date time.Time) ([]entity.Appointment, error)
	FindByClientFunc              func(ctx context.Context, clientID int, status *entity.AppointmentStatus, includeInactive bool) ([]entity.Appointment, error)
	FindBetweenDatesFunc          func(ctx context.Context, from, to time.Time) ([]entity.Appointment, error)
	CountForVeterinarianFunc      func(ctx context.Context, veterinarianID int, status *entity.AppointmentStatus, from, to *time.Time) (int64, error)

	CreateCalls int
	UpdateCalls int
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	f.CreateCalls++
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, appointment)
	}
	return nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	f.UpdateCalls++
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, appointment)
	}
	return nil
}

func (f *fakeAppointmentRepo) FindSlot(ctx context.Context, date time.Time, timeOfDay string, veterinarianID int) (*entity.Appointment, error) {
	if f.FindSlotFunc != nil {
		return f.FindSlotFunc(ctx, date, timeOfDay, veterinarianID)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByVeterinarianAndDate(ctx context.Context, veterinarianID int, date time.Time) ([]entity.Appointment, error) {
	if f.FindByVeterinarianAndDateFunc != nil {
		return f.FindByVeterinarianAndDateFunc(ctx, veterinarianID, date)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByClient(ctx context.Context, clientID int, status *entity.AppointmentStatus, includeInactive bool) ([]entity.Appointment, error) {
	if f.FindByClientFunc != nil {
		return f.FindByClientFunc(ctx, clientID, status, includeInactive)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindBetweenDates(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	if f.FindBetweenDatesFunc != nil {
		return f.FindBetweenDatesFunc(ctx, from, to)
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) CountForVeterinarian(ctx context.Context, veterinarianID int, status *entity.AppointmentStatus, from, to *time.Time) (int64, error) {
	if f.CountForVeterinarianFunc != nil {
		return f.CountForVeterinarianFunc(ctx, veterinarianID, status, from, to)
	}
	return 0, nil
}

// --- MedicalRecordRepository fake ---

var _ repository.MedicalRecordRepository = (*fakeMedicalRecordRepo)(nil)

type fakeMedicalRecordRepo struct {
	CreateFunc               func(ctx context.Context, record *entity.MedicalRecord, vitals *entity.VitalSigns) error
	FindByAppointmentIDFunc  func(ctx context.Context, appointmentID int) (*entity.MedicalRecord, error)
	FindByPetIDFunc          func(ctx context.Context, petID int) ([]entity.MedicalRecord, error)
	FindByIDFunc             func(ctx context.Context, id int) (*entity.MedicalRecord, error)
	UpdateFunc               func(ctx context.Context, record *entity.MedicalRecord) error
	UpsertVitalSignsFunc     func(ctx context.Context, vitals *entity.VitalSigns) error
	FindFollowUpsBetweenFunc func(ctx context.Context, from, to time.Time, veterinarianID *int) ([]entity.MedicalRecord, error)

	CreateCalls int
}

func (f *fakeMedicalRecordRepo) Create(ctx context.Context, record *entity.MedicalRecord, vitals *entity.VitalSigns) error {
	f.CreateCalls++
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, record, vitals)
	}
	return nil
}

func (f *fakeMedicalRecordRepo) FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.MedicalRecord, error) {
	if f.FindByAppointmentIDFunc != nil {
		return f.FindByAppointmentIDFunc(ctx, appointmentID)
	}
	return nil, nil
}

func (f *fakeMedicalRecordRepo) FindByPetID(ctx context.Context, petID int) ([]entity.MedicalRecord, error) {
	if f.FindByPetIDFunc != nil {
		return f.FindByPetIDFunc(ctx, petID)
	}
	return nil, nil
}

func (f *fakeMedicalRecordRepo) FindByID(ctx context.Context, id int) (*entity.MedicalRecord, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeMedicalRecordRepo) Update(ctx context.Context, record *entity.MedicalRecord) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, record)
	}
	return nil
}

func (f *fakeMedicalRecordRepo) UpsertVitalSigns(ctx context.Context, vitals *entity.VitalSigns) error {
	if f.UpsertVitalSignsFunc != nil {
		return f.UpsertVitalSignsFunc(ctx, vitals)
	}
	return nil
}

func (f *fakeMedicalRecordRepo) FindFollowUpsBetween(ctx context.Context, from, to time.Time, veterinarianID *int) ([]entity.MedicalRecord, error) {
	if f.FindFollowUpsBetweenFunc != nil {
		return f.FindFollowUpsBetweenFunc(ctx, from, to, veterinarianID)
	}
	return nil, nil
}

// --- MedicalAttachmentRepository fake ---

var _ repository.MedicalAttachmentRepository = (*fakeAttachmentRepo)(nil)

type fakeAttachmentRepo struct {
	CreateBatchFunc    func(ctx context.Context, attachments []entity.MedicalAttachment) error
	FindByIDFunc       func(ctx context.Context, id int) (*entity.MedicalAttachment, error)
	FindByRecordIDFunc func(ctx context.Context, recordID int) ([]entity.MedicalAttachment, error)
	UpdateFunc         func(ctx context.Context, attachment *entity.MedicalAttachment) error

	CreateBatchCalls int
}

func (f *fakeAttachmentRepo) CreateBatch(ctx context.Context, attachments []entity.MedicalAttachment) error {
	f.CreateBatchCalls++
	if f.CreateBatchFunc != nil {
		return f.CreateBatchFunc(ctx, attachments)
	}
	return nil
}

func (f *fakeAttachmentRepo) FindByID(ctx context.Context, id int) (*entity.MedicalAttachment, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeAttachmentRepo) FindByRecordID(ctx context.Context, recordID int) ([]entity.MedicalAttachment, error) {
	if f.FindByRecordIDFunc != nil {
		return f.FindByRecordIDFunc(ctx, recordID)
	}
	return nil, nil
}

func (f *fakeAttachmentRepo) Update(ctx context.Context, attachment *entity.MedicalAttachment) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, attachment)
	}
	return nil
}

// --- VaccinationRepository fake ---

var _ repository.VaccinationRepository = (*fakeVaccinationRepo)(nil)

type fakeVaccinationRepo struct {
	CreateFunc       func(ctx context.Context, vaccination *entity.Vaccination) error
	FindByIDFunc     func(ctx context.Context, id int) (*entity.Vaccination, error)
	FindByPetIDFunc  func(ctx context.Context, petID int) ([]entity.Vaccination, error)
	UpdateFunc       func(ctx context.Context, vaccination *entity.Vaccination) error
	FindUpcomingFunc func(ctx context.Context, from, to time.Time) ([]entity.Vaccination, error)
}

func (f *fakeVaccinationRepo) Create(ctx context.Context, vaccination *entity.Vaccination) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, vaccination)
	}
	return nil
}

func (f *fakeVaccinationRepo) FindByID(ctx context.Context, id int) (*entity.Vaccination, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeVaccinationRepo) FindByPetID(ctx context.Context, petID int) ([]entity.Vaccination, error) {
	if f.FindByPetIDFunc != nil {
		return f.FindByPetIDFunc(ctx, petID)
	}
	return nil, nil
}

func (f *fakeVaccinationRepo) Update(ctx context.Context, vaccination *entity.Vaccination) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, vaccination)
	}
	return nil
}

func (f *fakeVaccinationRepo) FindUpcoming(ctx context.Context, from, to time.Time) ([]entity.Vaccination, error) {
	if f.FindUpcomingFunc != nil {
		return f.FindUpcomingFunc(ctx, from, to)
	}
	return nil, nil
}

// --- DewormingRepository fake ---

var _ repository.DewormingRepository = (*fakeDewormingRepo)(nil)

type fakeDewormingRepo struct {
	CreateFunc       func(ctx context.Context, deworming *entity.Deworming) error
	FindByIDFunc     func(ctx context.Context, id int) (*entity.Deworming, error)
	FindByPetIDFunc  func(ctx context.Context, petID int) ([]entity.Deworming, error)
	UpdateFunc       func(ctx context.Context, deworming *entity.Deworming) error
	FindUpcomingFunc func(ctx context.Context, from, to time.Time) ([]entity.Deworming, error)
}

func (f *fakeDewormingRepo) Create(ctx context.Context, deworming *entity.Deworming) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, deworming)
	}
	return nil
}

func (f *fakeDewormingRepo) FindByID(ctx context.Context, id int) (*entity.Deworming, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeDewormingRepo) FindByPetID(ctx context.Context, petID int) ([]entity.Deworming, error) {
	if f.FindByPetIDFunc != nil {
		return f.FindByPetIDFunc(ctx, petID)
	}
	return nil, nil
}

func (f *fakeDewormingRepo) Update(ctx context.Context, deworming *entity.Deworming) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, deworming)
	}
	return nil
}

func (f *fakeDewormingRepo) FindUpcoming(ctx context.Context, from, to time.Time) ([]entity.Deworming, error) {
	if f.FindUpcomingFunc != nil {
		return f.FindUpcomingFunc(ctx, from, to)
	}
	return nil, nil
}

// --- PrescriptionRepository fake ---

var _ repository.PrescriptionRepository = (*fakePrescriptionRepo)(nil)

type fakePrescriptionRepo struct {
	CreateWithOrderFunc     func(ctx context.Context, prescription *entity.Prescription, medications []entity.Medication, order *entity.PharmacyOrder) error
	FindByAppointmentIDFunc func(ctx context.Context, appointmentID int) (*entity.Prescription, error)
	FindByClientIDFunc      func(ctx context.Context, clientID int) ([]entity.Prescription, error)

	CreateWithOrderCalls int
}

func (f *fakePrescriptionRepo) CreateWithOrder(ctx context.Context, prescription *entity.Prescription, medications []entity.Medication, order *entity.PharmacyOrder) error {
	f.CreateWithOrderCalls++
	if f.CreateWithOrderFunc != nil {
		return f.CreateWithOrderFunc(ctx, prescription, medications, order)
	}
	return nil
}

func (f *fakePrescriptionRepo) FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.Prescription, error) {
	if f.FindByAppointmentIDFunc != nil {
		return f.FindByAppointmentIDFunc(ctx, appointmentID)
	}
	return nil, nil
}

func (f *fakePrescriptionRepo) FindByClientID(ctx context.Context, clientID int) ([]entity.Prescription, error) {
	if f.FindByClientIDFunc != nil {
		return f.FindByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

// --- PharmacyOrderRepository fake ---

var _ repository.PharmacyOrderRepository = (*fakePharmacyOrderRepo)(nil)

type fakePharmacyOrderRepo struct {
	FindByIDFunc       func(ctx context.Context, id int) (*entity.PharmacyOrder, error)
	FindAllFunc        func(ctx context.Context, status *entity.PharmacyOrderStatus) ([]entity.PharmacyOrder, error)
	FindByClientIDFunc func(ctx context.Context, clientID int) ([]entity.PharmacyOrder, error)
	UpdateFunc         func(ctx context.Context, order *entity.PharmacyOrder) error

	UpdateCalls int
}

func (f *fakePharmacyOrderRepo) FindByID(ctx context.Context, id int) (*entity.PharmacyOrder, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakePharmacyOrderRepo) FindAll(ctx context.Context, status *entity.PharmacyOrderStatus) ([]entity.PharmacyOrder, error) {
	if f.FindAllFunc != nil {
		return f.FindAllFunc(ctx, status)
	}
	return nil, nil
}

func (f *fakePharmacyOrderRepo) FindByClientID(ctx context.Context, clientID int) ([]entity.PharmacyOrder, error) {
	if f.FindByClientIDFunc != nil {
		return f.FindByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (f *fakePharmacyOrderRepo) Update(ctx context.Context, order *entity.PharmacyOrder) error {
	f.UpdateCalls++
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, order)
	}
	return nil
}

// --- Gateway fakes ---

var _ gateway.AuthService = (*fakeAuthService)(nil)

type fakeAuthService struct {
	GetUserByIDFunc func(ctx context.Context, userID int, bearer string) (*gateway.User, error)
}

func (f *fakeAuthService) GetUserByID(ctx context.Context, userID int, bearer string) (*gateway.User, error) {
	if f.GetUserByIDFunc != nil {
		return f.GetUserByIDFunc(ctx, userID, bearer)
	}
	return nil, errNotWired
}

func (f *fakeAuthService) VerifyVeterinarianRole(ctx context.Context, userID int, bearer string) (bool, error) {
	user, err := f.GetUserByID(ctx, userID, bearer)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Role == gateway.RoleVeterinarian, nil
}

var _ gateway.PatientsService = (*fakePatientsService)(nil)

type fakePatientsService struct {
	GetPetByIDFunc func(ctx context.Context, petID int, bearer string) (*gateway.Pet, error)
}

func (f *fakePatientsService) GetPetByID(ctx context.Context, petID int, bearer string) (*gateway.Pet, error) {
	if f.GetPetByIDFunc != nil {
		return f.GetPetByIDFunc(ctx, petID, bearer)
	}
	return nil, errNotWired
}

func (f *fakePatientsService) VerifyPetOwnership(ctx context.Context, petID int, ownerEmail, bearer string) (bool, error) {
	pet, err := f.GetPetByID(ctx, petID, bearer)
	if err != nil {
		return false, err
	}
	if pet == nil {
		return false, nil
	}
	return pet.OwnerEmail == ownerEmail, nil
}

// --- EventPublisher fake ---

type publishedEvent struct {
	Name    string
	Payload interface{}
}

type fakePublisher struct {
	PublishFunc func(ctx context.Context, eventName string, payload interface{}) error
	Events      []publishedEvent
}

func (f *fakePublisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	if f.PublishFunc != nil {
		if err := f.PublishFunc(ctx, eventName, payload); err != nil {
			return err
		}
	}
	f.Events = append(f.Events, publishedEvent{Name: eventName, Payload: payload})
	return nil
}

func (f *fakePublisher) Close() error {
	return nil
}
