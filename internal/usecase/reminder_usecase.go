package usecase

import (
	"context"

	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"
	"vet-appointments-service/internal/messaging"

	"github.com/sirupsen/logrus"
)

// Reminder windows. Appointments are reminded one day ahead, next doses a
// month ahead, follow-up consultations a week ahead.
const (
	followUpWindowDays = 7
	nextDoseWindowDays = 30
)

type ReminderUsecase interface {
	GetReminders(ctx context.Context) (*dto.RemindersResponse, error)

	// SendReminders publishes one event per due reminder. Each publish is
	// best-effort; failures are counted, not propagated.
	SendReminders(ctx context.Context) (*dto.SendRemindersResponse, error)
}

type reminderUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.MedicalRecordRepository
	vaccinationRepo repository.VaccinationRepository
	dewormingRepo   repository.DewormingRepository
	publisher       messaging.EventPublisher
}

func NewReminderUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
	vaccinationRepo repository.VaccinationRepository,
	dewormingRepo repository.DewormingRepository,
	publisher messaging.EventPublisher,
) ReminderUsecase {
	return &reminderUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
		vaccinationRepo: vaccinationRepo,
		dewormingRepo:   dewormingRepo,
		publisher:       publisher,
	}
}

func (u *reminderUsecase) GetReminders(ctx context.Context) (*dto.RemindersResponse, error) {
	now := today()
	tomorrow := now.AddDate(0, 0, 1)

	appointments, err := u.appointmentRepo.FindBetweenDates(ctx, tomorrow, tomorrow)
	if err != nil {
		u.log.Warnf("Failed to scan upcoming appointments: %+v", err)
		return nil, err
	}

	vaccinations, err := u.vaccinationRepo.FindUpcoming(ctx, now, now.AddDate(0, 0, nextDoseWindowDays))
	if err != nil {
		u.log.Warnf("Failed to scan upcoming vaccinations: %+v", err)
		return nil, err
	}

	dewormings, err := u.dewormingRepo.FindUpcoming(ctx, now, now.AddDate(0, 0, nextDoseWindowDays))
	if err != nil {
		u.log.Warnf("Failed to scan upcoming dewormings: %+v", err)
		return nil, err
	}

	followUps, err := u.recordRepo.FindFollowUpsBetween(ctx, now, now.AddDate(0, 0, followUpWindowDays), nil)
	if err != nil {
		u.log.Warnf("Failed to scan follow-ups: %+v", err)
		return nil, err
	}

	return &dto.RemindersResponse{
		Appointments: appointmentReminders(appointments),
		Vaccinations: vaccinationReminders(vaccinations),
		Dewormings:   dewormingReminders(dewormings),
		FollowUps:    followUpReminders(followUps),
	}, nil
}

func (u *reminderUsecase) SendReminders(ctx context.Context) (*dto.SendRemindersResponse, error) {
	reminders, err := u.GetReminders(ctx)
	if err != nil {
		return nil, err
	}

	published, failed := 0, 0
	publish := func(eventName string, payload interface{}) {
		if err := u.publisher.Publish(ctx, eventName, payload); err != nil {
			u.log.Warnf("Failed to publish %s (non-fatal): %+v", eventName, err)
			failed++
			return
		}
		published++
	}

	for _, reminder := range reminders.Appointments {
		publish(messaging.EventReminderAppointment, reminder)
	}
	for _, reminder := range reminders.Vaccinations {
		publish(messaging.EventReminderVaccination, reminder)
	}
	for _, reminder := range reminders.Dewormings {
		publish(messaging.EventReminderDeworming, reminder)
	}
	for _, reminder := range reminders.FollowUps {
		publish(messaging.EventReminderFollowUp, reminder)
	}

	u.log.Infof("Reminder scan done: published=%d, failed=%d", published, failed)
	return &dto.SendRemindersResponse{Published: published, Failed: failed}, nil
}

func appointmentReminders(appointments []entity.Appointment) []dto.AppointmentReminder {
	reminders := make([]dto.AppointmentReminder, len(appointments))
	for i, appointment := range appointments {
		reminders[i] = dto.AppointmentReminder{
			AppointmentID: appointment.ID,
			Date:          appointment.Date.Format(dateLayout),
			Time:          appointment.Time,
			Reason:        appointment.Reason,
			PetID:         appointment.PetID,
			ClientID:      appointment.ClientID,
			Status:        string(appointment.Status),
		}
	}
	return reminders
}

func vaccinationReminders(vaccinations []entity.Vaccination) []dto.VaccinationReminder {
	reminders := make([]dto.VaccinationReminder, 0, len(vaccinations))
	for _, vaccination := range vaccinations {
		if vaccination.NextDoseDate == nil {
			continue
		}
		reminders = append(reminders, dto.VaccinationReminder{
			VaccinationID: vaccination.ID,
			PetID:         vaccination.PetID,
			VaccineName:   vaccination.VaccineName,
			NextDoseDate:  vaccination.NextDoseDate.Format(dateLayout),
		})
	}
	return reminders
}

func dewormingReminders(dewormings []entity.Deworming) []dto.DewormingReminder {
	reminders := make([]dto.DewormingReminder, 0, len(dewormings))
	for _, deworming := range dewormings {
		if deworming.NextDoseDate == nil {
			continue
		}
		reminders = append(reminders, dto.DewormingReminder{
			DewormingID:  deworming.ID,
			PetID:        deworming.PetID,
			Product:      deworming.Product,
			NextDoseDate: deworming.NextDoseDate.Format(dateLayout),
		})
	}
	return reminders
}

func followUpReminders(records []entity.MedicalRecord) []dto.FollowUpReminder {
	reminders := make([]dto.FollowUpReminder, 0, len(records))
	for _, record := range records {
		if record.NextConsultation == nil {
			continue
		}
		reminders = append(reminders, dto.FollowUpReminder{
			RecordID:         record.ID,
			AppointmentID:    record.AppointmentID,
			PetID:            record.PetID,
			ClientID:         record.ClientID,
			NextConsultation: record.NextConsultation.Format(dateLayout),
			Diagnosis:        record.Diagnosis,
		})
	}
	return reminders
}
