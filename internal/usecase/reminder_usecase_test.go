package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reminderFixtureRepos() (*fakeAppointmentRepo, *fakeMedicalRecordRepo, *fakeVaccinationRepo, *fakeDewormingRepo) {
	nextDose := today().AddDate(0, 0, 10)
	followUp := today().AddDate(0, 0, 3)

	appointmentRepo := &fakeAppointmentRepo{
		FindBetweenDatesFunc: func(_ context.Context, from, _ time.Time) ([]entity.Appointment, error) {
			return []entity.Appointment{
				{ID: 1, Date: from, Time: "10:00:00", Reason: "Annual checkup", PetID: testPetID, ClientID: testClientID, Status: entity.AppointmentStatusConfirmed},
			}, nil
		},
	}
	recordRepo := &fakeMedicalRecordRepo{
		FindFollowUpsBetweenFunc: func(_ context.Context, _, _ time.Time, _ *int) ([]entity.MedicalRecord, error) {
			return []entity.MedicalRecord{
				{ID: 9, AppointmentID: 1, PetID: testPetID, ClientID: testClientID, NextConsultation: &followUp, Diagnosis: "otitis externa"},
				{ID: 10, AppointmentID: 2, PetID: testPetID, ClientID: testClientID},
			}, nil
		},
	}
	vaccinationRepo := &fakeVaccinationRepo{
		FindUpcomingFunc: func(_ context.Context, _, _ time.Time) ([]entity.Vaccination, error) {
			return []entity.Vaccination{
				{ID: 5, PetID: testPetID, VaccineName: "Rabies", NextDoseDate: &nextDose},
			}, nil
		},
	}
	dewormingRepo := &fakeDewormingRepo{
		FindUpcomingFunc: func(_ context.Context, _, _ time.Time) ([]entity.Deworming, error) {
			return []entity.Deworming{
				{ID: 8, PetID: testPetID, Product: "Drontal Plus", NextDoseDate: &nextDose},
			}, nil
		},
	}
	return appointmentRepo, recordRepo, vaccinationRepo, dewormingRepo
}

func TestGetReminders(t *testing.T) {
	appointmentRepo, recordRepo, vaccinationRepo, dewormingRepo := reminderFixtureRepos()
	uc := NewReminderUsecase(testLogger(), appointmentRepo, recordRepo, vaccinationRepo, dewormingRepo, &fakePublisher{})

	got, err := uc.GetReminders(clientContext())
	require.NoError(t, err)

	require.Len(t, got.Appointments, 1)
	assert.Equal(t, "Annual checkup", got.Appointments[0].Reason)

	require.Len(t, got.Vaccinations, 1)
	assert.Equal(t, "Rabies", got.Vaccinations[0].VaccineName)

	require.Len(t, got.Dewormings, 1)
	assert.Equal(t, "Drontal Plus", got.Dewormings[0].Product)

	// The record without a next consultation is skipped.
	require.Len(t, got.FollowUps, 1)
	assert.Equal(t, 9, got.FollowUps[0].RecordID)
	assert.Equal(t, "otitis externa", got.FollowUps[0].Diagnosis)
}

func TestSendRemindersCountsPublishesAndFailures(t *testing.T) {
	appointmentRepo, recordRepo, vaccinationRepo, dewormingRepo := reminderFixtureRepos()

	publisher := &fakePublisher{
		PublishFunc: func(_ context.Context, eventName string, _ interface{}) error {
			if eventName == messaging.EventReminderDeworming {
				return errors.New("broker down")
			}
			return nil
		},
	}
	uc := NewReminderUsecase(testLogger(), appointmentRepo, recordRepo, vaccinationRepo, dewormingRepo, publisher)

	got, err := uc.SendReminders(clientContext())
	require.NoError(t, err, "publish failures are counted, not propagated")
	assert.Equal(t, 3, got.Published)
	assert.Equal(t, 1, got.Failed)

	names := make([]string, len(publisher.Events))
	for i, event := range publisher.Events {
		names[i] = event.Name
	}
	assert.ElementsMatch(t, []string{
		messaging.EventReminderAppointment,
		messaging.EventReminderVaccination,
		messaging.EventReminderFollowUp,
	}, names)
}

func TestGetRemindersWindows(t *testing.T) {
	var appointmentFrom, appointmentTo time.Time
	appointmentRepo := &fakeAppointmentRepo{
		FindBetweenDatesFunc: func(_ context.Context, from, to time.Time) ([]entity.Appointment, error) {
			appointmentFrom, appointmentTo = from, to
			return nil, nil
		},
	}
	var doseFrom, doseTo time.Time
	vaccinationRepo := &fakeVaccinationRepo{
		FindUpcomingFunc: func(_ context.Context, from, to time.Time) ([]entity.Vaccination, error) {
			doseFrom, doseTo = from, to
			return nil, nil
		},
	}
	var followUpFrom, followUpTo time.Time
	followUpVet := new(int)
	recordRepo := &fakeMedicalRecordRepo{
		FindFollowUpsBetweenFunc: func(_ context.Context, from, to time.Time, veterinarianID *int) ([]entity.MedicalRecord, error) {
			followUpFrom, followUpTo = from, to
			followUpVet = veterinarianID
			return nil, nil
		},
	}
	uc := NewReminderUsecase(testLogger(), appointmentRepo, recordRepo, vaccinationRepo, &fakeDewormingRepo{}, &fakePublisher{})

	_, err := uc.GetReminders(clientContext())
	require.NoError(t, err)

	assert.True(t, appointmentFrom.Equal(today().AddDate(0, 0, 1)), "appointments are reminded one day ahead")
	assert.True(t, appointmentTo.Equal(appointmentFrom))
	assert.Equal(t, nextDoseWindowDays, int(doseTo.Sub(doseFrom).Hours()/24))
	assert.Equal(t, followUpWindowDays, int(followUpTo.Sub(followUpFrom).Hours()/24))
	assert.Nil(t, followUpVet, "the global scan is not scoped to one veterinarian")
}

func TestSendRemindersScanFailure(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{
		FindBetweenDatesFunc: func(_ context.Context, _, _ time.Time) ([]entity.Appointment, error) {
			return nil, errors.New("db down")
		},
	}
	uc := NewReminderUsecase(testLogger(), appointmentRepo, &fakeMedicalRecordRepo{}, &fakeVaccinationRepo{}, &fakeDewormingRepo{}, &fakePublisher{})

	_, err := uc.SendReminders(clientContext())
	assert.Error(t, err)
}
