package repository

import (
	"context"
	"errors"

	"vet-appointments-service/internal/domain/entity"
	domainRepo "vet-appointments-service/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) CreateWithOrder(ctx context.Context, prescription *entity.Prescription, medications []entity.Medication, order *entity.PharmacyOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prescription).Error; err != nil {
			return err
		}

		for i := range medications {
			medications[i].PrescriptionID = prescription.ID
		}
		if err := tx.Create(&medications).Error; err != nil {
			return err
		}

		order.PrescriptionID = prescription.ID
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		prescription.Medications = medications
		prescription.PharmacyOrder = order
		return nil
	})
}

func (r *prescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Medications").
		Preload("PharmacyOrder").
		Where("appointment_id = ? AND is_active = ?", appointmentID, true).
		First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByClientID(ctx context.Context, clientID int) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := r.db.WithContext(ctx).
		Preload("Medications").
		Preload("Appointment").
		Where("client_id = ? AND is_active = ?", clientID, true).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

type pharmacyOrderRepository struct {
	db *gorm.DB
}

func NewPharmacyOrderRepository(db *gorm.DB) domainRepo.PharmacyOrderRepository {
	return &pharmacyOrderRepository{db: db}
}

func (r *pharmacyOrderRepository) FindByID(ctx context.Context, id int) (*entity.PharmacyOrder, error) {
	var order entity.PharmacyOrder
	err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *pharmacyOrderRepository) FindAll(ctx context.Context, status *entity.PharmacyOrderStatus) ([]entity.PharmacyOrder, error) {
	query := r.db.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var orders []entity.PharmacyOrder
	err := query.Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *pharmacyOrderRepository) FindByClientID(ctx context.Context, clientID int) ([]entity.PharmacyOrder, error) {
	var orders []entity.PharmacyOrder
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *pharmacyOrderRepository) Update(ctx context.Context, order *entity.PharmacyOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}
