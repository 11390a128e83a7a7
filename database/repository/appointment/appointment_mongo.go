package appointmentRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"agendly/config"
	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("appointment repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var appointment models.Appointment
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *MongoAppointmentRepo) GetActiveByDate(date string) ([]models.Appointment, error) {
	filter := bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.StatusCancelled},
	}
	return r.find(filter)
}

func (r *MongoAppointmentRepo) ListByDate(date string) ([]models.Appointment, error) {
	return r.find(bson.M{"date": date})
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}
	defer cursor.Close(ctx)
	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

func (r *MongoAppointmentRepo) Create(appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, appointment)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s to status %s: %w", id, status, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

func (r *MongoAppointmentRepo) ExpireStalePending(cutoffDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := bson.M{
		"status": models.StatusPending,
		"date":   bson.M{"$lt": cutoffDate},
	}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusExpired,
		"updated_at": time.Now(),
	}}
	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale pending appointments: %w", err)
	}
	return result.ModifiedCount, nil
}
