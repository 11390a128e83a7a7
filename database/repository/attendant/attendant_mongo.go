package attendantRepo

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

// MongoAttendantRepo implements AttendantRepository using MongoDB.
type MongoAttendantRepo struct {
	coll *mongo.Collection
}

// NewMongoAttendantRepo creates a new instance of AttendantRepository using MongoDB.
func NewMongoAttendantRepo() AttendantRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("attendants")
	repo := &MongoAttendantRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("attendant repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func (r *MongoAttendantRepo) GetByID(id string) (*models.Attendant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var attendant models.Attendant
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&attendant); err != nil {
		return nil, fmt.Errorf("failed to fetch attendant with id %s: %w", id, err)
	}
	return &attendant, nil
}

func (r *MongoAttendantRepo) GetAll() ([]models.Attendant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve attendants: %w", err)
	}
	defer cursor.Close(ctx)
	var attendants []models.Attendant
	for cursor.Next(ctx) {
		var a models.Attendant
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode attendant: %w", err)
		}
		attendants = append(attendants, a)
	}
	return attendants, nil
}

func (r *MongoAttendantRepo) GetBySectors(sectors []string) ([]models.Attendant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"sector": bson.M{"$in": sectors},
		"active": true,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendants for sectors %v: %w", sectors, err)
	}
	defer cursor.Close(ctx)
	var attendants []models.Attendant
	for cursor.Next(ctx) {
		var a models.Attendant
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode attendant: %w", err)
		}
		attendants = append(attendants, a)
	}
	return attendants, nil
}

func (r *MongoAttendantRepo) Create(attendant *models.Attendant) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, attendant)
	if err != nil {
		return fmt.Errorf("failed to create attendant: %w", err)
	}
	return nil
}

func (r *MongoAttendantRepo) Update(attendant *models.Attendant) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": attendant.ID}
	update := bson.M{"$set": attendant}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update attendant with id %s: %w", attendant.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("attendant with id %s not found", attendant.ID)
	}
	return nil
}

func (r *MongoAttendantRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete attendant with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("attendant with id %s not found", id)
	}
	return nil
}
