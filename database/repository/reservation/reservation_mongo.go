package reservation

import (
	"context"
	"time"

	"avion/database"
	"avion/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const reservationCollection = "reservations"

// MongoReservationRepo implements Repository on MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

func NewMongoReservationRepo() *MongoReservationRepo {
	return &MongoReservationRepo{coll: database.Collection(reservationCollection)}
}

func (r *MongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, res)
	return err
}

func (r *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *MongoReservationRepo) SetPaymentVerified(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"hasCompletedPayment": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
