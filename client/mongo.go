package client

import (
	"context"

	"cyrusbot/model"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoClient struct {
	*mongo.Client
	name string
}

func newMongodbClient(url string) (ArchiveClient, error) {
	opt := options.Client().ApplyURI(url).
		SetMinPoolSize(5).SetMaxPoolSize(100)
	db, err := mongo.Connect(context.Background(), opt)
	if err != nil {
		return nil, err
	}
	return &MongoClient{Client: db}, nil
}

func (m *MongoClient) set() {
	m.name = model.ViolationIndexName
}

func (m *MongoClient) AddViolation(v *model.Violation) error {
	m.set()
	coll := m.Client.Database(m.name).Collection(m.name)
	_, err := coll.InsertOne(context.Background(), v)
	if err != nil {
		return err
	}
	return nil
}

func (m *MongoClient) SearchViolations(userID int64) ([]*model.Violation, error) {
	m.set()
	coll := m.Client.Database(m.name).Collection(m.name)
	var violations []*model.Violation
	filter := bson.D{{Key: "user_id", Value: userID}}
	opts := options.Find().SetLimit(searchLimit)
	cursor, err := coll.Find(context.Background(), filter, opts)
	if err != nil {
		return violations, err
	}
	for cursor.Next(context.Background()) {
		v := model.ViolationPool.Get().(*model.Violation)
		model.ViolationPool.Put(v)
		if err := cursor.Decode(v); err != nil {
			logrus.Error(err)
			continue
		}
		violations = append(violations, v)
	}
	return violations, err
}
