package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var Database *mongo.Database

var (
	ChatMembers *mongo.Collection
)

func Init(uri string, db string) error {
	var err error

	// Connect to MongoDB
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	Client, err = mongo.Connect(context.TODO(), opts)
	if err != nil {
		return err
	}

	// Ping MongoDB
	var result bson.M
	if err := Client.Database("admin").RunCommand(context.TODO(), bson.D{{Key: "ping", Value: 1}}).Decode(&result); err != nil {
		return err
	}

	// Set database
	Database = Client.Database(db)

	// Set collections
	ChatMembers = Database.Collection("chat_members")

	return nil
}
