package main

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unotto/genchi/cli/cmd"
	"github.com/unotto/genchi/history"
	"github.com/unotto/genchi/rates"
)

func main() {
	logger := logrus.New()
	ctx := context.Background()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault("storage", "file")
	viper.SetDefault("history.file.path", "history.json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Fatalf("Error while reading in the config file: %v", err)
		}
	}

	resolver := &rates.Resolver{
		XHost:       rates.ExchangeRateHostClient{URL: viper.GetString("providers.exchangeratehost.url")},
		Frankfurter: rates.FrankfurterClient{URL: viper.GetString("providers.frankfurter.url")},
		OpenERAPI:   rates.OpenERAPIClient{URL: viper.GetString("providers.openerapi.url")},
		Logger:      logger,
	}

	config := &cmd.Config{
		Ctx:      ctx,
		Resolver: resolver,
		History:  history.NewStore(buildBlob(ctx, logger), logger),
		Logger:   logger,
	}

	if err := cmd.Execute(config); err != nil {
		logger.Fatal(err)
	}
}

func buildBlob(ctx context.Context, logger *logrus.Logger) history.Blob {
	provider, err := history.ConvertToProviderFromString(viper.GetString("storage"))
	if err != nil {
		logger.Fatalf("Error in storage configuration: %v", err)
	}

	var blob history.Blob

	switch provider {
	case history.File:
		blob, err = history.NewBlob(provider, history.FileConfig{
			Path: viper.GetString("history.file.path"),
		})
	case history.Redis:
		config := viper.GetStringMapString("history.redis")
		client := redis.NewClient(&redis.Options{
			Addr:     config["addr"],
			Password: config["password"],
		})

		blob, err = history.NewBlob(provider, history.RedisConfig{Client: client, Key: config["key"]})
	case history.MongoDB:
		config := viper.GetStringMapString("history.mongodb")

		client, connErr := mongo.Connect(ctx, options.Client().ApplyURI(config["uri"]))
		if connErr != nil {
			logger.Fatalf("Error while connecting to mongodb: %v", connErr)
		}

		collection := client.Database(config["database"]).Collection(config["collection"])

		blob, err = history.NewBlob(provider, history.MongoDBConfig{Collection: collection, Key: config["key"]})
	case history.MySQL:
		config := viper.GetStringMapString("history.mysql")

		db, connErr := sql.Open("mysql", config["dsn"])
		if connErr != nil {
			logger.Fatalf("Error while connecting to mysql: %v", connErr)
		}

		blob, err = history.NewBlob(provider, history.MySQLConfig{
			DB:      db,
			Table:   config["table"],
			Key:     config["key"],
			Migrate: viper.GetBool("migrate"),
		})
	}

	if err != nil {
		logger.Fatalf("Error while building the history backend: %v", err)
	}

	return blob
}
