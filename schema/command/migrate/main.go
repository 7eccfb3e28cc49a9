package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/civicwatch/complaint-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("complaint")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS complaint`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO complaint").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Business{},
	).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
