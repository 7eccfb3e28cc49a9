package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civicwatch/complaint-api/external/geoinfo"
	"github.com/civicwatch/complaint-api/store"
)

// Manager is a struct for the complaint background manager
type Manager struct {
	store store.ComplaintCore

	geoClient geoinfo.GeoInfo

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server, geoClient geoinfo.GeoInfo) *Manager {
	complaintCore := store.NewComplaintStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	))

	return &Manager{
		store:      complaintCore,
		geoClient:  geoClient,
		taskServer: taskServer,
	}
}

func (m *Manager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *Manager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("complaint-worker", 5)
	return m.worker.Launch()
}
