package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/civicwatch/complaint-api/schema"
)

var (
	tsNoon      = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC).Unix()
	tsHourAgo   = tsNoon - 3600
	tsYesterday = tsNoon - 30*3600
	tsThreeDays = tsNoon - 3*24*3600
	tsEightDays = tsNoon - 8*24*3600
	dayWindow   = int64(24 * 3600)
	weekWindow  = int64(7 * 24 * 3600)
)

var (
	goldenSpoon = schema.EstablishmentKey{
		Name:    "Golden Spoon Diner",
		Address: "170 William St, New York",
	}
	nightMarket = schema.EstablishmentKey{
		Name:    "Night Market Grill",
		Address: "88 Canal St, New York",
	}
)

func fixtureReport(id, email string, key schema.EstablishmentKey, ts int64) schema.Report {
	return schema.Report{
		ID:                id,
		BusinessName:      key.Name,
		BusinessAddress:   key.Address,
		Description:       "fixture",
		ReporterEmail:     email,
		Tags:              []schema.Tag{},
		AuthenticityLevel: schema.DefaultAuthenticityLevel,
		AuthenticityTier:  schema.TierMedium,
		Status:            schema.ReportStatusSubmitted,
		Timestamp:         ts,
	}
}

type ReportTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewReportTestSuite(connURI, dbName string) *ReportTestSuite {
	return &ReportTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ReportTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()

	fixtures := []interface{}{
		fixtureReport("r-1", "alice@example.com", goldenSpoon, tsHourAgo),
		fixtureReport("r-2", "alice@example.com", goldenSpoon, tsHourAgo-600),
		fixtureReport("r-3", "alice@example.com", nightMarket, tsHourAgo-1200),
		fixtureReport("r-4", "alice@example.com", nightMarket, tsYesterday),
		fixtureReport("r-5", "alice@example.com", goldenSpoon, tsEightDays),
		fixtureReport("r-6", "bob@example.com", goldenSpoon, tsThreeDays),
		fixtureReport("r-7", "carol@example.com", goldenSpoon, tsThreeDays),
	}

	ctx := context.Background()
	if _, err := s.testDatabase.Collection(schema.ReportCollection).InsertMany(ctx, fixtures); err != nil {
		s.T().Fatal(err)
	}
}

func (s *ReportTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ReportTestSuite) TestCountReporterReports() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// r-1, r-2, r-3 fall inside the trailing 24 hours; r-4 is 30h old
	count, err := store.CountReporterReports("alice@example.com", tsNoon-dayWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), count)

	// email comparison is normalized
	count, err = store.CountReporterReports(" Alice@Example.COM ", tsNoon-dayWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), count)

	count, err = store.CountReporterReports("dave@example.com", tsNoon-dayWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count)
}

func (s *ReportTestSuite) TestCountReporterReportsUpperBoundExclusive() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// a document at exactly `until` is not counted
	count, err := store.CountReporterReports("alice@example.com", tsHourAgo, tsHourAgo)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), count)

	count, err = store.CountReporterReports("alice@example.com", tsHourAgo, tsHourAgo+1)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), count)
}

func (s *ReportTestSuite) TestDistinctEstablishments() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// r-5 is 8 days old and drops out of the trailing week
	keys, err := store.DistinctEstablishments("alice@example.com", tsNoon-weekWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), keys, 2)
	assert.Contains(s.T(), keys, goldenSpoon)
	assert.Contains(s.T(), keys, nightMarket)

	keys, err = store.DistinctEstablishments("bob@example.com", tsNoon-weekWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []schema.EstablishmentKey{goldenSpoon}, keys)

	keys, err = store.DistinctEstablishments("dave@example.com", tsNoon-weekWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), keys)
}

func (s *ReportTestSuite) TestCountEstablishmentReports() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// r-1, r-2 from alice plus r-6, r-7 from other reporters; r-5 too old
	count, err := store.CountEstablishmentReports(goldenSpoon, tsNoon-weekWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(4), count)

	count, err = store.CountEstablishmentReports(nightMarket, tsNoon-weekWindow, tsNoon)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)
}

func (s *ReportTestSuite) TestInsertAndGetReport() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	report := fixtureReport("r-insert", "erin@example.com", nightMarket, tsNoon)
	report.AddTag(schema.TagLocationVerified)

	assert.NoError(s.T(), store.InsertReport(&report))

	saved, err := store.GetReport("r-insert")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), report.ReporterEmail, saved.ReporterEmail)
	assert.Equal(s.T(), []schema.Tag{schema.TagLocationVerified}, saved.Tags)
	assert.Equal(s.T(), schema.TierMedium, saved.AuthenticityTier)

	_, err = store.GetReport("missing")
	assert.Equal(s.T(), ErrReportNotFound, err)
}

func TestReportTestSuite(t *testing.T) {
	suite.Run(t, NewReportTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
