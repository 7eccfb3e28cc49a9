package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civicwatch/complaint-api/schema"
)

var (
	ErrReportNotFound = fmt.Errorf("report not found")
)

// ReportStore exposes the report collection as parameterized operations.
// The windowed counts read committed documents only; a report becomes
// visible to these queries no earlier than its InsertReport returns.
type ReportStore interface {
	InsertReport(report *schema.Report) error
	GetReport(id string) (*schema.Report, error)

	// CountReporterReports counts reports from the normalized reporter
	// email with from <= ts < until.
	CountReporterReports(email string, from, until int64) (int64, error)

	// DistinctEstablishments lists the distinct (name, address) pairs
	// reported by the normalized reporter email with from <= ts < until.
	DistinctEstablishments(email string, from, until int64) ([]schema.EstablishmentKey, error)

	// CountEstablishmentReports counts reports against one (name, address)
	// pair with from <= ts < until.
	CountEstablishmentReports(key schema.EstablishmentKey, from, until int64) (int64, error)
}

// InsertReport commits a fully classified report as a single document, so
// content and classification become visible together or not at all.
func (m *mongoDB) InsertReport(report *schema.Report) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	_, err := c.InsertOne(ctx, report)
	return err
}

func (m *mongoDB) GetReport(id string) (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var report schema.Report
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (m *mongoDB) CountReporterReports(email string, from, until int64) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	return c.CountDocuments(ctx, bson.M{
		"reporter_email": schema.NormalizeEmail(email),
		"ts":             matchWindow(from, until),
	})
}

func (m *mongoDB) DistinctEstablishments(email string, from, until int64) ([]schema.EstablishmentKey, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"reporter_email": schema.NormalizeEmail(email),
				"ts":             matchWindow(from, until),
			},
		},
		{
			"$group": bson.M{
				"_id": bson.M{
					"business_name":    "$business_name",
					"business_address": "$business_address",
				},
			},
		},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	keys := make([]schema.EstablishmentKey, 0)
	for cursor.Next(ctx) {
		var result struct {
			Key schema.EstablishmentKey `bson:"_id"`
		}
		if err := cursor.Decode(&result); err != nil {
			return nil, err
		}
		keys = append(keys, result.Key)
	}

	return keys, cursor.Err()
}

func (m *mongoDB) CountEstablishmentReports(key schema.EstablishmentKey, from, until int64) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	return c.CountDocuments(ctx, bson.M{
		"business_name":    key.Name,
		"business_address": key.Address,
		"ts":               matchWindow(from, until),
	})
}

// matchWindow matches from <= ts < until; the upper bound excludes the
// candidate's own creation instant.
func matchWindow(from, until int64) bson.M {
	return bson.M{
		"$gte": from,
		"$lt":  until,
	}
}
