package insights

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	sessionsCollection = "study_sessions"
	usersCollection    = "users"
)

// featureCollections maps each tracked feature to its Firestore collection.
var featureCollections = map[Feature]string{
	FeatureHomework:   "homeworks",
	FeatureExams:      "exams",
	FeatureNotes:      "notes",
	FeatureFlashcards: "flashcards",
	FeaturePomodoro:   "pomodoro_entries",
}

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository instantiates a Firestore-backed repository.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

// FetchSessions reads session documents starting on or after since. Field
// validation and defaulting happen here, once, so the engine receives clean
// records: bad durations become 0 and missing timestamps stay zero.
func (r *firestoreRepository) FetchSessions(ctx context.Context, since time.Time, role string) ([]SessionRecord, error) {
	query := r.client.Collection(sessionsCollection).Where("startedAt", ">=", since)
	if role != "" {
		query = query.Where("role", "==", role)
	}

	var records []SessionRecord
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if status.Code(err) == codes.NotFound {
			return []SessionRecord{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fetch sessions: %w", err)
		}

		data := doc.Data()
		records = append(records, SessionRecord{
			UserID:          asString(data["userId"]),
			DurationSeconds: asSeconds(data["durationSeconds"]),
			StartTime:       asTime(data["startedAt"]),
		})
	}
	return records, nil
}

// FetchFeatureEvents reads the event documents for one feature created on or
// after since.
func (r *firestoreRepository) FetchFeatureEvents(ctx context.Context, feature Feature, since time.Time, role string) ([]FeatureEventRecord, error) {
	collection, ok := featureCollections[feature]
	if !ok {
		return nil, fmt.Errorf("unknown feature %q", feature)
	}

	query := r.client.Collection(collection).Where("createdAt", ">=", since)
	if role != "" {
		query = query.Where("role", "==", role)
	}

	var records []FeatureEventRecord
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if status.Code(err) == codes.NotFound {
			return []FeatureEventRecord{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fetch %s events: %w", feature, err)
		}

		data := doc.Data()
		records = append(records, FeatureEventRecord{
			ID:        doc.Ref.ID,
			UserID:    asString(data["userId"]),
			CreatedAt: asTime(data["createdAt"]),
		})
	}
	return records, nil
}

// CountUsers runs a server-side count over the users collection.
func (r *firestoreRepository) CountUsers(ctx context.Context, role string) (int, error) {
	query := r.client.Collection(usersCollection).Query
	if role != "" {
		query = query.Where("role", "==", role)
	}

	result, err := query.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	value, ok := result["total"]
	if !ok {
		return 0, fmt.Errorf("count users: aggregation result missing")
	}
	count, ok := value.(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("count users: unexpected aggregation type %T", value)
	}
	return int(count.GetIntegerValue()), nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asSeconds accepts the numeric shapes Firestore hands back for a duration
// field. Anything else defaults to 0.
func asSeconds(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func asTime(v any) time.Time {
	t, _ := v.(time.Time)
	return t
}
