package services

//go:generate mockgen -source=activity.go -destination=activity_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
	"github.com/segmentio/kafka-go"
)

// DateLayout is the calendar day format used in paths and query strings.
const DateLayout = "2006-01-02"

// ActivityRepository defines the activity operations of the store.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, childID int64, activityType string, duration int) (*models.Activity, error)
	GetActivitiesByChildAndDate(ctx context.Context, childID int64, day time.Time) ([]models.Activity, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ActivityInput is an activity submitted by a client. Nil fields were
// missing from the request.
type ActivityInput struct {
	ChildID      *int64
	ActivityType string
	Duration     *int
}

// ActivityService records activity time and aggregates it per day.
type ActivityService struct {
	repo        ActivityRepository
	kafkaWriter KafkaWriter
	loc         *time.Location
	now         func() time.Time
}

// ActivityOption configures an ActivityService.
type ActivityOption func(*ActivityService)

// WithLocation sets the time zone calendar days are interpreted in.
func WithLocation(loc *time.Location) ActivityOption {
	return func(s *ActivityService) {
		s.loc = loc
	}
}

// WithActivityClock overrides the clock used to resolve "today".
func WithActivityClock(now func() time.Time) ActivityOption {
	return func(s *ActivityService) {
		s.now = now
	}
}

// NewActivityService creates a new ActivityService. kafkaWriter may be nil,
// in which case events are not published.
func NewActivityService(repo ActivityRepository, kafkaWriter KafkaWriter, opts ...ActivityOption) *ActivityService {
	s := &ActivityService{
		repo:        repo,
		kafkaWriter: kafkaWriter,
		loc:         time.Local,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publishActivity publishes an activity event to Kafka.
func (s *ActivityService) publishActivity(ctx context.Context, event models.ActivityEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ChildID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Activity event published to Kafka", "event_id", event.EventID, "child_id", event.ChildID, "duration", event.Duration)
	}
}

// Record validates and stores an activity, then publishes it.
func (s *ActivityService) Record(ctx context.Context, in ActivityInput) (*models.Activity, error) {
	verr := models.NewValidationError()
	if in.ChildID == nil {
		verr.Add("childId", "is required")
	} else if *in.ChildID < 0 {
		verr.Add("childId", "must not be negative")
	}
	if in.ActivityType == "" {
		verr.Add("activityType", "is required")
	} else if !models.IsValidActivityType(in.ActivityType) {
		verr.Add("activityType", "must be one of music, coloring, photos")
	}
	if in.Duration == nil {
		verr.Add("duration", "is required")
	} else if *in.Duration <= 0 {
		verr.Add("duration", "must be positive")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	activity, err := s.repo.CreateActivity(ctx, *in.ChildID, in.ActivityType, *in.Duration)
	if err != nil {
		logger.Log.Errorw("failed to create activity", "childID", *in.ChildID, "activityType", in.ActivityType, "error", err)
		return nil, err
	}

	s.publishActivity(ctx, models.ActivityEvent{
		EventID:      uuid.NewString(),
		ActivityID:   activity.ID,
		ChildID:      activity.ChildID,
		ActivityType: activity.ActivityType,
		Duration:     activity.Duration,
		Date:         activity.Date,
	})

	return activity, nil
}

// ListByDay returns the activities of a child within the calendar day
// given as YYYY-MM-DD.
func (s *ActivityService) ListByDay(ctx context.Context, childID int64, date string) ([]models.Activity, error) {
	day, err := s.parseDay(date)
	if err != nil {
		return nil, err
	}

	activities, err := s.repo.GetActivitiesByChildAndDate(ctx, childID, day)
	if err != nil {
		logger.Log.Errorw("failed to list activities", "childID", childID, "date", date, "error", err)
		return nil, err
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	return activities, nil
}

// DailyStats sums the activity time of a child over the given day.
// An empty date means today.
func (s *ActivityService) DailyStats(ctx context.Context, childID int64, date string) (*models.DailyStats, error) {
	if date == "" {
		date = s.Today()
	}

	activities, err := s.ListByDay(ctx, childID, date)
	if err != nil {
		return nil, err
	}

	stats := models.NewDailyStats(childID, date, activities)
	return &stats, nil
}

// Today returns the current calendar day as YYYY-MM-DD.
func (s *ActivityService) Today() string {
	return s.now().In(s.loc).Format(DateLayout)
}

func (s *ActivityService) parseDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, s.loc)
	if err != nil {
		verr := models.NewValidationError()
		verr.Add("date", "must be a date in YYYY-MM-DD format")
		return time.Time{}, verr
	}
	return day, nil
}
