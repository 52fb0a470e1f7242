package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestActivityService_Record(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockActivityRepository(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	svc := NewActivityService(repo, kafkaWriter)

	stored := &models.Activity{ID: 5, ChildID: 2, ActivityType: models.ActivityMusic, Duration: 120, Date: now}
	repo.EXPECT().CreateActivity(ctx, int64(2), models.ActivityMusic, 120).Return(stored, nil)
	kafkaWriter.EXPECT().
		WriteMessages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "2", string(msgs[0].Key))

			var event models.ActivityEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, int64(5), event.ActivityID)
			assert.Equal(t, int64(2), event.ChildID)
			assert.Equal(t, models.ActivityMusic, event.ActivityType)
			assert.Equal(t, 120, event.Duration)
			assert.True(t, now.Equal(event.Date))
			return nil
		})

	activity, err := svc.Record(ctx, ActivityInput{ChildID: int64Ptr(2), ActivityType: models.ActivityMusic, Duration: intPtr(120)})
	require.NoError(t, err)
	assert.Equal(t, stored, activity)
}

func TestActivityService_Record_PublishFailureIgnored(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockActivityRepository(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	svc := NewActivityService(repo, kafkaWriter)

	repo.EXPECT().CreateActivity(ctx, int64(0), models.ActivityColoring, 30).
		Return(&models.Activity{ID: 1, ActivityType: models.ActivityColoring, Duration: 30}, nil)
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker unavailable"))

	activity, err := svc.Record(ctx, ActivityInput{ChildID: int64Ptr(0), ActivityType: models.ActivityColoring, Duration: intPtr(30)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), activity.ID)
}

func TestActivityService_Record_Validation(t *testing.T) {
	tests := []struct {
		name   string
		in     ActivityInput
		fields []string
	}{
		{
			name:   "everything missing",
			in:     ActivityInput{},
			fields: []string{"childId", "activityType", "duration"},
		},
		{
			name:   "unknown activity type",
			in:     ActivityInput{ChildID: int64Ptr(1), ActivityType: "dancing", Duration: intPtr(10)},
			fields: []string{"activityType"},
		},
		{
			name:   "non-positive duration",
			in:     ActivityInput{ChildID: int64Ptr(1), ActivityType: models.ActivityPhotos, Duration: intPtr(0)},
			fields: []string{"duration"},
		},
		{
			name:   "negative child id",
			in:     ActivityInput{ChildID: int64Ptr(-1), ActivityType: models.ActivityPhotos, Duration: intPtr(10)},
			fields: []string{"childId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewActivityService(NewMockActivityRepository(ctrl), nil)
			_, err := svc.Record(context.Background(), tt.in)

			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestActivityService_publishActivity(t *testing.T) {
	ctx := context.Background()
	event := models.ActivityEvent{EventID: "evt-123", ActivityID: 1, ChildID: 2, ActivityType: models.ActivityMusic, Duration: 60}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	svc := &ActivityService{kafkaWriter: mockKafka}

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil).Times(1)
	svc.publishActivity(ctx, event)

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error")).Times(1)
	svc.publishActivity(ctx, event)

	// nil writer must not panic
	svc = &ActivityService{}
	svc.publishActivity(ctx, event)
}

func TestActivityService_ListByDay(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("BRT", -3*60*60)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, nil, WithLocation(loc))

	t.Run("day parsed in configured location", func(t *testing.T) {
		want := []models.Activity{{ID: 1, ChildID: 4, ActivityType: models.ActivityMusic, Duration: 120}}
		repo.EXPECT().
			GetActivitiesByChildAndDate(ctx, int64(4), time.Date(2024, 1, 15, 0, 0, 0, 0, loc)).
			Return(want, nil)

		got, err := svc.ListByDay(ctx, 4, "2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		repo.EXPECT().GetActivitiesByChildAndDate(ctx, int64(4), gomock.Any()).Return(nil, nil)

		got, err := svc.ListByDay(ctx, 4, "2024-01-16")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("malformed date", func(t *testing.T) {
		for _, date := range []string{"15-01-2024", "2024-13-01", "today", ""} {
			_, err := svc.ListByDay(ctx, 4, date)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr, date)
			assert.Contains(t, verr.Fields, "date")
		}
	})

	t.Run("store error", func(t *testing.T) {
		repo.EXPECT().GetActivitiesByChildAndDate(ctx, int64(4), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.ListByDay(ctx, 4, "2024-01-15")
		assert.EqualError(t, err, "db error")
	})
}

func TestActivityService_DailyStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, nil,
		WithLocation(time.UTC),
		WithActivityClock(func() time.Time { return now }),
	)

	repo.EXPECT().
		GetActivitiesByChildAndDate(ctx, int64(4), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).
		Return([]models.Activity{
			{ChildID: 4, ActivityType: models.ActivityMusic, Duration: 120},
			{ChildID: 4, ActivityType: models.ActivityMusic, Duration: 30},
			{ChildID: 4, ActivityType: models.ActivityPhotos, Duration: 15},
		}, nil)

	stats, err := svc.DailyStats(ctx, 4, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", stats.Date)
	assert.Equal(t, 165, stats.TotalSeconds)
	assert.Equal(t, map[string]int{
		models.ActivityMusic:    150,
		models.ActivityColoring: 0,
		models.ActivityPhotos:   15,
	}, stats.ByType)
}
