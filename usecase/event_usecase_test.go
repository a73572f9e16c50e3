package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-discovery-app/dto/req"
	"event-discovery-app/repository"
)

func TestCreateEventBuildsLocation(t *testing.T) {
	db := newTestDB(t)
	uc := NewEventUsecase(repository.NewEventRepository(), validator.New(), db, newTestLogger())

	id, err := uc.CreateEvent(context.Background(), &req.AddEventRequest{
		Name:      "Open Air Concert",
		Date:      "2026-09-12",
		Time:      "20:00",
		Duration:  "2",
		Category:  "Music",
		Lat:       "41.0151",
		Lng:       "28.9795",
		CreatedBy: "alice",
	}, []byte{0x01, 0x02})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	event, err := uc.GetEventByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "41.0151, 28.9795", event.Location)
	assert.Equal(t, "Music", event.Category)
	assert.Contains(t, event.Image, "data:image/jpeg;base64,")
}

func TestCreateEventRejectsMissingFields(t *testing.T) {
	db := newTestDB(t)
	uc := NewEventUsecase(repository.NewEventRepository(), validator.New(), db, newTestLogger())

	_, err := uc.CreateEvent(context.Background(), &req.AddEventRequest{Name: "No Schedule"}, nil)
	assert.Error(t, err)
}

func TestGetEventsPagination(t *testing.T) {
	db := newTestDB(t)
	uc := NewEventUsecase(repository.NewEventRepository(), validator.New(), db, newTestLogger())

	for i := 1; i <= 5; i++ {
		_, err := uc.CreateEvent(context.Background(), &req.AddEventRequest{
			Name:      fmt.Sprintf("Event %d", i),
			Date:      "2026-10-01",
			Time:      fmt.Sprintf("1%d:00", i),
			Duration:  "1",
			Category:  "Art",
			Lat:       "41.0",
			Lng:       "29.0",
			CreatedBy: "bob",
		}, nil)
		require.NoError(t, err)
	}

	page1, err := uc.GetEvents(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "Event 1", page1[0].Name)
	assert.Equal(t, "Event 2", page1[1].Name)

	page3, err := uc.GetEvents(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "Event 5", page3[0].Name)
}

func TestGetEventByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	uc := NewEventUsecase(repository.NewEventRepository(), validator.New(), db, newTestLogger())

	_, err := uc.GetEventByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetEventNames(t *testing.T) {
	db := newTestDB(t)
	uc := NewEventUsecase(repository.NewEventRepository(), validator.New(), db, newTestLogger())

	id, err := uc.CreateEvent(context.Background(), &req.AddEventRequest{
		Name:      "Gallery Night",
		Date:      "2026-11-20",
		Time:      "19:00",
		Duration:  "3",
		Category:  "Art",
		Lat:       "41.04",
		Lng:       "29.0",
		CreatedBy: "carol",
	}, nil)
	require.NoError(t, err)

	names, err := uc.GetEventNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, id, names[0].ID)
	assert.Equal(t, "Gallery Night", names[0].Name)
}
