package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_AvailableSpots(t *testing.T) {
	event := &Event{Capacity: 3}

	assert.Equal(t, int64(3), event.AvailableSpots(0))
	assert.Equal(t, int64(0), event.AvailableSpots(3))
	assert.Equal(t, int64(-1), event.AvailableSpots(4))
}

func TestEvent_IsFull(t *testing.T) {
	assert.False(t, (&Event{Capacity: 2}).IsFull(1))
	assert.True(t, (&Event{Capacity: 2}).IsFull(2))
	assert.True(t, (&Event{Capacity: 0}).IsFull(0))
}

func TestEventStatus_IsValid(t *testing.T) {
	assert.True(t, EventStatusPlanned.IsValid())
	assert.True(t, EventStatusCancelled.IsValid())
	assert.False(t, EventStatus("archived").IsValid())
}

func TestLocation_Point(t *testing.T) {
	lat, lng := 37.5665, 126.9780

	point, ok := (&Location{Latitude: &lat, Longitude: &lng}).Point()
	assert.True(t, ok)
	assert.Equal(t, lng, point.Lon())
	assert.Equal(t, lat, point.Lat())

	_, ok = (&Location{Latitude: &lat}).Point()
	assert.False(t, ok)
}

func TestUser_Roles(t *testing.T) {
	assert.Equal(t, []string{RoleUser}, (&User{}).Roles())
	assert.Equal(t, []string{RoleUser, RoleAdmin}, (&User{IsStaff: true}).Roles())
	assert.False(t, (&User{}).HasPushToken())
	assert.True(t, (&User{ExpoPushToken: "ExponentPushToken[x]"}).HasPushToken())
}
