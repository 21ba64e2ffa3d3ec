package models

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtriet326/Hotel-management-system/utils"
)

// The 1-based wire order of every enum is part of the API contract.

func TestRoomTypeIndexOrder(t *testing.T) {
	want := []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeTwin, RoomTypeTriple, RoomTypeQuad, RoomTypeFamily}
	for i, expected := range want {
		got, err := RoomTypeFromIndex(itoa(i + 1))
		require.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.Equal(t, i+1, expected.Index())
	}
}

func TestRoomStatusIndexOrder(t *testing.T) {
	want := []RoomStatus{RoomAvailable, RoomReserved, RoomOccupied, RoomDirty, RoomMaintenance}
	for i, expected := range want {
		got, err := RoomStatusFromIndex(itoa(i + 1))
		require.NoError(t, err)
		assert.Equal(t, expected, got)
		assert.Equal(t, i+1, expected.Index())
	}
}

func TestBookingStatusIndexOrder(t *testing.T) {
	want := []BookingStatus{BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled}
	for i, expected := range want {
		got, err := BookingStatusFromIndex(itoa(i + 1))
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
}

func TestHistoryTypeIndexOrder(t *testing.T) {
	want := []HistoryType{HistoryCheckIn, HistoryCheckOut, HistoryExtendStay, HistoryChangeRoom, HistoryCancel}
	for i, expected := range want {
		got, err := HistoryTypeFromIndex(itoa(i + 1))
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
}

func TestPaymentEnumIndexOrder(t *testing.T) {
	method, err := PaymentMethodFromIndex("1")
	require.NoError(t, err)
	assert.Equal(t, PaymentCreditCard, method)
	method, err = PaymentMethodFromIndex("2")
	require.NoError(t, err)
	assert.Equal(t, PaymentCash, method)

	status, err := PaymentStatusFromIndex("1")
	require.NoError(t, err)
	assert.Equal(t, PaymentCompleted, status)
	status, err = PaymentStatusFromIndex("3")
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, status)
}

func TestEnumIndexOutOfRange(t *testing.T) {
	var notFound *utils.NotFoundError
	for _, index := range []string{"0", "7", "-1", "abc", ""} {
		_, err := RoomTypeFromIndex(index)
		require.ErrorAs(t, err, &notFound, index)
	}
	_, err := BookingStatusFromIndex("5")
	require.ErrorAs(t, err, &notFound)
	_, err = PaymentMethodFromIndex("3")
	require.ErrorAs(t, err, &notFound)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
