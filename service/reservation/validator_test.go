package reservationsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func i64p(n int64) *int64   { return &n }
func boolp(b bool) *bool    { return &b }

var today = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func validInput() CreateInput {
	return CreateInput{
		UserID:     i64p(1),
		BookID:     i64p(2),
		PickupDate: strp("2025-06-11"),
		ReturnDate: strp("2025-06-16"),
	}
}

func TestValidateCreate_OK(t *testing.T) {
	d, verr := validateCreate(validInput(), today, 30)
	require.Nil(t, verr)
	require.Equal(t, int64(1), d.UserID)
	require.Equal(t, int64(2), d.BookID)
	require.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), d.Pickup)
	require.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), d.Return)
	require.False(t, d.EmailConfirmed)
}

func TestValidateCreate_PickupTodayAllowed(t *testing.T) {
	in := validInput()
	in.PickupDate = strp("2025-06-10")
	_, verr := validateCreate(in, today, 30)
	require.Nil(t, verr)
}

func TestValidateCreate_MissingFields(t *testing.T) {
	_, verr := validateCreate(CreateInput{}, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonMissingFields, verr.Reason)
	require.Equal(t, []string{"usuario_id", "livro_id", "data_retirada", "data_devolucao"}, verr.Fields)
}

func TestValidateCreate_MissingFieldsReportedByName(t *testing.T) {
	in := validInput()
	in.ReturnDate = strp("")
	_, verr := validateCreate(in, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonMissingFields, verr.Reason)
	require.Equal(t, []string{"data_devolucao"}, verr.Fields)
}

func TestValidateCreate_InvalidIDs(t *testing.T) {
	in := validInput()
	in.UserID = i64p(0)
	in.BookID = i64p(-3)
	_, verr := validateCreate(in, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonInvalidID, verr.Reason)
	require.Equal(t, []string{"usuario_id", "livro_id"}, verr.Fields)
}

func TestValidateCreate_InvalidDates(t *testing.T) {
	for _, bad := range []string{"11/06/2025", "2025-13-40", "not-a-date"} {
		in := validInput()
		in.PickupDate = strp(bad)
		_, verr := validateCreate(in, today, 30)
		require.NotNil(t, verr, "input %q", bad)
		require.Equal(t, ReasonInvalidDate, verr.Reason)
		require.Equal(t, []string{"data_retirada"}, verr.Fields)
	}
}

func TestValidateCreate_PickupInPast(t *testing.T) {
	in := validInput()
	in.PickupDate = strp("2025-06-09")
	_, verr := validateCreate(in, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonPickupInPast, verr.Reason)
}

func TestValidateCreate_ReturnNotAfterPickup(t *testing.T) {
	in := validInput()
	in.ReturnDate = strp("2025-06-11") // equal to pickup
	_, verr := validateCreate(in, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonReturnByPickup, verr.Reason)

	in.ReturnDate = strp("2025-06-05")
	_, verr = validateCreate(in, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonReturnByPickup, verr.Reason)
}

func TestValidateCreate_WindowTooLong(t *testing.T) {
	in := validInput()
	in.ReturnDate = strp("2025-07-12") // 31 days
	_, verr := validateCreate(in, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonWindowTooLong, verr.Reason)

	// exactly the limit is fine
	in.ReturnDate = strp("2025-07-11")
	_, verr = validateCreate(in, today, 30)
	require.Nil(t, verr)

	// and a bigger configured limit admits the longer window
	in.ReturnDate = strp("2025-07-12")
	_, verr = validateCreate(in, today, 40)
	require.Nil(t, verr)
}

func TestValidateCreate_ChecksShortCircuitInOrder(t *testing.T) {
	// missing field wins over the bad date also present
	in := CreateInput{
		UserID:     i64p(1),
		PickupDate: strp("garbage"),
		ReturnDate: strp("2025-06-16"),
	}
	_, verr := validateCreate(in, today, 30)
	require.NotNil(t, verr)
	require.Equal(t, ReasonMissingFields, verr.Reason)
	require.Equal(t, []string{"livro_id"}, verr.Fields)
}

func TestValidateCreate_EmailConfirmedCarriedThrough(t *testing.T) {
	in := validInput()
	in.EmailConfirmed = boolp(true)
	d, verr := validateCreate(in, today, 30)
	require.Nil(t, verr)
	require.True(t, d.EmailConfirmed)
}
