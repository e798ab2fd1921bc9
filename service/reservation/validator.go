package reservationsvc

import (
	"fmt"
	"time"
)

// CreateInput is the raw creation request. Pointers distinguish absent
// fields from zero values; dates arrive as YYYY-MM-DD strings.
type CreateInput struct {
	UserID         *int64
	BookID         *int64
	PickupDate     *string
	ReturnDate     *string
	EmailConfirmed *bool
}

// draft is a creation request that passed every validation check.
type draft struct {
	UserID         int64
	BookID         int64
	Pickup         time.Time
	Return         time.Time
	EmailConfirmed bool
}

// validateCreate runs the field and date-window checks, in order, first
// failure short-circuiting. It is pure: today is passed in, nothing is
// read from the store.
func validateCreate(in CreateInput, today time.Time, maxWindowDays int) (draft, *ValidationError) {
	var d draft

	var missing []string
	if in.UserID == nil {
		missing = append(missing, "usuario_id")
	}
	if in.BookID == nil {
		missing = append(missing, "livro_id")
	}
	if in.PickupDate == nil || *in.PickupDate == "" {
		missing = append(missing, "data_retirada")
	}
	if in.ReturnDate == nil || *in.ReturnDate == "" {
		missing = append(missing, "data_devolucao")
	}
	if len(missing) > 0 {
		return d, &ValidationError{
			Reason:  ReasonMissingFields,
			Message: "required fields missing",
			Fields:  missing,
		}
	}

	var badIDs []string
	if *in.UserID <= 0 {
		badIDs = append(badIDs, "usuario_id")
	}
	if *in.BookID <= 0 {
		badIDs = append(badIDs, "livro_id")
	}
	if len(badIDs) > 0 {
		return d, &ValidationError{
			Reason:  ReasonInvalidID,
			Message: "ids must be valid positive numbers",
			Fields:  badIDs,
		}
	}

	var badDates []string
	pickup, err := time.ParseInLocation(time.DateOnly, *in.PickupDate, time.UTC)
	if err != nil {
		badDates = append(badDates, "data_retirada")
	}
	ret, err := time.ParseInLocation(time.DateOnly, *in.ReturnDate, time.UTC)
	if err != nil {
		badDates = append(badDates, "data_devolucao")
	}
	if len(badDates) > 0 {
		return d, &ValidationError{
			Reason:  ReasonInvalidDate,
			Message: "dates must be valid and formatted as YYYY-MM-DD",
			Fields:  badDates,
		}
	}

	if pickup.Before(today) {
		return d, &ValidationError{
			Reason:  ReasonPickupInPast,
			Message: "pickup date cannot be in the past",
			Fields:  []string{"data_retirada"},
		}
	}

	if !ret.After(pickup) {
		return d, &ValidationError{
			Reason:  ReasonReturnByPickup,
			Message: "return date must be after the pickup date",
			Fields:  []string{"data_devolucao"},
		}
	}

	if days := int(ret.Sub(pickup).Hours() / 24); days > maxWindowDays {
		return d, &ValidationError{
			Reason:  ReasonWindowTooLong,
			Message: fmt.Sprintf("reservation window cannot exceed %d days", maxWindowDays),
			Fields:  []string{"data_devolucao"},
		}
	}

	d.UserID = *in.UserID
	d.BookID = *in.BookID
	d.Pickup = pickup
	d.Return = ret
	if in.EmailConfirmed != nil {
		d.EmailConfirmed = *in.EmailConfirmed
	}
	return d, nil
}
