package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("vehicleId", "123")

		assert.Equal(t, "vehicleId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("vehicleId", "123", cause)

		assert.Equal(t, "vehicleId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: vehicleId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("deliveryDate")

		assert.Equal(t, "deliveryDate", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: deliveryDate", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("deliveryDate", cause)

		assert.Equal(t, "deliveryDate", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: deliveryDate (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("capacity", 150, 0, 120)

		assert.Equal(t, "capacity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is capacity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 0, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customId")

		assert.Equal(t, "customId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customId", cause)

		assert.Equal(t, "customId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrAlreadyExists)
		require.Error(t, errs.ErrCapacityExceeded)
		require.Error(t, errs.ErrTransitionNotAllowed)
		require.Error(t, errs.ErrRebalanceValidation)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("vehicleId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("deliveryDate")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("capacity", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customId")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		capacityErr := errs.NewCapacityExceededError(12, 10)
		require.ErrorIs(t, capacityErr, errs.ErrCapacityExceeded)
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := errs.NewAlreadyExistsError("customId", "PO-1001")

	assert.Equal(t, "customId", err.ParamName)
	assert.Equal(t, "object already exists: customId PO-1001", err.Error())
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestCapacityExceededError(t *testing.T) {
	err := errs.NewCapacityExceededError(12_000_000, 10_000_000)

	assert.Equal(t, int64(12_000_000), err.Load)
	assert.Equal(t, int64(10_000_000), err.MaxCapacity)
	assert.Equal(t, "capacity exceeded: load 12000000 is above the largest vehicle capacity 10000000", err.Error())
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestTransitionNotAllowedError(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		err := errs.NewTransitionNotAllowedError("driver status", "In-transit", "Unavailable", "1 delivery not done")

		assert.Equal(t,
			"transition is not allowed: driver status In-transit -> Unavailable (1 delivery not done)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrTransitionNotAllowed)
	})

	t.Run("without reason", func(t *testing.T) {
		err := errs.NewTransitionNotAllowedError("order status", "completed", "assigned", "")

		assert.Equal(t, "transition is not allowed: order status completed -> assigned", err.Error())
	})
}

func TestRebalanceValidationError(t *testing.T) {
	violations := []string{"vehicle A carries 2 delivery dates", "vehicle B is over capacity"}
	err := errs.NewRebalanceValidationError(violations)
	violations[0] = "mutated"

	assert.Equal(t, []string{"vehicle A carries 2 delivery dates", "vehicle B is over capacity"}, err.Violations)
	assert.Equal(t,
		"rebalance validation failed: vehicle A carries 2 delivery dates; vehicle B is over capacity",
		err.Error())
	require.ErrorIs(t, err, errs.ErrRebalanceValidation)
}
