package order_test

import (
	"errors"
	"testing"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	vendorID := kernel.NewUUID()
	productID := kernel.NewUUID()

	t.Run("should create item with no active statuses", func(t *testing.T) {
		item, err := order.NewItem(validID, vendorID, productID, "Office Chair", 3, 15900, 0)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.VendorID().IsEqual(vendorID))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, "Office Chair", item.Name())
		assert.Equal(t, int64(3), item.Quantity())
		assert.Equal(t, int64(15900), item.UnitPriceCents())
		assert.False(t, item.TransitActive())
		assert.Empty(t, item.Statuses())
		assert.Nil(t, item.BackorderDetail())
		assert.False(t, item.Cancelled())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.NewItem(invalidID, vendorID, productID, "Office Chair", 3, 15900, 0)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with invalid vendor id", func(t *testing.T) {
		var invalidVendorID kernel.UUID

		_, err := order.NewItem(validID, invalidVendorID, productID, "Office Chair", 3, 15900, 0)

		require.Error(t, err)
	})

	t.Run("should fail with invalid product id", func(t *testing.T) {
		var invalidProductID kernel.UUID

		_, err := order.NewItem(validID, vendorID, invalidProductID, "Office Chair", 3, 15900, 0)

		require.Error(t, err)
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := order.NewItem(validID, vendorID, productID, "", 3, 15900, 0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewItem(validID, vendorID, productID, "Office Chair", 0, 15900, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewItem(validID, vendorID, productID, "Office Chair", 3, -1, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit price is invalid")
	})

	t.Run("should fail with discount above full price", func(t *testing.T) {
		_, err := order.NewItem(validID, vendorID, productID, "Office Chair", 3, 15900, 10001)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := order.NewItem(validID, vendorID, productID, "", 0, -1, -5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "discount bps")
	})
}

func TestItemCancel(t *testing.T) {
	t.Run("customer cancel activates customer cancellation", func(t *testing.T) {
		item := validItem(t)

		require.NoError(t, item.Cancel(false))

		assert.True(t, item.HasActiveStatus(status.ItemCancelledByCustomer))
		assert.True(t, item.Cancelled())
	})

	t.Run("system cancel activates system cancellation", func(t *testing.T) {
		item := validItem(t)

		require.NoError(t, item.Cancel(true))

		assert.True(t, item.HasActiveStatus(status.ItemCancelledBySystem))
		assert.True(t, item.Cancelled())
	})

	t.Run("cancelled item cannot be cancelled again", func(t *testing.T) {
		item := validItem(t)
		require.NoError(t, item.Cancel(false))

		err := item.Cancel(true)

		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrTransactionForbidden))
	})
}

func TestItemBackorder(t *testing.T) {
	t.Run("should attach backorder detail", func(t *testing.T) {
		item := validItem(t)

		require.NoError(t, item.MoveToBackorder(5))

		assert.True(t, item.HasActiveStatus(status.ItemBackordered))
		require.NotNil(t, item.BackorderDetail())
		assert.Equal(t, int64(5), item.BackorderDetail().Quantity())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		item := validItem(t)

		err := item.MoveToBackorder(0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
		assert.False(t, item.HasActiveStatus(status.ItemBackordered))
	})

	t.Run("should refuse backorder on cancelled item", func(t *testing.T) {
		item := validItem(t)
		require.NoError(t, item.Cancel(false))

		err := item.MoveToBackorder(5)

		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrTransactionForbidden))
		assert.Nil(t, item.BackorderDetail())
	})

	t.Run("reorder clears status and detail", func(t *testing.T) {
		item := validItem(t)
		require.NoError(t, item.MoveToBackorder(5))

		require.NoError(t, item.Reorder())

		assert.False(t, item.HasActiveStatus(status.ItemBackordered))
		assert.Nil(t, item.BackorderDetail())
	})

	t.Run("reorder is idempotent", func(t *testing.T) {
		item := validItem(t)
		require.NoError(t, item.MoveToBackorder(5))
		require.NoError(t, item.Reorder())

		require.NoError(t, item.Reorder())

		assert.False(t, item.HasActiveStatus(status.ItemBackordered))
	})

	t.Run("backorder after reorder keeps a single status record", func(t *testing.T) {
		item := validItem(t)
		require.NoError(t, item.MoveToBackorder(5))
		require.NoError(t, item.Reorder())

		require.NoError(t, item.MoveToBackorder(2))

		assert.Len(t, item.Statuses(), 1)
		require.NotNil(t, item.BackorderDetail())
		assert.Equal(t, int64(2), item.BackorderDetail().Quantity())
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore item with stored statuses", func(t *testing.T) {
		id := kernel.NewUUID()
		statuses := status.ItemRecords{
			status.ItemBackordered: status.NewRecord(status.ItemBackordered),
		}
		backorder, err := order.NewBackorder(4)
		require.NoError(t, err)

		item, err := order.RestoreItem(
			id, kernel.NewUUID(), kernel.NewUUID(),
			"Office Chair", 3, 15900, 0, true, statuses, &backorder,
		)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.TransitActive())
		assert.True(t, item.HasActiveStatus(status.ItemBackordered))
		require.NotNil(t, item.BackorderDetail())
		assert.Equal(t, int64(4), item.BackorderDetail().Quantity())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := order.RestoreItem(
			invalidID, kernel.NewUUID(), kernel.NewUUID(),
			"Office Chair", 3, 15900, 0, false, nil, nil,
		)

		require.Error(t, err)
		assert.Nil(t, item)
	})
}

func TestItemValidate(t *testing.T) {
	t.Run("should fail for zero value item", func(t *testing.T) {
		var item order.Item

		assert.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}
