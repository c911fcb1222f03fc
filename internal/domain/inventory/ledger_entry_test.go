package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceipt(t *testing.T) {
	componentID := uuid.New()
	resourceID := uuid.New()
	lineID := uuid.New()
	stockDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	entry, err := NewReceipt(componentID, decimal.NewFromInt(3), stockDate,
		ResourceTypeInboundDelivery, resourceID, ResourceLineTypeInboundDeliveryLine, lineID,
		decimal.NewFromInt(3300))
	require.NoError(t, err)

	assert.True(t, entry.IsReceipt())
	require.NotNil(t, entry.InStock)
	assert.True(t, decimal.NewFromInt(3).Equal(*entry.InStock))
	assert.Nil(t, entry.OutStock)
	require.NotNil(t, entry.BuyPrice)
	assert.True(t, decimal.NewFromInt(3300).Equal(*entry.BuyPrice))
	assert.NoError(t, entry.Validate())
	assert.True(t, decimal.NewFromInt(3).Equal(entry.SignedQuantity()))
}

func TestNewIssue(t *testing.T) {
	entry, err := NewIssue(uuid.New(), decimal.NewFromInt(2), time.Now(),
		ResourceTypeSalesDelivery, uuid.New(), ResourceLineTypeSalesDeliveryLine, uuid.New())
	require.NoError(t, err)

	assert.False(t, entry.IsReceipt())
	assert.Nil(t, entry.InStock)
	assert.Nil(t, entry.BuyPrice)
	require.NotNil(t, entry.OutStock)
	assert.True(t, decimal.NewFromInt(2).Equal(*entry.OutStock))
	assert.NoError(t, entry.Validate())
	assert.True(t, decimal.NewFromInt(-2).Equal(entry.SignedQuantity()))
}

func TestNewReceiptValidation(t *testing.T) {
	now := time.Now()

	_, err := NewReceipt(uuid.Nil, decimal.NewFromInt(1), now,
		ResourceTypeInboundDelivery, uuid.New(), ResourceLineTypeInboundDeliveryLine, uuid.New(), decimal.Zero)
	assert.Error(t, err)

	_, err = NewReceipt(uuid.New(), decimal.Zero, now,
		ResourceTypeInboundDelivery, uuid.New(), ResourceLineTypeInboundDeliveryLine, uuid.New(), decimal.Zero)
	assert.Error(t, err)

	_, err = NewReceipt(uuid.New(), decimal.NewFromInt(1), now,
		ResourceTypeInboundDelivery, uuid.Nil, ResourceLineTypeInboundDeliveryLine, uuid.New(), decimal.Zero)
	assert.Error(t, err)

	_, err = NewReceipt(uuid.New(), decimal.NewFromInt(1), now,
		ResourceTypeInboundDelivery, uuid.New(), ResourceLineTypeInboundDeliveryLine, uuid.New(), decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestNewIssueValidation(t *testing.T) {
	_, err := NewIssue(uuid.New(), decimal.NewFromInt(-1), time.Now(),
		ResourceTypeSalesDelivery, uuid.New(), ResourceLineTypeSalesDeliveryLine, uuid.New())
	assert.Error(t, err)

	_, err = NewIssue(uuid.New(), decimal.NewFromInt(1), time.Now(),
		"", uuid.New(), ResourceLineTypeSalesDeliveryLine, uuid.New())
	assert.Error(t, err)
}

func TestValidateRejectsBothOrNeitherSide(t *testing.T) {
	qty := decimal.NewFromInt(1)

	broken := &LedgerEntry{InStock: &qty, OutStock: &qty}
	assert.Error(t, broken.Validate())

	empty := &LedgerEntry{}
	assert.Error(t, empty.Validate())
}
