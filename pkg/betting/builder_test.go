package betting

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betfair/pkg/core"
)

func TestValidPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  bool
	}{
		{1.01, true},
		{1.5, true},
		{2.0, true},
		{2.02, true},
		{2.01, false},
		{3.05, true},
		{3.07, false},
		{4.1, true},
		{5.5, true},
		{6.2, true},
		{6.3, false},
		{10.5, true},
		{19.5, true},
		{25, true},
		{32, true},
		{33, false},
		{55, true},
		{110, true},
		{115, false},
		{1000, true},
		{1.0, false},
		{1010, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPrice(tt.price), "price %v", tt.price)
	}
}

func TestNewCustomerRef(t *testing.T) {
	ref := NewCustomerRef()
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), ref)
	assert.NotEqual(t, ref, NewCustomerRef())
}

func TestPlaceInstructionBuilder_Limit(t *testing.T) {
	inst, err := NewPlaceInstructionBuilder(47972).
		Back().
		Limit(2.5, 10, core.PersistencePersist).
		FillOrKill(5).
		Handicap(-0.5).
		CustomerOrderRef("order-1").
		Build()
	require.NoError(t, err)

	assert.Equal(t, int64(47972), inst.SelectionID)
	assert.Equal(t, core.SideBack, inst.Side)
	assert.Equal(t, core.OrderTypeLimit, inst.OrderType)
	assert.Equal(t, -0.5, inst.Handicap)
	assert.Equal(t, "order-1", inst.CustomerOrderRef)
	require.NotNil(t, inst.LimitOrder)
	assert.Equal(t, 2.5, inst.LimitOrder.Price)
	assert.Equal(t, 10.0, inst.LimitOrder.Size)
	assert.Equal(t, core.PersistencePersist, inst.LimitOrder.PersistenceType)
	assert.Equal(t, core.FillOrKill, inst.LimitOrder.TimeInForce)
	assert.Equal(t, 5.0, inst.LimitOrder.MinFillSize)
	assert.Nil(t, inst.LimitOnCloseOrder)
	assert.Nil(t, inst.MarketOnCloseOrder)
}

func TestPlaceInstructionBuilder_StartingPrice(t *testing.T) {
	inst, err := NewPlaceInstructionBuilder(1).Lay().LimitOnClose(3.5, 50).Build()
	require.NoError(t, err)
	assert.Equal(t, core.OrderTypeLimitOnClose, inst.OrderType)
	assert.Equal(t, &LimitOnCloseOrder{Liability: 50, Price: 3.5}, inst.LimitOnCloseOrder)
	assert.Len(t, inst.CustomerOrderRef, 32)

	inst, err = NewPlaceInstructionBuilder(1).Back().Limit(2, 2, core.PersistenceLapse).MarketOnClose(10).Build()
	require.NoError(t, err)
	assert.Equal(t, core.OrderTypeMarketOnClose, inst.OrderType)
	assert.Nil(t, inst.LimitOrder)
	assert.Equal(t, 10.0, inst.MarketOnCloseOrder.Liability)
}

func TestPlaceInstructionBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *PlaceInstructionBuilder
		wantErr string
	}{
		{"off ladder", NewPlaceInstructionBuilder(1).Back().Limit(2.01, 2, core.PersistenceLapse), "price ladder"},
		{"zero size", NewPlaceInstructionBuilder(1).Back().Limit(2, 0, core.PersistenceLapse), "size must be positive"},
		{"bad persistence", NewPlaceInstructionBuilder(1).Back().Limit(2, 2, "FOREVER"), "persistence"},
		{"bad side", NewPlaceInstructionBuilder(1).Side("UP").Limit(2, 2, core.PersistenceLapse), "invalid side"},
		{"no side", NewPlaceInstructionBuilder(1).Limit(2, 2, core.PersistenceLapse), "side is required"},
		{"no order", NewPlaceInstructionBuilder(1).Back(), "order type is required"},
		{"no selection", NewPlaceInstructionBuilder(0).Back().Limit(2, 2, core.PersistenceLapse), "selection id"},
		{"fill or kill without limit", NewPlaceInstructionBuilder(1).Back().FillOrKill(0), "requires a limit order"},
		{"zero liability", NewPlaceInstructionBuilder(1).Lay().MarketOnClose(0), "liability"},
		{"long ref", NewPlaceInstructionBuilder(1).CustomerOrderRef("0123456789abcdef0123456789abcdef0"), "32 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPlaceInstructionBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewPlaceInstructionBuilder(1).
		Side("UP").
		Limit(2.01, 0, core.PersistenceLapse).
		Build()
	assert.ErrorContains(t, err, "invalid side")
}
