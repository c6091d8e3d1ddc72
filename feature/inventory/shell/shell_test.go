package shell_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inventory-manager/core/apperr"
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/shell"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockInventory struct {
	mock.Mock
}

func (m *mockInventory) ProductIDs(ctx context.Context) ([]uint, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *mockInventory) ViewProduct(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockInventory) AddProduct(ctx context.Context, p models.Product) (reconcile.Decision, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(reconcile.Decision), args.Error(1)
}

func (m *mockInventory) Backup(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func run(t *testing.T, inv shell.Inventory, input string) string {
	t.Helper()

	var out bytes.Buffer
	sh := shell.New(inv, strings.NewReader(input), &out, "backup.csv", zap.NewNop())
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestShell_ExitAndEOF(t *testing.T) {
	inv := new(mockInventory)

	out := run(t, inv, "e\n")
	assert.Contains(t, out, "PRODUCT INVENTORY")
	assert.Contains(t, out, "Thank you come again!")

	out = run(t, inv, "")
	assert.Contains(t, out, "Thank you come again!")
}

func TestShell_UnknownChoiceReprompts(t *testing.T) {
	out := run(t, new(mockInventory), "x\n\nE\n")

	assert.Equal(t, 2, strings.Count(out, "Please choose one of the options above"))
	assert.Contains(t, out, "Thank you come again!")
}

func TestShell_View(t *testing.T) {
	inv := new(mockInventory)
	inv.On("ProductIDs", mock.Anything).Return([]uint{1, 2}, nil)
	inv.On("ViewProduct", mock.Anything, uint(2)).Return(&models.Product{
		ID:          2,
		Name:        "Widget",
		PriceCents:  599,
		Quantity:    10,
		DateUpdated: time.Date(2021, time.April, 8, 0, 0, 0, 0, time.UTC),
	}, nil)

	out := run(t, inv, "v\nabc\n7\n2\ne\n")

	assert.Contains(t, out, "The ID format should be a number")
	assert.Contains(t, out, "Options: [1 2]")
	assert.Contains(t, out, "Product:  Widget")
	assert.Contains(t, out, "Price:    $5.99")
	assert.Contains(t, out, "Updated:  04/08/2021")
	inv.AssertExpectations(t)
}

func TestShell_ViewEmpty(t *testing.T) {
	inv := new(mockInventory)
	inv.On("ProductIDs", mock.Anything).Return([]uint{}, nil)

	out := run(t, inv, "v\ne\n")
	assert.Contains(t, out, "There are no products yet.")
}

func TestShell_AddRetriesUntilValid(t *testing.T) {
	want := models.Product{
		Name:        "Widget",
		PriceCents:  599,
		Quantity:    10,
		DateUpdated: time.Date(2021, time.April, 8, 0, 0, 0, 0, time.UTC),
	}

	inv := new(mockInventory)
	inv.On("AddProduct", mock.Anything, want).Return(reconcile.Decision{Outcome: reconcile.OutcomeInsert}, nil)

	out := run(t, inv, "a\n\nWidget\nfive\n$5.99\nten\n10\n13/01/2021\n04/08/2021\ne\n")

	assert.Contains(t, out, "****** NAME ERROR ******")
	assert.Contains(t, out, "****** PRICE ERROR ******\nPlease enter a price (ex 5.99)")
	assert.Contains(t, out, "****** QUANTITY ERROR ******")
	assert.Contains(t, out, "****** DATE ERROR ******\nPlease enter a date (ex 04/08/2021)")
	assert.Contains(t, out, "Product Added!")
	inv.AssertExpectations(t)
}

func TestShell_AddOutcomeMessages(t *testing.T) {
	tests := []struct {
		outcome reconcile.Outcome
		want    string
	}{
		{reconcile.OutcomeUpdate, "Product Updated!"},
		{reconcile.OutcomeRejectStale, "Product Entered Older Than Existing Records"},
		{reconcile.OutcomeNoopDuplicate, "Product Entered Matches Existing Records"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			inv := new(mockInventory)
			inv.On("AddProduct", mock.Anything, mock.Anything).Return(reconcile.Decision{Outcome: tt.outcome}, nil)

			out := run(t, inv, "a\nWidget\n1\n1\n01/01/2021\ne\n")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestShell_AddStoreFailureKeepsRunning(t *testing.T) {
	inv := new(mockInventory)
	inv.On("AddProduct", mock.Anything, mock.Anything).Return(reconcile.Decision{}, errors.New("database is locked"))

	out := run(t, inv, "a\nWidget\n1\n1\n01/01/2021\ne\n")
	assert.Contains(t, out, "Something went wrong: database is locked")
	assert.Contains(t, out, "Thank you come again!")
}

func TestShell_Backup(t *testing.T) {
	inv := new(mockInventory)
	inv.On("Backup", mock.Anything, "backup.csv").Return(3, nil).Once()
	inv.On("Backup", mock.Anything, "backup.csv").Return(0, apperr.ErrEmptyStore).Once()

	out := run(t, inv, "b\nb\ne\n")
	assert.Contains(t, out, "Backup saved to backup.csv (3 products).")
	assert.Contains(t, out, "There is nothing to back up yet.")
	inv.AssertExpectations(t)
}

func TestShell_EOFDuringAdd(t *testing.T) {
	inv := new(mockInventory)

	out := run(t, inv, "a\nWidget\n")
	assert.Contains(t, out, "Thank you come again!")
	inv.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
}
