package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"StoreManager/internal/store"
)

func run(t *testing.T, svc *store.Service, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	d := New(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, zap.NewNop())
	require.NoError(t, d.Run(context.Background()))
	return out.String()
}

func TestDriver_ProductScenario(t *testing.T) {
	svc := store.NewService(store.Deps{})

	out := run(t, svc,
		"1", "P1", "Widget", "9.99",
		"6", "C1", "Alice",
		"7", "C1", "P1",
		"4", "P1",
		"8", "C1",
		"5",
		"12",
	)

	assert.Contains(t, out, "Product added: Product [ID: P1, Name: Widget, Price: $9.99]")
	assert.Contains(t, out, "Customer added: Customer [ID: C1, Name: Alice, Orders: 0]")
	assert.Contains(t, out, "Order added for customer Alice: Product [ID: P1, Name: Widget, Price: $9.99]")
	assert.Contains(t, out, "Product deleted: Product [ID: P1, Name: Widget, Price: $9.99]")
	assert.Contains(t, out, "Orders for customer Alice:")
	assert.Contains(t, out, "Total number of products: 0")
	assert.Contains(t, out, "Exiting the application.")

	orders, err := svc.ViewOrders("C1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestDriver_NotFoundKeepsLooping(t *testing.T) {
	svc := store.NewService(store.Deps{})

	out := run(t, svc,
		"3", "nope",
		"4", "nope",
		"7", "C1", "P1",
		"8", "C1",
		"10", "C1",
		"2",
		"9",
		"12",
	)

	assert.Contains(t, out, "Product not found.")
	assert.Contains(t, out, "Product not found with ID: nope")
	assert.Contains(t, out, "Customer or product not found.")
	assert.Contains(t, out, "Customer not found.")
	assert.Contains(t, out, "No products available.")
	assert.Contains(t, out, "No customers available.")
	assert.Contains(t, out, "Exiting the application.")
}

func TestDriver_UpdateOrder(t *testing.T) {
	svc := store.NewService(store.Deps{})
	svc.AddProduct("P1", "Widget", 9.99)
	svc.AddCustomer("C1", "Alice")

	out := run(t, svc,
		"11", "C1", "P1", "true",
		"11", "C1", "P1", "true",
		"11", "C1", "P1", "false",
		"11", "C1", "P1", "maybe",
		"9",
		"12",
	)

	assert.Contains(t, out, "Order added for customer Alice")
	assert.Contains(t, out, "Order removed for customer Alice")
	assert.Contains(t, out, "Invalid choice, expected true or false: maybe")
	assert.Contains(t, out, "Customer [ID: C1, Name: Alice, Orders: 1]")
}

func TestDriver_BadInput(t *testing.T) {
	svc := store.NewService(store.Deps{})

	out := run(t, svc,
		"abc",
		"42",
		"1", "P1", "Widget", "cheap",
		"5",
		"12",
	)

	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please try again."))
	assert.Contains(t, out, "Invalid price: cheap")
	assert.Contains(t, out, "Total number of products: 0")
}

func TestDriver_EOFEndsSession(t *testing.T) {
	svc := store.NewService(store.Deps{})

	var out bytes.Buffer
	d := New(svc, strings.NewReader("6\nC1\n"), &out, nil)
	require.NoError(t, d.Run(context.Background()))

	assert.Contains(t, out.String(), "Exiting the application.")
	assert.Empty(t, svc.Summaries())
}

func TestDriver_ListsInOrder(t *testing.T) {
	svc := store.NewService(store.Deps{})
	svc.AddProduct("B", "Bolt", 0.5)
	svc.AddProduct("A", "Anvil", 1250)

	out := run(t, svc, "2", "12")

	bolt := strings.Index(out, "Product [ID: B, Name: Bolt, Price: $0.50]")
	anvil := strings.Index(out, "Product [ID: A, Name: Anvil, Price: $1,250.00]")
	require.NotEqual(t, -1, bolt)
	require.NotEqual(t, -1, anvil)
	assert.Less(t, bolt, anvil)
}

func TestDriver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(store.NewService(store.Deps{}), strings.NewReader("12\n"), &bytes.Buffer{}, nil)
	assert.ErrorIs(t, d.Run(ctx), context.Canceled)
}
