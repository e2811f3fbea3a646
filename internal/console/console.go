// Package console is the interactive menu driver for the store. It reads one
// choice at a time, calls exactly one store operation and prints the result.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"StoreManager/internal/customer"
	"StoreManager/internal/store"
)

const (
	optAddProduct = iota + 1
	optListProducts
	optFindProduct
	optDeleteProduct
	optCountProducts
	optAddCustomer
	optAddOrder
	optViewOrders
	optListSummaries
	optDeleteCustomer
	optUpdateOrder
	optExit
)

var menu = []string{
	"1. Add Product",
	"2. View All Products",
	"3. Search Product",
	"4. Delete Product",
	"5. Count Total Products",
	"6. Add Customer",
	"7. Add Customer Order",
	"8. View Customer Orders",
	"9. View All Customer Reports",
	"10. Delete Customer",
	"11. Update Customer Order",
	"12. Exit",
}

const notFoundPair = "Customer or product not found."

// errInputClosed ends the session the same way the exit option does.
var errInputClosed = errors.New("input closed")

type Driver struct {
	svc *store.Service
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
	r   *renderer
}

func New(svc *store.Service, in io.Reader, out io.Writer, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: log,
		r:   newRenderer(out),
	}
}

// Run loops until the exit option, end of input or ctx cancellation. Store
// failures are printed and never end the loop.
func (d *Driver) Run(ctx context.Context) error {
	log := d.log.With(zap.String("session_id", uuid.NewString()))
	log.Info("console session started")
	defer log.Info("console session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.printMenu()
		line, err := d.prompt("Choose an option: ")
		if errors.Is(err, errInputClosed) {
			d.println("Exiting the application.")
			return nil
		}
		if err != nil {
			return err
		}

		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			d.fail("Invalid option. Please try again.")
			continue
		}
		if choice == optExit {
			d.println("Exiting the application.")
			return nil
		}

		if err := d.dispatch(choice); err != nil {
			if errors.Is(err, errInputClosed) {
				d.println("Exiting the application.")
				return nil
			}
			return err
		}
	}
}

func (d *Driver) dispatch(choice int) error {
	switch choice {
	case optAddProduct:
		return d.addProduct()
	case optListProducts:
		d.listProducts()
	case optFindProduct:
		return d.findProduct()
	case optDeleteProduct:
		return d.deleteProduct()
	case optCountProducts:
		d.println(fmt.Sprintf("Total number of products: %d", d.svc.CountProducts()))
	case optAddCustomer:
		return d.addCustomer()
	case optAddOrder:
		return d.addOrder()
	case optViewOrders:
		return d.viewOrders()
	case optListSummaries:
		d.listSummaries()
	case optDeleteCustomer:
		return d.deleteCustomer()
	case optUpdateOrder:
		return d.updateOrder()
	default:
		d.fail("Invalid option. Please try again.")
	}
	return nil
}

func (d *Driver) addProduct() error {
	id, err := d.prompt("Enter Product ID: ")
	if err != nil {
		return err
	}
	name, err := d.prompt("Enter Product Name: ")
	if err != nil {
		return err
	}
	raw, err := d.prompt("Enter Product Price: ")
	if err != nil {
		return err
	}
	price, convErr := strconv.ParseFloat(raw, 64)
	if convErr != nil {
		d.fail("Invalid price: " + raw)
		return nil
	}

	p := d.svc.AddProduct(id, name, price)
	d.ok("Product added: " + d.r.product(p))
	return nil
}

func (d *Driver) listProducts() {
	products := d.svc.ListProducts()
	if len(products) == 0 {
		d.println("No products available.")
		return
	}
	d.println(d.r.title.Render("All Products:"))
	for _, p := range products {
		d.println(d.r.product(p))
	}
}

func (d *Driver) findProduct() error {
	id, err := d.prompt("Enter Product ID to search: ")
	if err != nil {
		return err
	}
	p, findErr := d.svc.FindProduct(id)
	if findErr != nil {
		d.fail("Product not found.")
		return nil
	}
	d.println("Product found: " + d.r.product(p))
	return nil
}

func (d *Driver) deleteProduct() error {
	id, err := d.prompt("Enter Product ID to delete: ")
	if err != nil {
		return err
	}
	p, delErr := d.svc.DeleteProduct(id)
	if delErr != nil {
		d.fail("Product not found with ID: " + id)
		return nil
	}
	d.ok("Product deleted: " + d.r.product(p))
	return nil
}

func (d *Driver) addCustomer() error {
	id, err := d.prompt("Enter Customer ID: ")
	if err != nil {
		return err
	}
	name, err := d.prompt("Enter Customer Name: ")
	if err != nil {
		return err
	}
	c := d.svc.AddCustomer(id, name)
	d.ok("Customer added: " + d.r.summary(summaryOf(c)))
	return nil
}

func (d *Driver) addOrder() error {
	cid, pid, err := d.promptPair()
	if err != nil {
		return err
	}
	c, p, opErr := d.svc.AddOrder(cid, pid)
	if opErr != nil {
		d.fail(notFoundPair)
		return nil
	}
	d.ok(fmt.Sprintf("Order added for customer %s: %s", c.Name, d.r.product(p)))
	return nil
}

func (d *Driver) viewOrders() error {
	cid, err := d.prompt("Enter Customer ID: ")
	if err != nil {
		return err
	}
	c, findErr := d.svc.FindCustomer(cid)
	if findErr != nil {
		d.fail("Customer not found.")
		return nil
	}
	orders, viewErr := d.svc.ViewOrders(cid)
	if viewErr != nil {
		d.fail("Customer not found.")
		return nil
	}

	d.println(d.r.title.Render("Orders for customer " + c.Name + ":"))
	if len(orders) == 0 {
		d.println(d.r.muted.Render("(no orders)"))
	}
	for _, p := range orders {
		d.println(d.r.product(p))
	}
	return nil
}

func (d *Driver) listSummaries() {
	summaries := d.svc.Summaries()
	if len(summaries) == 0 {
		d.println("No customers available.")
		return
	}
	d.println(d.r.title.Render("All Customer Reports:"))
	for _, s := range summaries {
		d.println(d.r.summary(s))
	}
}

func (d *Driver) deleteCustomer() error {
	id, err := d.prompt("Enter Customer ID to delete: ")
	if err != nil {
		return err
	}
	c, delErr := d.svc.DeleteCustomer(id)
	if delErr != nil {
		d.fail("Customer not found.")
		return nil
	}
	d.ok("Customer deleted: " + d.r.summary(summaryOf(c)))
	return nil
}

func (d *Driver) updateOrder() error {
	cid, pid, err := d.promptPair()
	if err != nil {
		return err
	}
	raw, err := d.prompt("Add (true) or Remove (false) order: ")
	if err != nil {
		return err
	}
	add, convErr := strconv.ParseBool(raw)
	if convErr != nil {
		d.fail("Invalid choice, expected true or false: " + raw)
		return nil
	}

	c, p, opErr := d.svc.UpdateOrder(cid, pid, add)
	if opErr != nil {
		d.fail(notFoundPair)
		return nil
	}
	verb := "removed"
	if add {
		verb = "added"
	}
	d.ok(fmt.Sprintf("Order %s for customer %s: %s", verb, c.Name, d.r.product(p)))
	return nil
}

func (d *Driver) promptPair() (string, string, error) {
	cid, err := d.prompt("Enter Customer ID: ")
	if err != nil {
		return "", "", err
	}
	pid, err := d.prompt("Enter Product ID: ")
	if err != nil {
		return "", "", err
	}
	return cid, pid, nil
}

func (d *Driver) printMenu() {
	d.println("")
	d.println(d.r.title.Render("Store Management Application"))
	for _, line := range menu {
		d.println(line)
	}
}

// prompt returns the next input line without its trailing newline or
// surrounding spaces.
func (d *Driver) prompt(label string) (string, error) {
	fmt.Fprint(d.out, label)

	line, err := d.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(d.out)
		return "", errInputClosed
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (d *Driver) println(s string) { fmt.Fprintln(d.out, s) }
func (d *Driver) ok(s string)      { d.println(d.r.ok.Render(s)) }
func (d *Driver) fail(s string)    { d.println(d.r.fail.Render(s)) }

func summaryOf(c customer.Customer) store.Summary {
	return store.Summary{CustomerID: c.ID, Name: c.Name, OrderCount: len(c.Orders)}
}
