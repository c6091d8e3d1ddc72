package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"inventory-manager/core/apperr"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory/models"

	"go.uber.org/zap"
)

// Inventory is the subset of the inventory service the shell drives.
type Inventory interface {
	ProductIDs(ctx context.Context) ([]uint, error)
	ViewProduct(ctx context.Context, id uint) (*models.Product, error)
	AddProduct(ctx context.Context, p models.Product) (reconcile.Decision, error)
	Backup(ctx context.Context, path string) (int, error)
}

const menu = `
PRODUCT INVENTORY
  v) View a product by ID
  a) Add a product
  b) Backup the inventory
  e) Exit
`

// errClosed is returned by readLine once the input is exhausted.
var errClosed = errors.New("input closed")

// Shell is the interactive menu loop.
type Shell struct {
	inv        Inventory
	in         *bufio.Scanner
	out        io.Writer
	backupPath string
	logger     *zap.Logger
}

// New creates a shell reading commands from in and writing prompts to out.
func New(inv Inventory, in io.Reader, out io.Writer, backupPath string, logger *zap.Logger) *Shell {
	return &Shell{
		inv:        inv,
		in:         bufio.NewScanner(in),
		out:        out,
		backupPath: backupPath,
		logger:     logger,
	}
}

// Run shows the menu until the user exits or the input ends.
// Errors from individual actions are printed and the menu is shown again.
func (s *Shell) Run(ctx context.Context) error {
	for {
		choice, err := s.choose()
		if errors.Is(err, errClosed) {
			s.println("Thank you come again!")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "v":
			err = s.view(ctx)
		case "a":
			err = s.add(ctx)
		case "b":
			err = s.backup(ctx)
		case "e":
			s.println("Thank you come again!")
			return nil
		}

		if errors.Is(err, errClosed) {
			s.println("Thank you come again!")
			return nil
		}
		if err != nil {
			s.logger.Error("Menu action failed", zap.String("choice", choice), zap.Error(err))
			s.printf("\nSomething went wrong: %v\n", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// choose prompts until one of the menu keys is entered.
func (s *Shell) choose() (string, error) {
	s.printf("%s", menu)
	for {
		line, err := s.prompt("What would you like to do? ")
		if err != nil {
			return "", err
		}
		switch choice := strings.ToLower(line); choice {
		case "v", "a", "b", "e":
			return choice, nil
		}
		s.println("Please choose one of the options above (v, a, b, e).")
	}
}

func (s *Shell) view(ctx context.Context) error {
	ids, err := s.inv.ProductIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		s.println("There are no products yet.")
		return nil
	}

	var id uint
	for {
		line, err := s.prompt(fmt.Sprintf("Enter a product ID (options: %v): ", ids))
		if err != nil {
			return err
		}
		id, err = utils.ParseID(line, ids)
		if err == nil {
			break
		}
		s.printErr(err)
	}

	p, err := s.inv.ViewProduct(ctx, id)
	if err != nil {
		return err
	}
	s.printf("\nProduct:  %s\nPrice:    %s\nQuantity: %d\nUpdated:  %s\n",
		p.Name, utils.FormatPrice(p.PriceCents), p.Quantity, utils.FormatDate(p.DateUpdated))
	return nil
}

func (s *Shell) add(ctx context.Context) error {
	var p models.Product
	var err error

	for {
		if p.Name, err = s.prompt("New Product Name: "); err != nil {
			return err
		}
		if p.Name != "" {
			break
		}
		s.printErr(apperr.NewParse("name", "please enter a product name"))
	}

	if p.PriceCents, err = ask(s, "New Product Price: ", utils.ParsePrice); err != nil {
		return err
	}
	if p.Quantity, err = ask(s, "New Product Quantity: ", utils.ParseQuantity); err != nil {
		return err
	}
	if p.DateUpdated, err = ask(s, "New Product Date Updated (ex 04/08/2021): ", utils.ParseDate); err != nil {
		return err
	}

	d, err := s.inv.AddProduct(ctx, p)
	if apperr.IsKind(err, apperr.KindParse) {
		s.printErr(err)
		return nil
	}
	if err != nil {
		return err
	}

	switch d.Outcome {
	case reconcile.OutcomeInsert:
		s.println("Product Added!")
	case reconcile.OutcomeUpdate:
		s.println("Product Updated!")
	case reconcile.OutcomeRejectStale:
		s.println("Product Entered Older Than Existing Records")
	case reconcile.OutcomeNoopDuplicate:
		s.println("Product Entered Matches Existing Records")
	}
	return nil
}

func (s *Shell) backup(ctx context.Context) error {
	n, err := s.inv.Backup(ctx, s.backupPath)
	if errors.Is(err, apperr.ErrEmptyStore) {
		s.println("There is nothing to back up yet.")
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("Backup saved to %s (%d products).\n", s.backupPath, n)
	return nil
}

// ask prompts until parse accepts the answer.
func ask[T any](s *Shell, question string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.prompt(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.printErr(err)
	}
}

func (s *Shell) prompt(question string) (string, error) {
	s.printf("%s", question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// printErr renders input errors the way the menu reports them.
func (s *Shell) printErr(err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		s.printf("\n****** ERROR ******\n%v\n", err)
		return
	}
	msg := ae.Msg()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	s.printf("\n****** %s ERROR ******\n%s\n", strings.ToUpper(ae.Field()), msg)
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
