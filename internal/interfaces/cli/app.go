// Package cli implementa la interfaz de menús por consola de PizzaStore.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bradsaav/PizzaStore/internal/application/auth"
	"github.com/bradsaav/PizzaStore/internal/application/ordering"
	"github.com/bradsaav/PizzaStore/internal/application/usecase"
	"github.com/bradsaav/PizzaStore/pkg/logger"
)

// Deps casos de uso que atienden cada opción del menú.
type Deps struct {
	Auth       *auth.AuthUseCase
	Profile    *usecase.ProfileUseCase
	Catalog    *usecase.CatalogUseCase
	MenuAdmin  *usecase.MenuAdminUseCase
	UserAdmin  *usecase.UserAdminUseCase
	PlaceOrder *ordering.PlaceOrderUseCase
	Orders     *ordering.OrderUseCase
	Receipts   *ordering.ReceiptUseCase
	Log        *logger.Logger
}

// App sesión interactiva. stdout lleva menús y resultados; los errores van a errOut.
type App struct {
	deps   Deps
	in     *Prompter
	out    io.Writer
	errOut io.Writer
	log    *logger.Logger
}

// New construye la aplicación sobre los streams dados.
func New(deps Deps, in io.Reader, out, errOut io.Writer) *App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &App{deps: deps, in: NewPrompter(in, out), out: out, errOut: errOut, log: log}
}

// handler opción del menú de sesión. Recibe la sesión explícitamente.
type handler func(ctx context.Context, s auth.Session) error

type option struct {
	choice int
	label  string
	run    handler
}

// Run muestra el menú principal hasta que el usuario elige salir, se cierra stdin
// o ctx termina (en ese caso devuelve ctx.Err() sin volver a preguntar).
func (a *App) Run(ctx context.Context) error {
	a.greeting()
	var session auth.Session
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.println("MAIN MENU")
		a.println("---------")
		a.println("1. Create user")
		a.println("2. Log in")
		a.println("9. < EXIT")

		choice, err := a.in.Choice()
		if err != nil {
			return a.endOfInput(err)
		}
		switch choice {
		case 1:
			err = a.createUser(ctx)
		case 2:
			session, err = a.logIn(ctx, session)
		case 9:
			return nil
		default:
			a.println("Unrecognized choice!")
		}
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.report(err)
		}

		if session.Active() {
			session, err = a.sessionLoop(ctx, session)
			if err != nil {
				return a.endOfInput(err)
			}
		}
	}
}

func (a *App) options() []option {
	return []option{
		{1, "View Profile", a.viewProfile},
		{2, "Update Profile", a.updateProfile},
		{3, "View Menu", a.viewMenu},
		{4, "Place Order", a.placeOrder},
		{5, "View Full Order ID History", a.viewAllOrders},
		{6, "View Past 5 Order IDs", a.viewRecentOrders},
		{7, "View Order Information", a.viewOrderInfo},
		{8, "View Stores", a.viewStores},
		{9, "Update Order Status", a.updateOrderStatus},
		{10, "Update Menu", a.updateMenu},
		{11, "Update User", a.updateUser},
		{12, "Export Order Receipt (PDF)", a.exportReceipt},
	}
}

// sessionLoop menú del usuario autenticado; vuelve con la sesión cerrada tras "Log out".
func (a *App) sessionLoop(ctx context.Context, s auth.Session) (auth.Session, error) {
	opts := a.options()
	// los errores reportados durante la sesión llevan su id
	base := a.log
	a.log = base.WithStr("session_id", s.ID)
	defer func() { a.log = base }()
	for {
		if err := ctx.Err(); err != nil {
			return a.deps.Auth.Logout(s), err
		}
		a.println("MAIN MENU")
		a.println("---------")
		for _, o := range opts {
			a.printf("%d. %s\n", o.choice, o.label)
		}
		a.println(".........................")
		a.println("20. Log out")

		choice, err := a.in.Choice()
		if err != nil {
			return a.deps.Auth.Logout(s), err
		}
		if choice == 20 {
			a.printf("Logging out %s\n", s.Login)
			return a.deps.Auth.Logout(s), nil
		}
		h := lookup(opts, choice)
		if h == nil {
			a.println("Unrecognized choice!")
			continue
		}
		if err := h(ctx, s); err != nil {
			if errors.Is(err, ErrInputClosed) || ctx.Err() != nil {
				return a.deps.Auth.Logout(s), err
			}
			a.report(err)
		}
	}
}

func lookup(opts []option, choice int) handler {
	for _, o := range opts {
		if o.choice == choice {
			return o.run
		}
	}
	return nil
}

func (a *App) endOfInput(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}

func (a *App) greeting() {
	a.println("\n\n*******************************************************")
	a.println("              User Interface                          ")
	a.println("*******************************************************")
	a.println()
}

func (a *App) println(args ...any)               { fmt.Fprintln(a.out, args...) }
func (a *App) printf(format string, args ...any) { fmt.Fprintf(a.out, format, args...) }
